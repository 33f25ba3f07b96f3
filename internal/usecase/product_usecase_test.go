package usecase

import (
	"context"
	"errors"
	"testing"

	"techstore/internal/domain/model"
	repo "techstore/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ProdProductRepoMock struct{ mock.Mock }

func (m *ProdProductRepoMock) FindAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProdProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProdProductRepoMock) FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	panic("not used in ProductUsecase tests")
}

func TestProductUsecase_ListProducts_Success(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := NewProductUsecase(pRepo)

	pRepo.On("FindAll", mock.Anything).Return([]model.Product{{ID: 1}, {ID: 2}}, nil)

	out, err := uc.ListProducts(context.Background())
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	pRepo.AssertExpectations(t)
}

func TestProductUsecase_ListProducts_DBError(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := NewProductUsecase(pRepo)

	pRepo.On("FindAll", mock.Anything).Return([]model.Product(nil), errors.New("down"))

	_, err := uc.ListProducts(context.Background())
	assertErrContains(t, err, "db error")
}

func TestProductUsecase_GetProductDetail_InvalidID(t *testing.T) {
	uc := NewProductUsecase(new(ProdProductRepoMock))

	_, err := uc.GetProductDetail(context.Background(), 0)
	assertErrContains(t, err, "invalid product id")
}

func TestProductUsecase_GetProductDetail_NotFound(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProductDetail(context.Background(), 99)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

func TestProductUsecase_GetProductDetail_Success(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Product{ID: 5, Name: "Laptop"}, nil)

	p, err := uc.GetProductDetail(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, "Laptop", p.Name)
}
