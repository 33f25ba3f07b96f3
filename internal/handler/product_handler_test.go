package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"techstore/internal/domain/model"
	repo "techstore/internal/repository"
	"techstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) FindAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *productRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func TestProductHandler_Detail_NonNumericID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	h := NewProductHandler(usecase.NewProductUsecase(new(productRepoMock)))

	err := h.detail(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_Detail_NotFound(t *testing.T) {
	pRepo := new(productRepoMock)
	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")

	h := NewProductHandler(usecase.NewProductUsecase(pRepo))

	err := h.detail(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_ListAll(t *testing.T) {
	pRepo := new(productRepoMock)
	pRepo.On("FindAll", mock.Anything).Return([]model.Product{{ID: 1}, {ID: 2}}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products/all", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewProductHandler(usecase.NewProductUsecase(pRepo))

	err := h.listAll(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
