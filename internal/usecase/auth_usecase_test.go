package usecase

import (
	"context"
	"errors"
	"testing"

	"techstore/internal/domain/model"
	repo "techstore/internal/repository"
	"techstore/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type AuthCustomerRepoMock struct{ mock.Mock }

func (m *AuthCustomerRepoMock) Create(ctx context.Context, c *model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *AuthCustomerRepoMock) FindByEmail(ctx context.Context, email string) (model.Customer, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *AuthCustomerRepoMock) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	panic("not used in AuthUsecase tests")
}

type SessionStoreMock struct{ mock.Mock }

func (m *SessionStoreMock) Create(ctx context.Context, d session.Data) (string, error) {
	args := m.Called(ctx, d)
	return args.String(0), args.Error(1)
}

func (m *SessionStoreMock) Get(ctx context.Context, sessionID string) (session.Data, error) {
	args := m.Called(ctx, sessionID)
	d, _ := args.Get(0).(session.Data)
	return d, args.Error(1)
}

func (m *SessionStoreMock) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newAuthUsecaseForTest() (*AuthUsecase, *AuthCustomerRepoMock, *SessionStoreMock) {
	customers := new(AuthCustomerRepoMock)
	sessions := new(SessionStoreMock)
	return NewAuthUsecase(customers, sessions, bcrypt.MinCost), customers, sessions
}

func TestAuthUsecase_Signup_MissingFields(t *testing.T) {
	uc, customers, _ := newAuthUsecaseForTest()

	err := uc.Signup(context.Background(), SignupInput{Email: "a@example.com", Password: "pw"})
	assertErrContains(t, err, "all fields are required")
	customers.AssertNotCalled(t, "Create")
}

func TestAuthUsecase_Signup_DuplicateEmail(t *testing.T) {
	uc, customers, _ := newAuthUsecaseForTest()
	customers.On("Create", mock.Anything, mock.Anything).Return(repo.ErrDuplicateEmail)

	err := uc.Signup(context.Background(), SignupInput{
		Email:     "a@example.com",
		Password:  "pw",
		FirstName: "Taro",
		LastName:  "Yamada",
	})
	assertErrContains(t, err, "email already registered")
}

func TestAuthUsecase_Signup_HashesPassword(t *testing.T) {
	uc, customers, _ := newAuthUsecaseForTest()

	customers.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
		//平文は保存しない
		return c.PasswordHash != "pw" &&
			bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte("pw")) == nil
	})).Return(nil)

	err := uc.Signup(context.Background(), SignupInput{
		Email:     "a@example.com",
		Password:  "pw",
		FirstName: "Taro",
		LastName:  "Yamada",
	})
	assert.NoError(t, err)
	customers.AssertExpectations(t)
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	uc, customers, sessions := newAuthUsecaseForTest()
	customers.On("FindByEmail", mock.Anything, "x@example.com").Return(model.Customer{}, repo.ErrNotFound)

	_, _, err := uc.Login(context.Background(), LoginInput{Email: "x@example.com", Password: "pw"})
	assertErrContains(t, err, "invalid email or password")
	sessions.AssertNotCalled(t, "Create")
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	uc, customers, sessions := newAuthUsecaseForTest()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	customers.On("FindByEmail", mock.Anything, "a@example.com").Return(model.Customer{
		ID:           1,
		Email:        "a@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, _, err := uc.Login(context.Background(), LoginInput{Email: "a@example.com", Password: "wrong"})
	assertErrContains(t, err, "invalid email or password")
	sessions.AssertNotCalled(t, "Create")
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	uc, customers, sessions := newAuthUsecaseForTest()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	customers.On("FindByEmail", mock.Anything, "a@example.com").Return(model.Customer{
		ID:           42,
		Email:        "a@example.com",
		PasswordHash: string(hash),
		FirstName:    "Taro",
		LastName:     "Yamada",
	}, nil)

	expected := session.Data{CustomerID: 42, Email: "a@example.com", FirstName: "Taro", LastName: "Yamada"}
	sessions.On("Create", mock.Anything, expected).Return("sid-1", nil)

	sid, d, err := uc.Login(context.Background(), LoginInput{Email: "a@example.com", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, "sid-1", sid)
	assert.Equal(t, expected, d)
	sessions.AssertExpectations(t)
}

func TestAuthUsecase_Logout_NoSessionIsNoop(t *testing.T) {
	uc, _, sessions := newAuthUsecaseForTest()

	err := uc.Logout(context.Background(), "")
	assert.NoError(t, err)
	sessions.AssertNotCalled(t, "Delete")
}

func TestAuthUsecase_Logout_DeletesSession(t *testing.T) {
	uc, _, sessions := newAuthUsecaseForTest()
	sessions.On("Delete", mock.Anything, "sid-1").Return(nil)

	err := uc.Logout(context.Background(), "sid-1")
	assert.NoError(t, err)
	sessions.AssertExpectations(t)
}

func TestAuthUsecase_CurrentSession_NoSession(t *testing.T) {
	uc, _, _ := newAuthUsecaseForTest()

	_, err := uc.CurrentSession(context.Background(), "")
	assertErrContains(t, err, "no active session")
}

func TestAuthUsecase_CurrentSession_Expired(t *testing.T) {
	uc, _, sessions := newAuthUsecaseForTest()
	sessions.On("Get", mock.Anything, "sid-old").Return(session.Data{}, session.ErrNotFound)

	_, err := uc.CurrentSession(context.Background(), "sid-old")
	assertErrContains(t, err, "no active session")
}

func TestAuthUsecase_CurrentSession_StoreFailure(t *testing.T) {
	uc, _, sessions := newAuthUsecaseForTest()
	sessions.On("Get", mock.Anything, "sid-1").Return(session.Data{}, errors.New("redis down"))

	_, err := uc.CurrentSession(context.Background(), "sid-1")

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 500, he.Status)
}
