package usecase

import (
	"context"
	"net/http"
	"strings"

	"techstore/internal/domain/model"
	repo "techstore/internal/repository"
	"techstore/internal/session"

	"golang.org/x/crypto/bcrypt"
)

// AuthUsecase は /users の業務ロジック（会員登録・ログイン・ログアウト・セッション確認）。
type AuthUsecase struct {
	customerRepo repo.CustomerRepository
	sessions     session.Store
	bcryptCost   int
}

func NewAuthUsecase(customerRepo repo.CustomerRepository, sessions session.Store, bcryptCost int) *AuthUsecase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthUsecase{
		customerRepo: customerRepo,
		sessions:     sessions,
		bcryptCost:   bcryptCost,
	}
}

type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func (u *AuthUsecase) Signup(ctx context.Context, in SignupInput) error {
	//全フィールド必須
	if strings.TrimSpace(in.Email) == "" ||
		in.Password == "" ||
		strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" {
		return NewHTTPError(http.StatusBadRequest, "all fields are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.bcryptCost)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	c := model.Customer{
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
	}
	if err := u.customerRepo.Create(ctx, &c); err != nil {
		if err == repo.ErrDuplicateEmail {
			return NewHTTPError(http.StatusBadRequest, "email already registered")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type LoginInput struct {
	Email    string
	Password string
}

// Login は認証に成功したらセッションを作ってIDと会員情報を返す。
// メール不一致とパスワード不一致は同じメッセージにする。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (string, session.Data, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return "", session.Data{}, NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	c, err := u.customerRepo.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err == repo.ErrNotFound {
		return "", session.Data{}, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}
	if err != nil {
		return "", session.Data{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(in.Password)) != nil {
		return "", session.Data{}, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	d := session.Data{
		CustomerID: c.ID,
		Email:      c.Email,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
	}
	sid, err := u.sessions.Create(ctx, d)
	if err != nil {
		return "", session.Data{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}
	return sid, d, nil
}

func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := u.sessions.Delete(ctx, sessionID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "session error")
	}
	return nil
}

// CurrentSession はセッションが無ければ401。
func (u *AuthUsecase) CurrentSession(ctx context.Context, sessionID string) (session.Data, error) {
	if sessionID == "" {
		return session.Data{}, NewHTTPError(http.StatusUnauthorized, "no active session")
	}

	d, err := u.sessions.Get(ctx, sessionID)
	if err == session.ErrNotFound {
		return session.Data{}, NewHTTPError(http.StatusUnauthorized, "no active session")
	}
	if err != nil {
		return session.Data{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}
	return d, nil
}
