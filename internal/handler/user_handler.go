package handler

import (
	"net/http"
	"time"

	"techstore/internal/config"
	"techstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /users のHTTP（会員登録・ログイン・ログアウト・セッション確認）
type UserHandler struct {
	uc  *usecase.AuthUsecase
	cfg config.Config
}

// DI
func NewUserHandler(uc *usecase.AuthUsecase, cfg config.Config) *UserHandler {
	return &UserHandler{uc: uc, cfg: cfg}
}

type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/users/signup", h.signup)
	e.POST("/users/login", h.login)
	e.POST("/users/logout", h.logout)
	e.GET("/users/session", h.session)
}

func (h *UserHandler) signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.Signup(c.Request().Context(), usecase.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, MessageResponse{Message: "user signed up"})
}

func (h *UserHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	sid, d, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cfg.SessionCookie,
		Value:    sid,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.SessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, d)
}

func (h *UserHandler) logout(c echo.Context) error {
	sid, _ := getSessionIDFromContext(c)

	if err := h.uc.Logout(c.Request().Context(), sid); err != nil {
		return writeError(c, err)
	}

	//cookieも消す
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}

func (h *UserHandler) session(c echo.Context) error {
	sid, _ := getSessionIDFromContext(c)

	d, err := h.uc.CurrentSession(c.Request().Context(), sid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}
