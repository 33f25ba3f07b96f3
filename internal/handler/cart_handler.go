package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"techstore/internal/cart"
	"techstore/internal/config"

	"github.com/labstack/echo/v4"
)

// /cart のHTTP。カートの実体はクライアント保持のcookie（CartToken）で、
// ここはその1キーを読み書きするだけの境界。
type CartHandler struct {
	resolver *cart.Resolver
	cfg      config.Config
}

// DI
func NewCartHandler(resolver *cart.Resolver, cfg config.Config) *CartHandler {
	return &CartHandler{resolver: resolver, cfg: cfg}
}

type CartResponse struct {
	Items  []cart.Line `json:"items"`
	Totals cart.Totals `json:"totals"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/cart", h.getCart)
	e.POST("/cart/items/:id", h.addItem)
	e.DELETE("/cart/items/:id", h.removeItem)
}

func (h *CartHandler) getCart(c echo.Context) error {
	token, err := h.readToken(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid cart"})
	}
	return h.respondResolved(c, token)
}

// 1個分を末尾に追加。存在チェックはしない（購入時にまとめて検証する）。
func (h *CartHandler) addItem(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	token, err := h.readToken(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid cart"})
	}

	token = token.Add(productID)
	h.writeToken(c, token)
	return h.respondResolved(c, token)
}

// 1個分だけ減らす。?all=true で全部消す。
// 空になったら空文字列を保存せずcookieごと消す。
func (h *CartHandler) removeItem(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	token, err := h.readToken(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid cart"})
	}

	if c.QueryParam("all") == "true" {
		token = token.RemoveAll(productID)
	} else {
		token = token.RemoveOne(productID)
	}
	h.writeToken(c, token)
	return h.respondResolved(c, token)
}

func (h *CartHandler) respondResolved(c echo.Context, token cart.Token) error {
	lines, err := h.resolver.Resolve(c.Request().Context(), token)
	if errors.Is(err, cart.ErrUnknownProduct) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cart contains unknown product"})
	}
	if err != nil {
		c.Logger().Errorf("cart resolve: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, CartResponse{
		Items:  lines,
		Totals: cart.ComputeTotals(lines),
	})
}

func (h *CartHandler) readToken(c echo.Context) (cart.Token, error) {
	cookie, err := c.Cookie(h.cfg.CartCookie)
	if err != nil || cookie.Value == "" {
		return cart.Token{}, nil
	}
	return cart.ParseToken(cookie.Value)
}

func (h *CartHandler) writeToken(c echo.Context, token cart.Token) {
	if token.IsEmpty() {
		c.SetCookie(&http.Cookie{
			Name:   h.cfg.CartCookie,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
		return
	}

	c.SetCookie(&http.Cookie{
		Name:    h.cfg.CartCookie,
		Value:   token.String(),
		Path:    "/",
		Expires: time.Now().Add(h.cfg.CartTTL),
	})
}
