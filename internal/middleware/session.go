package middleware

import (
	"errors"

	"techstore/internal/session"

	"github.com/labstack/echo/v4"
)

const (
	CtxCustomerIDKey = "customer_id" // int64
	CtxSessionIDKey  = "session_id"  // string
	CtxCustomerKey   = "customer"    // session.Data
)

// LoadSession はcookieのセッションIDをstoreで引いて会員情報をcontextに載せる。
// セッションが無くてもエラーにしない（認可は各usecaseの入口で判定する）。
func LoadSession(store session.Store, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			d, err := store.Get(c.Request().Context(), cookie.Value)
			if errors.Is(err, session.ErrNotFound) {
				return next(c)
			}
			if err != nil {
				//ストア障害はログだけ残して未ログイン扱い。認可が必要な所で401になる。
				c.Logger().Errorf("session lookup: %v", err)
				return next(c)
			}

			c.Set(CtxCustomerIDKey, d.CustomerID)
			c.Set(CtxSessionIDKey, cookie.Value)
			c.Set(CtxCustomerKey, d)
			return next(c)
		}
	}
}
