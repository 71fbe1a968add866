package middleware

import (
	"net/http"

	"jobhive/internal/service"

	"github.com/labstack/echo/v4"
)

type AuthMiddleware struct {
	Sessions *service.SessionService
	Cookies  SessionCookies
}

// LoadSession resolves the session cookie on every request. Anonymous
// requests pass through untouched; a cookie pointing at an expired row is
// cleared so the browser stops presenting it.
func (m AuthMiddleware) LoadSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.Cookies.Read(c)
		if token == "" {
			return next(c)
		}
		user, expired := m.Sessions.Validate(c.Request().Context(), token)
		if expired {
			m.Cookies.Clear(c)
		}
		if user != nil {
			SetAuthContext(c, user)
		}
		return next(c)
	}
}

func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := CurrentUser(c); !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		return next(c)
	}
}
