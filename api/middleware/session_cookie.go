package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SessionCookies owns the browser half of a session: the raw bearer token
// in an HttpOnly cookie. maxAge is fixed at issuance while the stored
// deadline slides forward on use, so the two drift on long-lived sessions.
type SessionCookies struct {
	Name   string
	Domain string
	Secure bool
	MaxAge time.Duration
}

func NewSessionCookies(maxAge time.Duration) SessionCookies {
	return SessionCookies{
		Name:   "session",
		Secure: true,
		MaxAge: maxAge,
	}
}

func (sc SessionCookies) Read(c echo.Context) string {
	cookie, err := c.Cookie(sc.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (sc SessionCookies) Set(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    token,
		Path:     "/",
		Domain:   sc.Domain,
		MaxAge:   int(sc.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (sc SessionCookies) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    "",
		Path:     "/",
		Domain:   sc.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
