package middleware

import (
	"jobhive/internal/service"

	"github.com/labstack/echo/v4"
)

const contextAuthKey = "auth_user"

func SetAuthContext(c echo.Context, user *service.AuthUser) {
	c.Set(contextAuthKey, user)
}

func CurrentUser(c echo.Context) (*service.AuthUser, bool) {
	value := c.Get(contextAuthKey)
	user, ok := value.(*service.AuthUser)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
