package handler

import (
	"errors"
	"net/http"

	"jobhive/api/middleware"
	"jobhive/internal/dto"
	"jobhive/internal/entity"
	"jobhive/internal/service"
	"jobhive/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Service  *service.AuthService
	Validate *validator.Validate
	Cookies  middleware.SessionCookies
}

func NewAuthHandler(svc *service.AuthService, validate *validator.Validate, cookies middleware.SessionCookies) *AuthHandler {
	return &AuthHandler{
		Service:  svc,
		Validate: validate,
		Cookies:  cookies,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.RegisterInput{
		Name:        req.Name,
		UserName:    req.UserName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        entity.UserRole(req.Role),
	}
	user, token, err := h.Service.Register(c.Request().Context(), input, sessionMeta(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	h.Cookies.Set(c, token)
	return c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "Registration successful",
		User:    dto.UserResponseFromEntity(user),
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.LoginInput{Email: req.Email, Password: req.Password}
	user, token, err := h.Service.Login(c.Request().Context(), input, sessionMeta(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	h.Cookies.Set(c, token)
	return c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		User:    dto.UserResponseFromEntity(user),
	})
}

// Logout is a no-op without a cookie; with one, the session row goes first
// and the cookie is cleared after.
func (h *AuthHandler) Logout(c echo.Context) error {
	token := h.Cookies.Read(c)
	if token == "" {
		return c.NoContent(http.StatusNoContent)
	}
	if err := h.Service.Logout(c.Request().Context(), token, utils.ClientIP(c.Request().Header)); err != nil {
		return writeServiceError(c, err)
	}
	h.Cookies.Clear(c)
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	return c.JSON(http.StatusOK, dto.UserResponseFromEntity(&user.User))
}

func (h *AuthHandler) AdminListUsers(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	users, err := h.Service.ListUsers(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserResponsesFromEntities(users))
}

func (h *AuthHandler) AdminRevokeUserSessions(c echo.Context) error {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.RevokeUserSessions(c.Request().Context(), userID, utils.ClientIP(c.Request().Header)); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

func sessionMeta(c echo.Context) service.SessionMeta {
	return service.SessionMeta{
		UserAgent: c.Request().UserAgent(),
		IP:        utils.ClientIP(c.Request().Header),
	}
}
