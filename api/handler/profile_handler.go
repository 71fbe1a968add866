package handler

import (
	"errors"
	"net/http"
	"time"

	"jobhive/api/middleware"
	"jobhive/internal/dto"
	"jobhive/internal/entity"
	"jobhive/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ProfileHandler struct {
	Service  *service.ProfileService
	Validate *validator.Validate
	Cookies  middleware.SessionCookies
}

func NewProfileHandler(svc *service.ProfileService, validate *validator.Validate, cookies middleware.SessionCookies) *ProfileHandler {
	return &ProfileHandler{Service: svc, Validate: validate, Cookies: cookies}
}

func (h *ProfileHandler) GetEmployer(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	employer, err := h.Service.GetEmployer(c.Request().Context(), user.User.ID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.EmployerProfileFromEntity(employer))
}

func (h *ProfileHandler) UpdateEmployer(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.EmployerProfileRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.EmployerProfileInput{
		Name:                req.Name,
		Description:         req.Description,
		AvatarURL:           req.AvatarURL,
		BannerImageURL:      req.BannerImageURL,
		OrganizationType:    req.OrganizationType,
		TeamSize:            req.TeamSize,
		YearOfEstablishment: req.YearOfEstablishment,
		WebsiteURL:          req.WebsiteURL,
		Location:            req.Location,
	}
	employer, err := h.Service.UpdateEmployer(c.Request().Context(), user.User.ID, input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.EmployerProfileFromEntity(employer))
}

func (h *ProfileHandler) GetApplicant(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	applicant, err := h.Service.GetApplicant(c.Request().Context(), user.User.ID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ApplicantProfileFromEntity(applicant))
}

func (h *ProfileHandler) UpdateApplicant(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.ApplicantProfileRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	applicant, err := h.Service.UpdateApplicant(c.Request().Context(), user.User.ID, applicantInputFromRequest(req))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ApplicantProfileFromEntity(applicant))
}

func (h *ProfileHandler) UpdateAccount(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.AccountUpdateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.AccountInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		AvatarURL:   req.AvatarURL,
	}
	updated, err := h.Service.UpdateAccount(c.Request().Context(), user.User.ID, input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserResponseFromEntity(updated))
}

// ChangePassword evicts every session on success, including the one behind
// this request, so the cookie is cleared too.
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.ChangePasswordRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.ChangePassword(c.Request().Context(), user.User.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return writeServiceError(c, err)
	}
	h.Cookies.Clear(c)
	return c.NoContent(http.StatusNoContent)
}

func (h *ProfileHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

func applicantInputFromRequest(req dto.ApplicantProfileRequest) service.ApplicantProfileInput {
	input := service.ApplicantProfileInput{
		Biography:   req.Biography,
		Nationality: req.Nationality,
		Education:   req.Education,
		Experience:  req.Experience,
		WebsiteURL:  req.WebsiteURL,
		Location:    req.Location,
	}
	if req.DateOfBirth != nil {
		value := req.DateOfBirth.Truncate(24 * time.Hour)
		input.DateOfBirth = &value
	}
	if req.MaritalStatus != nil {
		value := entity.MaritalStatus(*req.MaritalStatus)
		input.MaritalStatus = &value
	}
	if req.Gender != nil {
		value := entity.Gender(*req.Gender)
		input.Gender = &value
	}
	return input
}
