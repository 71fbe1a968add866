package handler

import (
	"errors"
	"net/http"

	"jobhive/api/middleware"
	"jobhive/internal/dto"
	"jobhive/internal/entity"
	"jobhive/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct {
	Service  *service.ApplicationService
	Validate *validator.Validate
}

func NewApplicationHandler(svc *service.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{Service: svc, Validate: validate}
}

func (h *ApplicationHandler) Apply(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	jobID, err := parseUintParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.ApplyRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.ApplicationInput{
		JobID:       jobID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
	}
	application, err := h.Service.Apply(c.Request().Context(), &user.User, input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.ApplicationResponseFromEntity(application))
}

func (h *ApplicationHandler) Mine(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	applications, err := h.Service.ListByApplicant(c.Request().Context(), user.User.ID, c.QueryParam("q"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ApplicationResponsesFromEntities(applications))
}

func (h *ApplicationHandler) Candidates(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	applications, err := h.Service.ListCandidates(c.Request().Context(), user.User.ID, c.QueryParam("q"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ApplicationResponsesFromEntities(applications))
}

func (h *ApplicationHandler) Candidate(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	applicationID, err := parseUintParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	application, err := h.Service.GetCandidate(c.Request().Context(), user.User.ID, applicationID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ApplicationResponseFromEntity(application))
}

func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	applicationID, err := parseUintParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.StatusUpdateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	status := entity.ApplicationStatus(req.Status)
	if err := h.Service.UpdateStatus(c.Request().Context(), user.User.ID, applicationID, status); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ApplicationHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
