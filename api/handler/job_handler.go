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

type JobHandler struct {
	Service  *service.JobService
	Validate *validator.Validate
}

func NewJobHandler(svc *service.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{Service: svc, Validate: validate}
}

func (h *JobHandler) List(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	jobs, err := h.Service.Search(c.Request().Context(), c.QueryParam("q"), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.JobResponsesFromEntities(jobs))
}

func (h *JobHandler) Get(c echo.Context) error {
	jobID, err := parseUintParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	job, err := h.Service.GetWithEmployer(c.Request().Context(), jobID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.JobResponseFromEntity(job))
}

func (h *JobHandler) ListMine(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	jobs, err := h.Service.ListByEmployer(c.Request().Context(), user.User.ID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.JobResponsesFromEntities(jobs))
}

func (h *JobHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.JobRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	job, err := h.Service.Create(c.Request().Context(), user.User.ID, jobInputFromRequest(req))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.JobResponseFromEntity(job))
}

func (h *JobHandler) Update(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	jobID, err := parseUintParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.JobRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	job, err := h.Service.Update(c.Request().Context(), user.User.ID, jobID, jobInputFromRequest(req))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.JobResponseFromEntity(job))
}

func (h *JobHandler) Delete(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	jobID, err := parseUintParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.Delete(c.Request().Context(), user.User.ID, jobID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *JobHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

func jobInputFromRequest(req dto.JobRequest) service.JobInput {
	input := service.JobInput{
		Title:          req.Title,
		Description:    req.Description,
		Tags:           req.Tags,
		MinSalary:      req.MinSalary,
		MaxSalary:      req.MaxSalary,
		SalaryCurrency: req.SalaryCurrency,
		SalaryPeriod:   req.SalaryPeriod,
		Location:       req.Location,
		JobLevel:       req.JobLevel,
		Experience:     req.Experience,
		MinEducation:   req.MinEducation,
		IsFeatured:     req.IsFeatured,
		ExpiresAt:      req.ExpiresAt,
	}
	if req.JobType != nil {
		value := entity.JobType(*req.JobType)
		input.JobType = &value
	}
	if req.WorkType != nil {
		value := entity.WorkType(*req.WorkType)
		input.WorkType = &value
	}
	return input
}
