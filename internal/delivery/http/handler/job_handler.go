package handler

import (
	"errors"
	"strconv"
	"time"

	"jobghar/internal/delivery/http/middleware"
	"jobghar/internal/domain/user"
	"jobghar/internal/pkg/response"
	"jobghar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Salary      int64     `json:"salary"`
	JobType     string    `json:"jobType"`
	Category    string    `json:"category"`
	Deadline    time.Time `json:"deadline"`
}

type updateJobRequest struct {
	Title       *string    `json:"title"`
	Company     *string    `json:"company"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	Salary      *int64     `json:"salary"`
	JobType     *string    `json:"jobType"`
	Category    *string    `json:"category"`
	Deadline    *time.Time `json:"deadline"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterRoutes wires the catalog. Static segments go first so
// "/employer/find" never falls into the ":slug" match.
func (h *JobHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	employerOnly := middleware.RequireRole(user.RoleEmployer)

	r.Get("/", h.GetAllJobs)
	r.Get("/employer/find", h.GetJobsByEmployer, auth, employerOnly)
	r.Get("/:slug", h.GetJobBySlug)
	r.Post("/", h.CreateJob, auth, employerOnly)
	r.Patch("/:slug", h.UpdateJob, auth, employerOnly)
	r.Delete("/:slug/delete", h.DeleteJob, auth, employerOnly)
}

func (h *JobHandler) GetAllJobs(c fiber.Ctx) error {
	page := parseQueryInt(c, "page", 1)
	limit := parseQueryInt(c, "limit", 10)

	jobs, err := h.uc.GetAllJobs(c.Context(), page, limit)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Jobs fetched successfully", jobs)
}

func (h *JobHandler) GetJobBySlug(c fiber.Ctx) error {
	j, err := h.uc.GetJobBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job fetched successfully", j)
}

func (h *JobHandler) CreateJob(c fiber.Ctx) error {
	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	employer, ok := callerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	j, err := h.uc.CreateJob(c.Context(), usecase.CreateJobInput{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		Location:    req.Location,
		Salary:      req.Salary,
		JobType:     req.JobType,
		Category:    req.Category,
		Deadline:    req.Deadline,
	}, employer)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Job created successfully", j)
}

func (h *JobHandler) UpdateJob(c fiber.Ctx) error {
	var req updateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	employer, ok := callerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	j, err := h.uc.UpdateJob(c.Context(), c.Params("slug"), usecase.UpdateJobInput{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		Location:    req.Location,
		Salary:      req.Salary,
		JobType:     req.JobType,
		Category:    req.Category,
		Deadline:    req.Deadline,
	}, employer)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job updated successfully", j)
}

func (h *JobHandler) DeleteJob(c fiber.Ctx) error {
	employer, ok := callerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	if err := h.uc.DeleteJob(c.Context(), c.Params("slug"), employer); err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job deleted successfully", nil)
}

func (h *JobHandler) GetJobsByEmployer(c fiber.Ctx) error {
	caller, ok := callerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobs, err := h.uc.GetJobsByEmployer(c.Context(), caller.Email)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Jobs fetched successfully", jobs)
}

// callerFromCtx rebuilds the acting account from the token claims.
func callerFromCtx(c fiber.Ctx) (user.User, bool) {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return user.User{}, false
	}
	return user.User{ID: claims.UserID, Email: claims.Email, Role: claims.Role}, true
}

// parseQueryInt is forgiving: missing or malformed values fall back to
// the default instead of failing the request.
func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return defaultVal
	}
	return v
}

func mapJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrNotJobOwner):
		return middleware.NewAppError(fiber.StatusForbidden, "You are not allowed to modify this job", nil, err)
	case errors.Is(err, usecase.ErrNotEmployer):
		return middleware.NewAppError(fiber.StatusForbidden, "Only employers can create jobs", nil, err)
	case errors.Is(err, usecase.ErrDeadlineNotFuture):
		return middleware.NewAppError(fiber.StatusBadRequest, "Deadline must be a future date", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
