package handler

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"jobghar/internal/delivery/http/middleware"
	"jobghar/internal/domain/user"
	"jobghar/internal/pkg/response"
	"jobghar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// CVStorage persists an uploaded résumé and returns its public
// reference path.
type CVStorage interface {
	SaveCV(fh *multipart.FileHeader) (string, error)
}

type ApplicationHandler struct {
	uc        usecase.ApplicationUsecase
	storage   CVStorage
	maxCVSize int64
}

func NewApplicationHandler(uc usecase.ApplicationUsecase, storage CVStorage, maxCVSize int64) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, storage: storage, maxCVSize: maxCVSize}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	seekerOnly := middleware.RequireRole(user.RoleSeeker)
	employerOnly := middleware.RequireRole(user.RoleEmployer)

	r.Post("/", h.Apply, seekerOnly)
	r.Get("/my-applications", h.MyApplications, seekerOnly)
	r.Get("/job/:jobSlug", h.GetJobApplications, employerOnly)
	r.Get("/job/:jobSlug/reviewed", h.GetReviewedJobApplications, employerOnly)
	r.Get("/application/:id", h.FindOneForEmployer, employerOnly)
	r.Patch("/:id/review", h.MarkAsReviewed, employerOnly)
	r.Get("/:id", h.FindOne, seekerOnly)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	fh, err := c.FormFile("cv")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "CV file is required", nil, err)
	}
	if err := validateCV(fh, h.maxCVSize); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, nil)
	}

	cvRef, err := h.storage.SaveCV(fh)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	a, err := h.uc.Apply(c.Context(), usecase.ApplyInput{
		JobSlug:     c.FormValue("jobSlug"),
		CoverLetter: c.FormValue("coverLetter"),
	}, claims.UserID, cvRef)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Application submitted successfully", a)
}

func (h *ApplicationHandler) MyApplications(c fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	apps, err := h.uc.GetMyApplications(c.Context(), claims.UserID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Your job applications retrieved successfully", apps)
}

func (h *ApplicationHandler) FindOne(c fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	a, err := h.uc.FindOneApplication(c.Context(), id, claims.Email)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Application retrieved successfully", a)
}

func (h *ApplicationHandler) FindOneForEmployer(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	a, err := h.uc.FindOneApplicationForEmployer(c.Context(), id)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Application retrieved successfully", a)
}

func (h *ApplicationHandler) GetJobApplications(c fiber.Ctx) error {
	apps, err := h.uc.GetJobApplications(c.Context(), c.Params("jobSlug"), "submitted")
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job applications retrieved successfully", apps)
}

func (h *ApplicationHandler) GetReviewedJobApplications(c fiber.Ctx) error {
	apps, err := h.uc.GetJobApplications(c.Context(), c.Params("jobSlug"), "reviewed")
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Reviewed job applications retrieved successfully", apps)
}

func (h *ApplicationHandler) MarkAsReviewed(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	a, err := h.uc.MarkAsReviewed(c.Context(), id)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Application marked as reviewed successfully", a)
}

var (
	errCVNotPDF  = errors.New("only PDF files are allowed")
	errCVTooBig  = errors.New("CV file must be under 2MB")
	errCVMissing = errors.New("CV file is required")
)

func validateCV(fh *multipart.FileHeader, maxSize int64) error {
	if fh == nil {
		return errCVMissing
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		return errCVNotPDF
	}
	if maxSize > 0 && fh.Size > maxSize {
		return errCVTooBig
	}
	return nil
}

func parseIDParam(c fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func mapApplicationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCVRequired):
		return middleware.NewAppError(fiber.StatusBadRequest, "CV file is required", nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "You have already applied for this job", nil, err)
	case errors.Is(err, usecase.ErrDeadlinePassed):
		return middleware.NewAppError(fiber.StatusBadRequest, "Job application deadline has passed", nil, err)
	case errors.Is(err, usecase.ErrApplicantNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Applicant not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
