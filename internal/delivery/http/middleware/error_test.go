package middleware

import (
	"errors"
	"fmt"
	"testing"

	"jobghar/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

func TestNormalizeError_AppError(t *testing.T) {
	status, msg, data := normalizeError(NewAppError(fiber.StatusConflict, "You have already applied for this job", map[string]string{"jobSlug": "x"}, nil))
	if status != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
	if msg != "You have already applied for this job" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if data == nil {
		t.Fatalf("expected data passed through")
	}
}

func TestNormalizeError_CollapsesServerErrors(t *testing.T) {
	cases := []error{
		NewAppError(fiber.StatusInternalServerError, "pgx: connection refused", nil, nil),
		NewAppError(fiber.StatusBadGateway, "upstream", nil, nil),
		fiber.NewError(fiber.StatusInternalServerError, "boom"),
		errors.New("raw error"),
	}

	for _, err := range cases {
		status, msg, _ := normalizeError(err)
		if status != fiber.StatusInternalServerError {
			t.Fatalf("%v: expected 500, got %d", err, status)
		}
		if msg != response.MessageInternalServerError {
			t.Fatalf("%v: internal detail leaked: %q", err, msg)
		}
	}
}

func TestNormalizeError_WrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewAppError(fiber.StatusNotFound, "Job not found", nil, nil))

	status, msg, _ := normalizeError(wrapped)
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if msg != "Job not found" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestNormalizeError_FiberError(t *testing.T) {
	status, msg, _ := normalizeError(fiber.NewError(fiber.StatusMethodNotAllowed))
	if status != fiber.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", status)
	}
	if msg == "" {
		t.Fatalf("expected a default message")
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewAppError(fiber.StatusBadRequest, "Bad request", nil, cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to reach the cause")
	}
	if got := err.Error(); got != "Bad request: root cause" {
		t.Fatalf("unexpected error string: %q", got)
	}
}
