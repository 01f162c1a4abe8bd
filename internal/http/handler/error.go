package handler

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"salonweb/internal/apperr"
	"salonweb/internal/http/middleware"
	"salonweb/internal/view"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	// RetryAfter is in whole seconds.
	RetryAfter int    `json:"retry_after,omitempty"`
	Mailto     string `json:"mailto,omitempty"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

// writeAppError writes a typed application error, including field messages,
// retry hints and the mailto fallback when present.
func writeAppError(c *fiber.Ctx, err *apperr.Error) error {
	env := errorEnvelope{
		Code:    apperr.Code(err.Kind),
		Message: err.Message,
		Fields:  err.Fields,
		Mailto:  err.Mailto,
	}
	if env.Message == "" {
		env.Message = apperr.DefaultMessage(err.Kind)
	}
	if err.RetryAfter > 0 {
		env.RetryAfter = retryAfterSeconds(err)
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(env.RetryAfter))
	}
	return c.Status(apperr.HTTPStatus(err)).JSON(errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error:     env,
	})
}

func retryAfterSeconds(err *apperr.Error) int {
	return int(math.Ceil(err.RetryAfter.Seconds()))
}

// wantsHTML reports whether an error should be shown as a page rather than JSON.
func wantsHTML(c *fiber.Ctx) bool {
	if strings.HasPrefix(c.Path(), "/api/") {
		return false
	}
	return c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) == fiber.MIMETextHTML
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
// Browsers get an HTML page; API clients get errorPayload.
func ErrorHandler(site Site, logger *zap.Logger) fiber.ErrorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := apperr.As(err); ok {
			if appErr.Kind == apperr.KindServer {
				logger.Error("request_failed", zap.String("request_id", middleware.RequestIDFrom(c)), zap.Error(err))
			}
			return writeAppError(c, appErr)
		}

		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else {
			logger.Error("request_failed", zap.String("request_id", middleware.RequestIDFrom(c)), zap.Error(err))
		}

		if wantsHTML(c) {
			if status == fiber.StatusNotFound {
				return render(c, status, view.NotFound(site.meta(c, "Page not found", "")))
			}
			if status >= fiber.StatusInternalServerError {
				return render(c, status, view.ServerError(site.meta(c, "Something went wrong", "")))
			}
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			if status < fiber.StatusInternalServerError {
				return writeError(c, status, "REQUEST_ERROR", "request could not be processed")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
	}
}
