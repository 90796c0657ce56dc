package middleware

import (
	"errors"
	"fmt"

	"staff-match/internal/pkg/apperr"
	"staff-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// AppError carries an explicit HTTP status, used where the 500 envelope does not apply.
type AppError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

type ErrorMiddleware struct {
	logger *zap.Logger
}

func NewErrorMiddleware(logger *zap.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered",
					zap.String("path", c.Path()),
					zap.String("panic", fmt.Sprint(r)),
					zap.Stack("stack"),
				)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := m.normalizeError(c, err)
		return response.Error(c, status, msg)
	}
}

// normalizeError keeps the domain convention of reporting every application
// failure as 500 with its message; only transport-level errors keep their code.
func (m *ErrorMiddleware) normalizeError(c fiber.Ctx, err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.StatusCode > 0 {
		return appErr.StatusCode, appErr.Message
	}

	var domainErr *apperr.Error
	if errors.As(err, &domainErr) {
		fields := []zap.Field{
			zap.String("path", c.Path()),
			zap.String("type", string(domainErr.Type)),
			zap.Error(err),
		}
		if domainErr.Type == apperr.TypeInternal || domainErr.Type == apperr.TypeDatastore {
			fields = append(fields, zap.ByteString("stack", domainErr.StackTrace()))
		}
		m.logger.Error("request failed", fields...)
		return fiber.StatusInternalServerError, domainErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError
		}
		return status, fiberErr.Message
	}

	m.logger.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
	return fiber.StatusInternalServerError, response.MessageInternalServerError
}
