package response

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

const (
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageForbidden           = "forbidden"
	MessageNotFound            = "not found"
	MessageConflict            = "conflict"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

// timestampLayout matches JavaScript's Date.toISOString.
const timestampLayout = "2006-01-02T15:04:05.000Z"

type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func Now() string {
	return Timestamp(time.Now())
}

// JSON writes body with status 200.
func JSON(c fiber.Ctx, body any) error {
	return c.Status(fiber.StatusOK).JSON(body)
}

func Error(c fiber.Ctx, status int, message string) error {
	st := normalizeStatus(status)
	if message == "" {
		message = defaultMessageForStatus(st)
	}
	return c.Status(st).JSON(ErrorResponse{Success: false, Error: message, Timestamp: Now()})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusForbidden:
		return MessageForbidden
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusConflict:
		return MessageConflict
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
