package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

// AllowedHeaders are the request headers browser clients of the functions send.
var AllowedHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}

func NewCORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowHeaders: AllowedHeaders,
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
	})
}
