package middleware

import (
	"github.com/steve-ongera/carsoko/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandler is the global error handler. Uncaught errors become the
// standard error envelope; internal detail is logged, never returned.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if code >= fiber.StatusInternalServerError {
		log.Error().Str("trace_id", GetTraceID(c)).Str("path", c.Path()).Err(err).Msg("Unhandled error")
		message = "Internal Server Error"
	}

	return response.Error(c, message, code, nil)
}
