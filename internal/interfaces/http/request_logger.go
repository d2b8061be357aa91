package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/gst-invoice-api/pkg/logger"
)

const (
	// HeaderRequestID se respeta si el cliente lo envía; si no, se genera un UUID.
	HeaderRequestID = "X-Request-ID"
	// LocalRequestID clave en c.Locals.
	LocalRequestID = "request_id"
)

// RequestLogger registra una línea por petición (método, ruta, status, latencia, request id).
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Locals(LocalRequestID, reqID)
		c.Set(HeaderRequestID, reqID)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http request")
		return err
	}
}

// GetRequestID devuelve el request id asignado por RequestLogger (vacío si no se usó).
func GetRequestID(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalRequestID).(string)
	return v
}
