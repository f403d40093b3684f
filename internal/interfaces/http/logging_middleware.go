package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mileusna/useragent"
	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"github.com/jhoicas/softcon-wm/internal/infrastructure/apiclient"
)

// RequestLogger registra método, ruta, estado y duración de cada petición al portal.
// Reusa el X-Request-Id entrante o genera uno; viaja en la respuesta y hacia el backend.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		requestID := c.Get(apiclient.HeaderRequestID)
		if requestID == "" {
			requestID = ksuid.New().String()
		}
		c.Set(apiclient.HeaderRequestID, requestID)
		c.SetUserContext(apiclient.ContextWithRequestID(c.UserContext(), requestID))

		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ua := useragent.Parse(c.Get(fiber.HeaderUserAgent))
		ev.Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duracion", time.Since(inicio)).
			Str("navegador", ua.Name).
			Bool("movil", ua.Mobile || ua.Tablet).
			Msg("petición")
		return err
	}
}
