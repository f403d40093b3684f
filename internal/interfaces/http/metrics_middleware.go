package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/softcon-wm/pkg/metrics"
)

// RutaMetricas expone el registro Prometheus del portal.
const RutaMetricas = "/metrics"

// MetricsMiddleware observa cada petición por patrón de ruta, no por ruta concreta,
// para no abrir una serie por id.
func MetricsMiddleware(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		if route == "" || (route == "/" && c.Path() != "/") {
			route = "sin_ruta"
		}
		m.ObservarPeticion(c.Method(), route, status, time.Since(inicio))
		return err
	}
}

// MetricsHandler sirve el registro en formato de exposición Prometheus.
func MetricsHandler(g prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
