// Package metrics métricas Prometheus del portal: peticiones atendidas, llamadas
// al backend REST y uso de rutas alternas en la fachada.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "softcon_portal"

// Metrics colectores registrados en un Registerer propio (no el global).
type Metrics struct {
	peticiones *prometheus.HistogramVec
	backend    *prometheus.HistogramVec
	fallbacks  *prometheus.CounterVec
}

// New crea los colectores y los registra en reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		peticiones: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones atendidas por el portal.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		backend: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Duración de las llamadas al backend REST; status=0 si no hubo respuesta.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "status"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "endpoint_fallback_total",
			Help:      "Veces que la ruta primaria falló y se probó la alterna, por resultado.",
		}, []string{"primaria", "resultado"}),
	}
	reg.MustRegister(m.peticiones, m.backend, m.fallbacks)
	return m
}

// ObservarPeticion registra una petición atendida por el portal. route es el patrón
// de Fiber (/api/proyectos/:id), no la ruta concreta.
func (m *Metrics) ObservarPeticion(method, route string, status int, d time.Duration) {
	m.peticiones.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// ObservarBackend registra una llamada al backend. status 0 = error de red.
func (m *Metrics) ObservarBackend(method string, status int, d time.Duration) {
	m.backend.WithLabelValues(method, strconv.Itoa(status)).Observe(d.Seconds())
}

// ObservarFallback registra el resultado de probar la ruta alterna.
func (m *Metrics) ObservarFallback(primaria string, ok bool) {
	resultado := "alterna_ok"
	if !ok {
		resultado = "ambas_fallaron"
	}
	m.fallbacks.WithLabelValues(primaria, resultado).Inc()
}
