package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/softcon-wm/pkg/metrics"
)

func TestNew_RegistraColectores(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObservarPeticion("GET", "/api/proyectos", 200, 15*time.Millisecond)
	m.ObservarBackend("GET", 0, time.Second)
	m.ObservarFallback("/finanzas-personales/resumen", true)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	nombres := map[string]bool{}
	for _, mf := range mfs {
		nombres[mf.GetName()] = true
	}
	assert.True(t, nombres["softcon_portal_http_request_duration_seconds"])
	assert.True(t, nombres["softcon_portal_backend_request_duration_seconds"])
	assert.True(t, nombres["softcon_portal_endpoint_fallback_total"])
}

func TestObservarFallback_PorResultado(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObservarFallback("/finanzas-personales/gasto", true)
	m.ObservarFallback("/finanzas-personales/gasto", false)
	m.ObservarFallback("/finanzas-personales/gasto", false)

	n, err := testutil.GatherAndCount(reg, "softcon_portal_endpoint_fallback_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "una serie por resultado")
}

func TestNew_DobleRegistroEntraEnPanico(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	assert.Panics(t, func() { metrics.New(reg) })
}
