package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/softcon-wm/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("API_URL", "")
	t.Setenv("VITE_API_URL", "")
	t.Setenv("HTTP_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultAPIURL, cfg.API.BaseURL, "sin API_URL se usa el origen local")
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_AliasVite(t *testing.T) {
	t.Setenv("API_URL", "")
	t.Setenv("VITE_API_URL", "https://api.softcon.gt")
	t.Setenv("VITE_SUPABASE_URL", "https://abc.supabase.co")
	t.Setenv("VITE_SUPABASE_ANON_KEY", "anon")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.softcon.gt", cfg.API.BaseURL)
	assert.Equal(t, "https://abc.supabase.co", cfg.Supabase.URL)
	assert.True(t, cfg.Supabase.Configured())
	assert.NoError(t, cfg.Supabase.Validate())
}

func TestLoad_APIURLTienePrioridad(t *testing.T) {
	t.Setenv("API_URL", "http://backend:8000")
	t.Setenv("VITE_API_URL", "http://otro:9000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://backend:8000", cfg.API.BaseURL)
}

func TestSupabaseConfig_ValidateParIncompleto(t *testing.T) {
	err := config.SupabaseConfig{URL: "https://abc.supabase.co"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_ANON_KEY")

	err = config.SupabaseConfig{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_URL")
}

func TestLoad_PuertoInvalidoUsaDefecto(t *testing.T) {
	t.Setenv("HTTP_PORT", "no-es-numero")
	t.Setenv("SESSION_COOKIE_SECURE", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.True(t, cfg.Session.CookieSecure)
}
