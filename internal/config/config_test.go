package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "roadtrip_app", cfg.AppName)
	assert.False(t, cfg.DedupeFinal)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.BaseURL)
	assert.Equal(t, ":8585", cfg.Gateway.Addr)
	assert.NotEmpty(t, cfg.DB.Path)
}

func TestValidateRequiresMapsKey(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_MAPS_API_KEY")

	cfg.Providers.MapsAPIKey = "key"
	assert.NoError(t, cfg.Validate())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "maps-from-env")
	t.Setenv("LITELLM_API_BASE", "http://localhost:4000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "maps-from-env", cfg.Providers.MapsAPIKey)
	assert.Equal(t, "http://localhost:4000", cfg.LLM.BaseURL)
}
