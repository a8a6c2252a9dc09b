package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tdash/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultTitle, cfg.Title)
	assert.Equal(t, DefaultIPURL, cfg.IPURL)
	assert.Equal(t, DefaultWeatherURL, cfg.WeatherURL)
	assert.Equal(t, 2*time.Second, cfg.IPTimeout)
	assert.Equal(t, 3*time.Second, cfg.WeatherTimeout)
	assert.Equal(t, "/storage/emulated/0", cfg.StoragePath)
	assert.Zero(t, cfg.Width)
	assert.False(t, cfg.NoNetwork)
	assert.False(t, cfg.Strict)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TDASH_TITLE", "Pixel 7")
	t.Setenv("TDASH_IP_TIMEOUT", "500ms")
	t.Setenv("TDASH_WEATHER_URL", "http://localhost:9/weather")
	t.Setenv("TDASH_STORAGE_PATH", "/data")
	t.Setenv("TDASH_WIDTH", "132")
	t.Setenv("TDASH_NO_NETWORK", "true")
	t.Setenv("TDASH_STRICT", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Pixel 7", cfg.Title)
	assert.Equal(t, 500*time.Millisecond, cfg.IPTimeout)
	assert.Equal(t, "http://localhost:9/weather", cfg.WeatherURL)
	assert.Equal(t, "/data", cfg.StoragePath)
	assert.Equal(t, 132, cfg.Width)
	assert.True(t, cfg.NoNetwork)
	assert.True(t, cfg.Strict)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unparseable ip timeout", "TDASH_IP_TIMEOUT", "soon"},
		{"negative weather timeout", "TDASH_WEATHER_TIMEOUT", "-3s"},
		{"negative width", "TDASH_WIDTH", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestValidate_EmptyStoragePath(t *testing.T) {
	cfg := &Config{
		IPURL:          DefaultIPURL,
		WeatherURL:     DefaultWeatherURL,
		IPTimeout:      time.Second,
		WeatherTimeout: time.Second,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TDASH_STORAGE_PATH")
}
