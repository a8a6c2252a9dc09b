// Package config loads tdash settings from TDASH_* environment variables.
// There is no config file; every setting has a default matching the stock
// dashboard.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"tdash/errors"
)

// EnvPrefix is prepended to every setting key to form its environment variable.
const EnvPrefix = "TDASH"

// Defaults for the dashboard's fixed sources.
const (
	DefaultTitle          = "Termux Dashboard"
	DefaultIPURL          = "https://api.ipify.org"
	DefaultWeatherURL     = "https://wttr.in/?format=1"
	DefaultIPTimeout      = 2 * time.Second
	DefaultWeatherTimeout = 3 * time.Second
	DefaultStoragePath    = "/storage/emulated/0"
)

// Config holds the settings for one dashboard run.
type Config struct {
	// Title is the header text shown before the timestamp.
	Title string

	// IPURL is the plain-text public IP echo endpoint.
	IPURL string

	// WeatherURL is the one-line weather summary endpoint.
	WeatherURL string

	IPTimeout      time.Duration
	WeatherTimeout time.Duration

	// StoragePath is the filesystem root whose usage is reported.
	StoragePath string

	// Width overrides terminal width detection when positive.
	Width int

	// NoNetwork skips both HTTP lookups and shows their fallbacks.
	NoNetwork bool

	// Strict makes memory and storage query failures fatal instead of
	// degrading them to a placeholder.
	Strict bool

	Debug bool
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Title:          strings.TrimSpace(v.GetString("title")),
		IPURL:          strings.TrimSpace(v.GetString("ip_url")),
		WeatherURL:     strings.TrimSpace(v.GetString("weather_url")),
		IPTimeout:      v.GetDuration("ip_timeout"),
		WeatherTimeout: v.GetDuration("weather_timeout"),
		StoragePath:    strings.TrimSpace(v.GetString("storage_path")),
		Width:          v.GetInt("width"),
		NoNetwork:      v.GetBool("no_network"),
		Strict:         v.GetBool("strict"),
		Debug:          v.GetBool("debug"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", DefaultTitle)
	v.SetDefault("ip_url", DefaultIPURL)
	v.SetDefault("weather_url", DefaultWeatherURL)
	v.SetDefault("ip_timeout", DefaultIPTimeout.String())
	v.SetDefault("weather_timeout", DefaultWeatherTimeout.String())
	v.SetDefault("storage_path", DefaultStoragePath)
	v.SetDefault("width", 0)
	v.SetDefault("no_network", false)
	v.SetDefault("strict", false)
	v.SetDefault("debug", false)
}

// Validate checks that timeouts are positive and that required values are set.
func (c *Config) Validate() error {
	if c.IPTimeout <= 0 {
		return errors.New(errors.ErrConfig,
			"TDASH_IP_TIMEOUT must be a positive duration",
			"Use a value like 2s or 1500ms.")
	}
	if c.WeatherTimeout <= 0 {
		return errors.New(errors.ErrConfig,
			"TDASH_WEATHER_TIMEOUT must be a positive duration",
			"Use a value like 3s or 2500ms.")
	}
	if c.Width < 0 {
		return errors.New(errors.ErrConfig,
			"TDASH_WIDTH cannot be negative",
			"Unset it to detect the terminal width, or give a column count.")
	}
	if c.IPURL == "" || c.WeatherURL == "" {
		return errors.New(errors.ErrConfig,
			"Lookup URLs cannot be empty",
			"Unset TDASH_IP_URL and TDASH_WEATHER_URL to use the defaults.")
	}
	if c.StoragePath == "" {
		return errors.New(errors.ErrConfig,
			"TDASH_STORAGE_PATH cannot be empty",
			"Unset it to report "+DefaultStoragePath+".")
	}
	return nil
}
