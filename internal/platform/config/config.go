// Package config resolves server settings: defaults, then a .env file, then the
// process environment. The result is validated before the server starts.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultWeatherBaseURL is the Visual Crossing timeline endpoint.
const DefaultWeatherBaseURL = "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline"

// Config is the resolved server configuration.
type Config struct {
	Port           string   `validate:"required,numeric"`
	SeedFile       string   `validate:"omitempty,file"`
	AllowedOrigins []string `validate:"dive,required"`
	MaxOpenEditors int      `validate:"min=1"`

	// EditorIdleTimeout discards editor sessions left untouched this long.
	EditorIdleTimeout time.Duration `validate:"gt=0"`

	Weather Weather
}

// Weather configures the forecast client.
type Weather struct {
	// APIKey may be empty; forecast calls then fail with weather.ErrMissingAPIKey.
	APIKey  string
	BaseURL string        `validate:"required,http_url"`
	Timeout time.Duration `validate:"gt=0"`
}

// LookupFunc matches os.LookupEnv so tests can supply their own environment.
type LookupFunc func(key string) (string, bool)

// apiKeyVars are checked in order; the later names are the front end's historical spellings.
var apiKeyVars = []string{
	"VISUAL_CROSSING_API_KEY",
	"REACT_APP_VISUAL_CROSSING_API_KEY",
	"visualcrossing_API_KEY",
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Port:              "8080",
		MaxOpenEditors:    256,
		EditorIdleTimeout: 30 * time.Minute,
		Weather: Weather{
			BaseURL: DefaultWeatherBaseURL,
			Timeout: 10 * time.Second,
		},
	}
}

// Load reads envFiles (".env" when none are given) into the process
// environment, then resolves the configuration from it. Missing env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup resolves the configuration from lookup over the defaults.
func FromLookup(lookup LookupFunc) (Config, error) {
	cfg := Default()

	if v, ok := nonEmpty(lookup, "PORT"); ok {
		cfg.Port = v
	}
	if v, ok := nonEmpty(lookup, "SEED_FILE"); ok {
		cfg.SeedFile = v
	}
	if v, ok := nonEmpty(lookup, "ALLOWED_ORIGINS"); ok {
		cfg.AllowedOrigins = splitList(v)
	}
	if v, ok := nonEmpty(lookup, "MAX_OPEN_EDITORS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("MAX_OPEN_EDITORS: %w", err)
		}
		cfg.MaxOpenEditors = n
	}
	if v, ok := nonEmpty(lookup, "EDITOR_IDLE_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("EDITOR_IDLE_TIMEOUT: %w", err)
		}
		cfg.EditorIdleTimeout = d
	}
	for _, key := range apiKeyVars {
		if v, ok := nonEmpty(lookup, key); ok {
			cfg.Weather.APIKey = v
			break
		}
	}
	if v, ok := nonEmpty(lookup, "WEATHER_BASE_URL"); ok {
		cfg.Weather.BaseURL = strings.TrimRight(v, "/")
	}
	if v, ok := nonEmpty(lookup, "WEATHER_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("WEATHER_TIMEOUT: %w", err)
		}
		cfg.Weather.Timeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the struct rules and reports the first offending field.
func (c Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		fe := ves[0]
		return fmt.Errorf("config: %s failed validation for tag '%s'", strings.ToLower(fe.StructNamespace()), fe.Tag())
	}
	return fmt.Errorf("config: %w", err)
}

func nonEmpty(lookup LookupFunc, key string) (string, bool) {
	v, ok := lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
