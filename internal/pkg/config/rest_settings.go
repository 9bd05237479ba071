package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding file settings, e.g. CTB_PORT.
const EnvPrefix = "CTB"

// RateLimitSettings configures the per-client token bucket of the REST API.
type RateLimitSettings struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute" validate:"required_if=Enabled true,gte=0"`
	Burst             int  `mapstructure:"burst" validate:"gte=0"`
}

// MetricsSettings toggles the prometheus endpoint.
type MetricsSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required_if=Enabled true"`
}

// CORSSettings lists the origins allowed to call the REST API from a browser.
type CORSSettings struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// RestConfig holds the configuration of the REST API server.
type RestConfig struct {
	Port           string            `mapstructure:"port" validate:"required,numeric"`
	MaxUploadBytes int64             `mapstructure:"max_upload_bytes" validate:"gt=0"`
	Logger         LoggerSettings    `mapstructure:"logger"`
	RateLimit      RateLimitSettings `mapstructure:"rate_limit"`
	Metrics        MetricsSettings   `mapstructure:"metrics"`
	CORS           CORSSettings      `mapstructure:"cors"`
}

// Validate checks that all fields in RestConfig are valid
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Namespace(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed for RestConfig: %v", messages)
		}
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return err
	}

	return nil
}

// setRestDefaults registers the values used when neither the file nor the environment sets a key.
func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("max_upload_bytes", 32<<20)
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests_per_minute", 600)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("cors.allow_origins", []string{"*"})
}

// InitializeRestConfig loads the REST configuration from the YAML file at path, applies CTB_* environment
// overrides and validates the result. An empty path loads defaults and environment only.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setRestDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
