// Package config loads service settings from a yaml file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"contracts/pkg/domain"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the level implied by Environment when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes caps the payload size accepted by the contract check endpoint
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"1048576" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// OTP holds the settings of the remote OTP service. Defaults match domain.DefaultOTPConfig.
	OTP struct {
		BaseURL        string `env:"OTP_BASE_URL" env-default:"http://localhost:8000/api/v1/otp" yaml:"baseUrl"`
		MaxAttempts    int    `env:"OTP_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		ExpiryMinutes  int    `env:"OTP_EXPIRY_MINUTES" env-default:"10" yaml:"expiryMinutes"`
		MinPhoneLength int    `env:"OTP_MIN_PHONE_LENGTH" env-default:"9" yaml:"minPhoneLength"`
		OTPLength      int    `env:"OTP_LENGTH" env-default:"6" yaml:"otpLength"`
	} `yaml:"otp"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// When the file does not exist, only environment variables and defaults are used.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, err := os.Stat(configPath)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(configPath, &cfg)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if cfg.OTP.BaseURL, err = domain.NormalizeBaseURL(cfg.OTP.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid otp config: %w", err)
	}
	if err = cfg.OTPConfig().Validate(); err != nil {
		return nil, fmt.Errorf("invalid otp config: %w", err)
	}

	return &cfg, nil
}

// OTPConfig converts the OTP section into its wire shape.
func (c *Config) OTPConfig() domain.OTPConfig {
	return domain.OTPConfig{
		BaseURL:        c.OTP.BaseURL,
		MaxAttempts:    c.OTP.MaxAttempts,
		ExpiryMinutes:  c.OTP.ExpiryMinutes,
		MinPhoneLength: c.OTP.MinPhoneLength,
		OTPLength:      c.OTP.OTPLength,
	}
}
