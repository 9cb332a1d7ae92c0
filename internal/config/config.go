// Package config loads the credentials file that drives a provisioning
// run.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	KeyURL           = "ac_url"
	KeyAPIKey        = "ac_key"
	KeyTimeout       = "timeout"
	KeyRetryAttempts = "retry_attempts"
	KeyRateLimit     = "rate_limit"
	KeyLogLevel      = "log_level"
	KeyLogFormat     = "log_format"

	envPrefix = "AC"
)

// fileTypes are the extensions parsed by their own codec; anything else
// is read as YAML.
var fileTypes = []string{"yaml", "yml", "json", "toml"}

var ErrMissingKey = errors.New("missing required config key")

type Config struct {
	URL           string
	APIKey        string
	Timeout       time.Duration
	RetryAttempts int
	// RateLimit is in requests per second; 0 disables limiting.
	RateLimit float64
	LogLevel  string
	LogFormat string
}

// NewViper returns a viper instance with the defaults and environment
// bindings used by Load. Callers may bind flags to it before loading.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyTimeout, 10*time.Second)
	v.SetDefault(KeyRetryAttempts, 1)
	v.SetDefault(KeyRateLimit, 5.0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	return v
}

// Load reads path into v and validates the result. Files without a
// recognised extension are parsed as YAML.
func Load(v *viper.Viper, path string) (Config, error) {
	v.SetConfigFile(path)
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !slices.Contains(fileTypes, ext) {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Config{
		URL:           strings.TrimSpace(v.GetString(KeyURL)),
		APIKey:        strings.TrimSpace(v.GetString(KeyAPIKey)),
		Timeout:       v.GetDuration(KeyTimeout),
		RetryAttempts: v.GetInt(KeyRetryAttempts),
		RateLimit:     v.GetFloat64(KeyRateLimit),
		LogLevel:      v.GetString(KeyLogLevel),
		LogFormat:     v.GetString(KeyLogFormat),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("%w: %s", ErrMissingKey, KeyURL)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%w: %s", ErrMissingKey, KeyAPIKey)
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("%s: %w", KeyURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) url, got %q", KeyURL, c.URL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%s must be positive, got %v", KeyTimeout, c.Timeout)
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", KeyRetryAttempts, c.RetryAttempts)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%s must not be negative, got %v", KeyRateLimit, c.RateLimit)
	}
	return nil
}

type sampleFile struct {
	URL           string  `yaml:"ac_url"`
	APIKey        string  `yaml:"ac_key"`
	Timeout       string  `yaml:"timeout"`
	RetryAttempts int     `yaml:"retry_attempts"`
	RateLimit     float64 `yaml:"rate_limit"`
	LogLevel      string  `yaml:"log_level"`
}

// WriteSample writes a credentials file with placeholder values. It
// refuses to overwrite an existing file.
func WriteSample(path string) error {
	data, err := yaml.Marshal(sampleFile{
		URL:           "https://ACCOUNT.api-us1.com/admin/api.php",
		APIKey:        "YOUR_API_KEY",
		Timeout:       "10s",
		RetryAttempts: 1,
		RateLimit:     5,
		LogLevel:      "info",
	})
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
