package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/api"
)

const (
	AuthModeRefresh  = "refresh"
	AuthModeTerminal = "terminal"
)

// Config holds everything needed to talk to an ILFC API deployment.
type Config struct {
	// BaseURL is the API root, e.g. https://ilfc.example.com/api
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// UseCredentials keeps cookies set by the API and sends them back.
	UseCredentials bool `mapstructure:"use_credentials" yaml:"use_credentials"`

	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`

	Auth AuthConfig `mapstructure:"auth" yaml:"auth"`
	Log  LogConfig  `mapstructure:"log" yaml:"log"`
}

type AuthConfig struct {
	// Mode is "refresh" (silent renewal when a refresh token is held) or
	// "terminal" (any 401 ends the session).
	Mode        string `mapstructure:"mode" yaml:"mode"`
	LoginPath   string `mapstructure:"login_path" yaml:"login_path"`
	RefreshPath string `mapstructure:"refresh_path" yaml:"refresh_path"`
}

type LogConfig struct {
	Level   string `mapstructure:"level" yaml:"level"`
	Format  string `mapstructure:"format" yaml:"format"`
	NoColor bool   `mapstructure:"no_color" yaml:"no_color"`
}

func Default() Config {
	return Config{
		BaseURL: "http://localhost:8000/api",
		Timeout: 30 * time.Second,
		Auth: AuthConfig{
			Mode:        AuthModeRefresh,
			LoginPath:   api.LoginRoute,
			RefreshPath: api.RefreshRoute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Decode builds a Config from loosely typed settings (e.g. viper.AllSettings),
// starting from the defaults.
func Decode(settings map[string]any) (*Config, error) {
	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("creating config decoder: %w", err)
	}
	if err := dec.Decode(settings); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file '%s': %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file '%s': %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must be an http(s) URL, got '%s'", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url '%s' has no host", c.BaseURL)
	}
	switch c.Auth.Mode {
	case AuthModeRefresh, AuthModeTerminal:
	default:
		return fmt.Errorf("auth.mode must be '%s' or '%s', got '%s'", AuthModeRefresh, AuthModeTerminal, c.Auth.Mode)
	}
	if !strings.HasPrefix(c.Auth.LoginPath, "/") {
		return fmt.Errorf("auth.login_path must start with '/'")
	}
	if !strings.HasPrefix(c.Auth.RefreshPath, "/") {
		return fmt.Errorf("auth.refresh_path must start with '/'")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be 'console' or 'json', got '%s'", c.Log.Format)
	}
	return nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
