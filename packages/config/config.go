// Package config loads client defaults from a JSON or YAML file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	resthttp "github.com/abdul-hamid-achik/restspec/packages/http"
)

// Config holds client defaults. Zero values leave the client's own
// defaults in place.
type Config struct {
	BaseURL         string            `json:"baseUrl,omitempty" yaml:"baseUrl,omitempty"`
	Timeout         int               `json:"timeout,omitempty" yaml:"timeout,omitempty"` // milliseconds
	FollowRedirects *bool             `json:"followRedirects,omitempty" yaml:"followRedirects,omitempty"`
	MaxRedirects    int               `json:"maxRedirects,omitempty" yaml:"maxRedirects,omitempty"`
	ValidateSSL     *bool             `json:"validateSSL,omitempty" yaml:"validateSSL,omitempty"`
	Proxy           string            `json:"proxy,omitempty" yaml:"proxy,omitempty"`
	Headers         map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	RateLimit       float64           `json:"rateLimit,omitempty" yaml:"rateLimit,omitempty"` // requests per second
}

// Load reads a config file; the extension picks the format (.yaml/.yml or
// .json).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}

	return cfg, nil
}

// ClientOptions maps the config onto client options.
func (c *Config) ClientOptions() []resthttp.ClientOption {
	var opts []resthttp.ClientOption

	if c.BaseURL != "" {
		opts = append(opts, resthttp.WithBaseURL(c.BaseURL))
	}
	if c.Timeout > 0 {
		opts = append(opts, resthttp.WithTimeout(time.Duration(c.Timeout)*time.Millisecond))
	}
	if c.FollowRedirects != nil {
		opts = append(opts, resthttp.WithFollowRedirects(*c.FollowRedirects))
	}
	if c.MaxRedirects > 0 {
		opts = append(opts, resthttp.WithMaxRedirects(c.MaxRedirects))
	}
	if c.ValidateSSL != nil {
		opts = append(opts, resthttp.WithValidateSSL(*c.ValidateSSL))
	}
	if c.Proxy != "" {
		opts = append(opts, resthttp.WithProxy(c.Proxy))
	}
	if len(c.Headers) > 0 {
		opts = append(opts, resthttp.WithDefaultHeaders(c.Headers))
	}
	if c.RateLimit > 0 {
		opts = append(opts, resthttp.WithRateLimit(c.RateLimit, 1))
	}

	return opts
}

// NewClient builds a client configured from the file at path.
func NewClient(path string) (*resthttp.Client, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return resthttp.NewClient(cfg.ClientOptions()...), nil
}

// BoolPtr is a convenience for the optional boolean fields.
func BoolPtr(b bool) *bool {
	return &b
}
