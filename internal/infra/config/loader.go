package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gookit/validate"
	"gopkg.in/yaml.v3"

	"github.com/rsuth/clisurf/internal/domain"
	"github.com/rsuth/clisurf/internal/ports"
)

const (
	FileName = "clisurf.yaml"

	EnvBaseURL = "CLISURF_API_BASE_URL"
)

type Loader struct {
	configDir func() (string, error)
	getenv    func(string) string
}

type Option func(*Loader)

// WithConfigDir overrides where the default clisurf.yaml is looked up.
func WithConfigDir(fn func() (string, error)) Option {
	return func(l *Loader) { l.configDir = fn }
}

func WithGetenv(fn func(string) string) Option {
	return func(l *Loader) { l.getenv = fn }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		configDir: os.UserConfigDir,
		getenv:    os.Getenv,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Load reads path, or the default location when path is empty, and applies
// defaults. A missing default file is not an error; a missing explicit one is.
func (l *Loader) Load(path string) (domain.Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := l.configDir()
		if err == nil {
			path = DefaultPath(dir)
		}
	}

	var y YAMLConfig
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &y); err != nil {
				return domain.DefaultConfig(), &domain.ConfigError{Path: path, Err: err}
			}
		case !explicit && errors.Is(err, os.ErrNotExist):
			// defaults only
		default:
			return domain.DefaultConfig(), &domain.ConfigError{Path: path, Err: err}
		}
	}

	if v := strings.TrimSpace(l.getenv(EnvBaseURL)); v != "" {
		y.Clisurf.API.BaseURL = v
	}

	cfg, err := Map(y)
	if err != nil {
		return domain.DefaultConfig(), &domain.ConfigError{Path: path, Err: err}
	}
	return cfg, nil
}

// DefaultPath returns <dir>/clisurf/clisurf.yaml.
func DefaultPath(dir string) string {
	return filepath.Join(dir, "clisurf", FileName)
}

// Map applies y on top of domain.DefaultConfig and validates the result.
func Map(y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	s := settings{
		BaseURL: cfg.API.BaseURL,
		Station: cfg.Defaults.Station,
		Units:   string(cfg.Defaults.Units),
	}
	if v := strings.TrimSpace(y.Clisurf.API.BaseURL); v != "" {
		s.BaseURL = v
	}
	if v := strings.TrimSpace(y.Clisurf.Defaults.Station); v != "" {
		s.Station = v
	}
	if v := strings.TrimSpace(y.Clisurf.Defaults.Units); v != "" {
		s.Units = strings.ToLower(v)
	}

	v := validate.Struct(&s)
	if !v.Validate() {
		return cfg, v.Errors
	}

	if raw := strings.TrimSpace(y.Clisurf.API.Timeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return cfg, fmt.Errorf("api.timeout: %w", err)
		}
		if d < 0 {
			return cfg, fmt.Errorf("api.timeout: must not be negative, got %s", d)
		}
		cfg.API.Timeout = d
	}

	cfg.API.BaseURL = strings.TrimRight(s.BaseURL, "/")
	cfg.Defaults.Station = s.Station
	cfg.Defaults.Units = domain.Units(s.Units)
	return cfg, nil
}
