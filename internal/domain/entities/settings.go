package entities

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultConcurrency         = 8
	defaultFetchTimeoutSeconds = 30
)

// Settings is the runtime configuration for a scan. Values are resolved in
// order: defaults, then the YAML settings file, then environment variables,
// then CLI flags (applied by the controller).
type Settings struct {
	Concurrency         int  `yaml:"concurrency"`
	FetchTimeoutSeconds int  `yaml:"fetch_timeout_seconds"`
	SkipFetch           bool `yaml:"skip_fetch"`
}

// NewSettings loads settings from the given file path, or returns defaults
// when the path is empty. Environment overrides are applied either way.
func NewSettings(path string) (*Settings, error) {
	settings := &Settings{
		Concurrency:         defaultConcurrency,
		FetchTimeoutSeconds: defaultFetchTimeoutSeconds,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
		}
		if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse settings file: %w", unmarshalErr)
		}
	}

	applyEnvOverrides(settings)

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FetchTimeout returns the per-repository remote operation timeout.
func (s *Settings) FetchTimeout() time.Duration {
	return time.Duration(s.FetchTimeoutSeconds) * time.Second
}

// FindSettingsFile searches the standard locations for a settings file.
// Returns an empty string when none exists; a missing file is not an error
// because every setting has a default.
func FindSettingsFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{"."}
	if homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{
		".gitscout.yaml",
		".gitscout.yml",
		"gitscout.yaml",
		"gitscout.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p
			}
		}
	}

	return ""
}

// applyEnvOverrides lets GITSCOUT_* environment variables override file values.
func applyEnvOverrides(settings *Settings) {
	if raw := os.Getenv("GITSCOUT_CONCURRENCY"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			settings.Concurrency = value
		} else {
			logger.Warnf("Ignoring invalid GITSCOUT_CONCURRENCY %q", raw)
		}
	}
	if raw := os.Getenv("GITSCOUT_FETCH_TIMEOUT"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			settings.FetchTimeoutSeconds = value
		} else {
			logger.Warnf("Ignoring invalid GITSCOUT_FETCH_TIMEOUT %q", raw)
		}
	}
}

// validate checks for usable configuration values.
func (s *Settings) validate() error {
	if s.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", s.Concurrency)
	}
	if s.FetchTimeoutSeconds < 1 {
		return fmt.Errorf("fetch_timeout_seconds must be at least 1, got %d", s.FetchTimeoutSeconds)
	}
	return nil
}
