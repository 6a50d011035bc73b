// Package config loads the YAML configuration used by the mdpdf command.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/enkron/mdpdf/internal/fileutil"
	"github.com/enkron/mdpdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Limits applied by Validate.
const (
	MaxPathLength     = 4096
	MaxPageSizeLength = 10 // "letter", "a4", "legal"
	MaxWorkers        = 32
	MaxFontSize       = 72.0
	MaxLineSpacing    = 4.0
)

// appName names the directory searched under the user config dir.
const appName = "mdpdf"

// Config holds all configuration for a conversion run.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Workers    int              `yaml:"workers"` // 0 = derived from GOMAXPROCS
	HTML       bool             `yaml:"html"`    // also write an HTML companion
	Style      string           `yaml:"style"`   // HTML stylesheet: style name or CSS file path
	Assets     AssetsConfig     `yaml:"assets"`
	Layout     LayoutConfig     `yaml:"layout"`
	WorkPeriod WorkPeriodConfig `yaml:"workPeriod"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // used when no input argument is given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source
}

// AssetsConfig locates custom stylesheets.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // directory holding styles/<name>.css
}

// LayoutConfig defines page geometry and type sizes. Zero values keep the
// engine defaults.
type LayoutConfig struct {
	PageSize     string  `yaml:"pageSize"` // "a4", "letter", "legal"
	Margin       float64 `yaml:"margin"`   // horizontal margin, points
	MarginTop    float64 `yaml:"marginTop"`
	MarginBottom float64 `yaml:"marginBottom"`
	FontSize     float64 `yaml:"fontSize"` // body size, points
	LineSpacing  float64 `yaml:"lineSpacing"`
}

// WorkPeriodConfig configures work period marker expansion.
type WorkPeriodConfig struct {
	// Source is a markdown document whose periods are summed when the input
	// uses {{total_work_period}} without listing any period itself.
	Source string `yaml:"source"`
}

// Validate checks ranges and lengths. Called automatically by LoadConfig,
// but available for configs built in code.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("workPeriod.source", c.WorkPeriod.Source, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("style", c.Style, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	if err := validateFieldLength("layout.pageSize", c.Layout.PageSize, MaxPageSizeLength); err != nil {
		return err
	}
	if c.Layout.PageSize != "" {
		switch strings.ToLower(c.Layout.PageSize) {
		case "a4", "letter", "legal":
			// valid
		default:
			return fmt.Errorf("%w: layout.pageSize %q (must be a4, letter, or legal)", ErrInvalidValue, c.Layout.PageSize)
		}
	}

	for _, f := range []struct {
		name  string
		value float64
		max   float64
	}{
		{"layout.margin", c.Layout.Margin, math.Inf(1)},
		{"layout.marginTop", c.Layout.MarginTop, math.Inf(1)},
		{"layout.marginBottom", c.Layout.MarginBottom, math.Inf(1)},
		{"layout.fontSize", c.Layout.FontSize, MaxFontSize},
		{"layout.lineSpacing", c.Layout.LineSpacing, MaxLineSpacing},
	} {
		if f.value < 0 || f.value > f.max || math.IsNaN(f.value) {
			return fmt.Errorf("%w: %s out of range: %g", ErrInvalidValue, f.name, f.value)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that keeps every engine default.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for <name>.yaml or <name>.yml in the working
// directory, then in the user config directory ($XDG_CONFIG_HOME/mdpdf on
// Linux).
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{""}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, appName))
	}

	tried := make([]string, 0, len(extensions)*len(dirs))
	for _, dir := range dirs {
		for _, ext := range extensions {
			candidate := filepath.Join(dir, name+ext)
			if fileutil.FileExists(candidate) {
				return candidate, nil
			}
			tried = append(tried, candidate)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
