// ABOUTME: healthai configuration management.
// ABOUTME: Handles output, evaluation, and logging preferences stored as JSON.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/healthai/internal/evaluator"
	"github.com/harperreed/healthai/internal/export"
	"github.com/harperreed/healthai/internal/logging"
	"github.com/harperreed/healthai/internal/symptoms"
)

// ErrInvalidConfig wraps every rejected config value.
var ErrInvalidConfig = errors.New("invalid config")

// Config stores healthai preferences.
type Config struct {
	// Format is the default output format for reports: text, json, yaml, or markdown.
	Format string `json:"format,omitempty"`

	// NoColor disables colored terminal output.
	NoColor bool `json:"no_color,omitempty"`

	// BloodPressureRule selects how Stage 1 hypertension is tested: literal or clinical.
	BloodPressureRule string `json:"blood_pressure_rule,omitempty"`

	// SymptomDelay is how long symptom analysis waits, as a Go duration ("2s").
	SymptomDelay string `json:"symptom_delay,omitempty"`

	LogLevel  string `json:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty"`
}

// GetFormat returns the configured output format, defaulting to text.
func (c *Config) GetFormat() export.Format {
	f, err := export.ParseFormat(c.Format)
	if err != nil {
		return export.FormatText
	}
	return f
}

// GetBloodPressureRule returns the configured rule, defaulting to literal.
func (c *Config) GetBloodPressureRule() evaluator.BloodPressureRule {
	r, err := evaluator.ParseBloodPressureRule(c.BloodPressureRule)
	if err != nil {
		return evaluator.RuleLiteral
	}
	return r
}

// GetSymptomDelay returns the configured analysis delay, defaulting to 2s.
func (c *Config) GetSymptomDelay() time.Duration {
	if c.SymptomDelay == "" {
		return symptoms.DefaultDelay
	}
	d, err := time.ParseDuration(c.SymptomDelay)
	if err != nil || d < 0 {
		return symptoms.DefaultDelay
	}
	return d
}

// GetLogLevel returns the configured log level, defaulting to warn.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "warn"
	}
	return c.LogLevel
}

// GetLogFormat returns the configured log encoder, defaulting to console.
func (c *Config) GetLogFormat() string {
	if c.LogFormat == "" {
		return "console"
	}
	return c.LogFormat
}

// Validate checks every set field.
func (c *Config) Validate() error {
	for _, key := range Keys() {
		if err := validate(key, c.get(key)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Sanitize clears every invalid field so its default applies. It returns the
// rejected values joined into one error, or nil when nothing was cleared.
func (c *Config) Sanitize() error {
	var errs []error
	for _, key := range Keys() {
		if err := validate(key, c.get(key)); err != nil {
			errs = append(errs, err)
			setters[key](c, "")
		}
	}
	return errors.Join(errs...)
}

var setters = map[string]func(c *Config, v string){
	"format":              func(c *Config, v string) { c.Format = v },
	"no_color":            func(c *Config, v string) { c.NoColor, _ = strconv.ParseBool(v) },
	"blood_pressure_rule": func(c *Config, v string) { c.BloodPressureRule = v },
	"symptom_delay":       func(c *Config, v string) { c.SymptomDelay = v },
	"log_level":           func(c *Config, v string) { c.LogLevel = v },
	"log_format":          func(c *Config, v string) { c.LogFormat = v },
}

// Keys returns the settable keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set validates value and assigns it to key.
func (c *Config) Set(key, value string) error {
	set, ok := setters[key]
	if !ok {
		return fmt.Errorf("unknown config key: %q (use %s)", key, strings.Join(Keys(), ", "))
	}
	if err := validate(key, value); err != nil {
		return err
	}
	set(c, value)
	return nil
}

func (c *Config) get(key string) string {
	switch key {
	case "format":
		return c.Format
	case "no_color":
		return strconv.FormatBool(c.NoColor)
	case "blood_pressure_rule":
		return c.BloodPressureRule
	case "symptom_delay":
		return c.SymptomDelay
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	}
	return ""
}

func validate(key, value string) error {
	var err error
	switch key {
	case "format":
		_, err = export.ParseFormat(value)
	case "no_color":
		_, err = strconv.ParseBool(value)
	case "blood_pressure_rule":
		_, err = evaluator.ParseBloodPressureRule(value)
	case "symptom_delay":
		if value == "" {
			return nil
		}
		var d time.Duration
		d, err = time.ParseDuration(value)
		if err == nil && d < 0 {
			err = fmt.Errorf("must not be negative")
		}
	case "log_level":
		_, err = logging.ParseLevel(value)
	case "log_format":
		err = logging.ValidateFormat(value)
	}
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "healthai", "config.json")
}

// Load reads config from disk. When the file parses but holds invalid values,
// Load returns the parsed config together with an error wrapping
// ErrInvalidConfig, so callers can Sanitize it and carry on.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return &cfg, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
