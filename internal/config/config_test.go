// ABOUTME: Tests for healthai configuration management.
// ABOUTME: Covers load, save, defaults, validation on set, and path expansion.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/healthai/internal/evaluator"
	"github.com/harperreed/healthai/internal/export"
)

// useTempConfigHome points XDG_CONFIG_HOME at a fresh temp dir.
func useTempConfigHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	return tmpDir
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.GetFormat(); got != export.FormatText {
		t.Errorf("GetFormat() = %q, want %q", got, export.FormatText)
	}
	if got := cfg.GetBloodPressureRule(); got != evaluator.RuleLiteral {
		t.Errorf("GetBloodPressureRule() = %q, want %q", got, evaluator.RuleLiteral)
	}
	if got := cfg.GetSymptomDelay(); got != 2*time.Second {
		t.Errorf("GetSymptomDelay() = %v, want 2s", got)
	}
	if got := cfg.GetLogLevel(); got != "warn" {
		t.Errorf("GetLogLevel() = %q, want %q", got, "warn")
	}
	if got := cfg.GetLogFormat(); got != "console" {
		t.Errorf("GetLogFormat() = %q, want %q", got, "console")
	}
	if cfg.NoColor {
		t.Error("NoColor should default to false")
	}
}

func TestExplicitValues(t *testing.T) {
	cfg := &Config{
		Format:            "md",
		BloodPressureRule: "clinical",
		SymptomDelay:      "150ms",
		LogLevel:          "debug",
		LogFormat:         "json",
	}

	if got := cfg.GetFormat(); got != export.FormatMarkdown {
		t.Errorf("GetFormat() = %q, want %q", got, export.FormatMarkdown)
	}
	if got := cfg.GetBloodPressureRule(); got != evaluator.RuleClinical {
		t.Errorf("GetBloodPressureRule() = %q, want %q", got, evaluator.RuleClinical)
	}
	if got := cfg.GetSymptomDelay(); got != 150*time.Millisecond {
		t.Errorf("GetSymptomDelay() = %v, want 150ms", got)
	}
	if got := cfg.GetLogLevel(); got != "debug" {
		t.Errorf("GetLogLevel() = %q, want %q", got, "debug")
	}
	if got := cfg.GetLogFormat(); got != "json" {
		t.Errorf("GetLogFormat() = %q, want %q", got, "json")
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{"format", "yaml", false},
		{"format", "csv", true},
		{"no_color", "true", false},
		{"no_color", "sometimes", true},
		{"blood_pressure_rule", "clinical", false},
		{"blood_pressure_rule", "strict", true},
		{"symptom_delay", "0s", false},
		{"symptom_delay", "-1s", true},
		{"symptom_delay", "soon", true},
		{"log_level", "error", false},
		{"log_level", "loud", true},
		{"log_format", "json", false},
		{"log_format", "xml", true},
		{"backend", "sqlite", true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := &Config{}
			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Set(%q, %q) should fail", tt.key, tt.value)
				}
				if *cfg != (Config{}) {
					t.Errorf("failed Set modified config: %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q, %q) failed: %v", tt.key, tt.value, err)
			}
		})
	}
}

func TestSetAssigns(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Set("no_color", "true"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Set("symptom_delay", "500ms"); err != nil {
		t.Fatal(err)
	}
	if !cfg.NoColor {
		t.Error("NoColor not set")
	}
	if cfg.GetSymptomDelay() != 500*time.Millisecond {
		t.Errorf("SymptomDelay = %q", cfg.SymptomDelay)
	}
}

func TestKeys(t *testing.T) {
	want := []string{"blood_pressure_rule", "format", "log_format", "log_level", "no_color", "symptom_delay"}
	got := Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := map[string]string{
		"":               "",
		"/tmp/foo":       "/tmp/foo",
		"~":              home,
		"~/reports/a.md": filepath.Join(home, "reports/a.md"),
		"reports/a.md":   "reports/a.md",
	}
	for in, want := range tests {
		if got := ExpandPath(in); got != want {
			t.Errorf("ExpandPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	useTempConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	if *cfg != (Config{}) {
		t.Errorf("Expected zero config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	useTempConfigHome(t)

	cfg := &Config{
		Format:            "json",
		NoColor:           true,
		BloodPressureRule: "clinical",
		SymptomDelay:      "1s",
		LogLevel:          "info",
		LogFormat:         "json",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Loaded config mismatch: got %+v, want %+v", loaded, cfg)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))

	cfg := &Config{Format: "yaml"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	info, err := os.Stat(GetConfigPath())
	if err != nil {
		t.Fatalf("Expected config file to be created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file mode = %o, want 600", perm)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := useTempConfigHome(t)

	configDir := filepath.Join(tmpDir, "healthai")
	os.MkdirAll(configDir, 0755)
	os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600)

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tmpDir := useTempConfigHome(t)

	configDir := filepath.Join(tmpDir, "healthai")
	os.MkdirAll(configDir, 0755)
	os.WriteFile(filepath.Join(configDir, "config.json"), []byte(`{"blood_pressure_rule": "strict"}`), 0600)

	cfg, err := Load()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Expected ErrInvalidConfig for unknown blood pressure rule, got %v", err)
	}
	if cfg == nil || cfg.BloodPressureRule != "strict" {
		t.Errorf("Expected the parsed config alongside the error, got %+v", cfg)
	}
}

func TestSanitizeClearsInvalidValues(t *testing.T) {
	cfg := &Config{
		Format:            "yaml",
		BloodPressureRule: "strict",
		SymptomDelay:      "-1s",
		LogLevel:          "verbose",
		LogFormat:         "json",
	}

	err := cfg.Sanitize()
	if err == nil {
		t.Fatal("Expected Sanitize to report the cleared values")
	}
	for _, key := range []string{"blood_pressure_rule", "symptom_delay", "log_level"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("Expected %s in %v", key, err)
		}
	}

	want := Config{Format: "yaml", LogFormat: "json"}
	if *cfg != want {
		t.Errorf("Sanitize() left %+v, want %+v", *cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Sanitized config should validate: %v", err)
	}
	if cfg.Sanitize() != nil {
		t.Error("Sanitize on a valid config should return nil")
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := useTempConfigHome(t)

	got := GetConfigPath()
	want := filepath.Join(tmpDir, "healthai", "config.json")
	if got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	data, err := json.Marshal(&Config{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Expected empty JSON object, got %s", string(data))
	}
}
