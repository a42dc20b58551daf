package config

import (
	"strings"
	"testing"
	"time"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Data.Source != DefaultSource {
		t.Errorf("expected default source %q, got %q", DefaultSource, cfg.Data.Source)
	}
	if cfg.Data.CacheDir != ".manifest/cache" {
		t.Errorf("expected cache dir .manifest/cache, got %q", cfg.Data.CacheDir)
	}
	if cfg.Data.Timeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %v", cfg.Data.Timeout)
	}
	if cfg.Filters.AgeMin != 0 || cfg.Filters.AgeMax != 80 {
		t.Errorf("expected age range [0, 80], got [%d, %d]", cfg.Filters.AgeMin, cfg.Filters.AgeMax)
	}
	if cfg.Filters.Sexes == nil || cfg.Filters.Classes == nil {
		t.Error("filter lists should be non-nil")
	}
	if cfg.Charts.HistogramBins != 30 {
		t.Errorf("expected 30 histogram bins, got %d", cfg.Charts.HistogramBins)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected addr :8080, got %q", cfg.Server.Addr)
	}
	if cfg.Logging.Level != LogLevelInfo {
		t.Errorf("expected log level info, got %q", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Filters: FiltersConfig{AgeMin: 10, AgeMax: 20},
		Charts:  ChartsConfig{Width: 1024},
	}
	cfg.ApplyDefaults()

	if cfg.Data.Source != DefaultSource {
		t.Errorf("expected default source, got %q", cfg.Data.Source)
	}
	if cfg.Data.Timeout != DefaultFetchTimeout {
		t.Errorf("expected default timeout, got %v", cfg.Data.Timeout)
	}
	if cfg.Charts.Width != 1024 {
		t.Errorf("explicit width should be kept, got %d", cfg.Charts.Width)
	}
	if cfg.Charts.Height != DefaultChartHeight {
		t.Errorf("expected default height, got %d", cfg.Charts.Height)
	}
	if cfg.Filters.AgeMin != 10 || cfg.Filters.AgeMax != 20 {
		t.Errorf("filter ages should be untouched, got [%d, %d]", cfg.Filters.AgeMin, cfg.Filters.AgeMax)
	}
	if cfg.Filters.Sexes == nil || cfg.Filters.Classes == nil {
		t.Error("nil filter lists should be initialized")
	}
	if cfg.Logging.Level != LogLevelInfo || cfg.Logging.Dir != DefaultLogDir {
		t.Errorf("unexpected logging defaults %+v", cfg.Logging)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:    "empty source",
			modify:  func(c *Config) { c.Data.Source = "  " },
			wantErr: "data.source",
		},
		{
			name:    "negative timeout",
			modify:  func(c *Config) { c.Data.Timeout = -time.Second },
			wantErr: "data.timeout",
		},
		{
			name:    "age min below domain",
			modify:  func(c *Config) { c.Filters.AgeMin = -1 },
			wantErr: "filters.age_min",
		},
		{
			name:    "age max above domain",
			modify:  func(c *Config) { c.Filters.AgeMax = 81 },
			wantErr: "filters.age_max",
		},
		{
			name: "inverted range",
			modify: func(c *Config) {
				c.Filters.AgeMin = 50
				c.Filters.AgeMax = 20
			},
			wantErr: "should not be less than",
		},
		{
			name:    "bad class",
			modify:  func(c *Config) { c.Filters.Classes = []int{1, 0} },
			wantErr: "filters.classes[1]",
		},
		{
			name:    "negative bins",
			modify:  func(c *Config) { c.Charts.HistogramBins = -3 },
			wantErr: "charts.histogram_bins",
		},
		{
			name:    "bad log level",
			modify:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
		{
			name: "single-year range",
			modify: func(c *Config) {
				c.Filters.AgeMin = 30
				c.Filters.AgeMax = 30
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	var empty ValidationErrors
	if empty.Error() != "" {
		t.Errorf("expected empty message, got %q", empty.Error())
	}

	errs := ValidationErrors{
		{Field: "a", Message: "bad"},
		{Field: "b", Message: "worse"},
	}
	msg := errs.Error()
	if !strings.HasPrefix(msg, "multiple validation errors:") {
		t.Errorf("unexpected message %q", msg)
	}
	if !strings.Contains(msg, "a: bad") || !strings.Contains(msg, "b: worse") {
		t.Errorf("message should list every error, got %q", msg)
	}
}

func TestDataConfig_IsBuiltin(t *testing.T) {
	tests := map[string]bool{
		"builtin":               true,
		" BUILTIN ":             true,
		"titanic.csv":           false,
		"https://x/titanic.csv": false,
	}
	for source, want := range tests {
		if got := (DataConfig{Source: source}).IsBuiltin(); got != want {
			t.Errorf("IsBuiltin(%q) = %v, want %v", source, got, want)
		}
	}
}
