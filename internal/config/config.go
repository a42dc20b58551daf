// Package config provides configuration data structures for manifest.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config represents the complete manifest configuration loaded from .manifest/config.yaml.
type Config struct {
	Data    DataConfig    `yaml:"data"    json:"data"    mapstructure:"data"`
	Filters FiltersConfig `yaml:"filters" json:"filters" mapstructure:"filters"`
	Charts  ChartsConfig  `yaml:"charts"  json:"charts"  mapstructure:"charts"`
	Server  ServerConfig  `yaml:"server"  json:"server"  mapstructure:"server"`
	Logging LoggingConfig `yaml:"logging" json:"logging" mapstructure:"logging"`
}

// DataConfig configures where the passenger manifest comes from.
type DataConfig struct {
	// Source is an http(s) URL, a local CSV path, or "builtin" for the bundled sample.
	Source string `yaml:"source" json:"source" mapstructure:"source"`
	// CacheDir holds the last successfully downloaded copy of a remote source.
	CacheDir string `yaml:"cache_dir" json:"cache_dir" mapstructure:"cache_dir"`
	// Timeout bounds the remote download (default: 30s).
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
}

// FiltersConfig holds the initial filter criteria. Empty lists select every observed value.
type FiltersConfig struct {
	Sexes   []string `yaml:"sexes"   json:"sexes"   mapstructure:"sexes"`
	Classes []int    `yaml:"classes" json:"classes" mapstructure:"classes"`
	AgeMin  int      `yaml:"age_min" json:"age_min" mapstructure:"age_min"`
	AgeMax  int      `yaml:"age_max" json:"age_max" mapstructure:"age_max"`
}

// ChartsConfig configures chart computation and PNG output.
type ChartsConfig struct {
	// HistogramBins is the number of equal-width age bins (default: 30).
	HistogramBins int `yaml:"histogram_bins" json:"histogram_bins" mapstructure:"histogram_bins"`
	// Width and Height are the PNG dimensions in pixels.
	Width  int `yaml:"width"  json:"width"  mapstructure:"width"`
	Height int `yaml:"height" json:"height" mapstructure:"height"`
}

// ServerConfig configures the HTTP dashboard.
type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr" mapstructure:"addr"`
	// ReadTimeout bounds reading a request (default: 10s).
	ReadTimeout time.Duration `yaml:"read_timeout" json:"read_timeout" mapstructure:"read_timeout"`
}

// LogLevel is the minimum level written to the log file.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level LogLevel `yaml:"level" json:"level" mapstructure:"level"`
	// Dir is the directory for log files (default: .manifest/logs).
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// JSON switches the log format from text to JSON.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
}

// Default values.
const (
	DefaultSource        = "https://raw.githubusercontent.com/datasciencedojo/datasets/master/titanic.csv"
	BuiltinSource        = "builtin"
	DefaultCacheDir      = ".manifest/cache"
	DefaultFetchTimeout  = 30 * time.Second
	DefaultAgeMin        = 0
	DefaultAgeMax        = 80
	DefaultHistogramBins = 30
	DefaultChartWidth    = 800
	DefaultChartHeight   = 480
	DefaultAddr          = ":8080"
	DefaultReadTimeout   = 10 * time.Second
	DefaultLogDir        = ".manifest/logs"
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Data: DataConfig{
			Source:   DefaultSource,
			CacheDir: DefaultCacheDir,
			Timeout:  DefaultFetchTimeout,
		},
		Filters: FiltersConfig{
			Sexes:   []string{},
			Classes: []int{},
			AgeMin:  DefaultAgeMin,
			AgeMax:  DefaultAgeMax,
		},
		Charts: ChartsConfig{
			HistogramBins: DefaultHistogramBins,
			Width:         DefaultChartWidth,
			Height:        DefaultChartHeight,
		},
		Server: ServerConfig{
			Addr:        DefaultAddr,
			ReadTimeout: DefaultReadTimeout,
		},
		Logging: LoggingConfig{
			Level: LogLevelInfo,
			Dir:   DefaultLogDir,
			JSON:  false,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
// Filter ages are left alone since zero is a meaningful bound.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Data.Source == "" {
		c.Data.Source = defaults.Data.Source
	}
	if c.Data.CacheDir == "" {
		c.Data.CacheDir = defaults.Data.CacheDir
	}
	if c.Data.Timeout == 0 {
		c.Data.Timeout = defaults.Data.Timeout
	}

	if c.Filters.Sexes == nil {
		c.Filters.Sexes = []string{}
	}
	if c.Filters.Classes == nil {
		c.Filters.Classes = []int{}
	}

	if c.Charts.HistogramBins == 0 {
		c.Charts.HistogramBins = defaults.Charts.HistogramBins
	}
	if c.Charts.Width == 0 {
		c.Charts.Width = defaults.Charts.Width
	}
	if c.Charts.Height == 0 {
		c.Charts.Height = defaults.Charts.Height
	}

	if c.Server.Addr == "" {
		c.Server.Addr = defaults.Server.Addr
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = defaults.Server.ReadTimeout
	}

	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = defaults.Logging.Dir
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	// Validate data config
	if strings.TrimSpace(c.Data.Source) == "" {
		errs = append(errs, &ValidationError{Field: "data.source", Message: "must not be empty"})
	}
	if c.Data.Timeout < 0 {
		errs = append(errs, &ValidationError{Field: "data.timeout", Message: "must be non-negative"})
	}

	// Validate filters
	if c.Filters.AgeMin < DefaultAgeMin || c.Filters.AgeMin > DefaultAgeMax {
		errs = append(errs, &ValidationError{
			Field:   "filters.age_min",
			Message: fmt.Sprintf("must be between %d and %d", DefaultAgeMin, DefaultAgeMax),
		})
	}
	if c.Filters.AgeMax < DefaultAgeMin || c.Filters.AgeMax > DefaultAgeMax {
		errs = append(errs, &ValidationError{
			Field:   "filters.age_max",
			Message: fmt.Sprintf("must be between %d and %d", DefaultAgeMin, DefaultAgeMax),
		})
	}
	if c.Filters.AgeMin > c.Filters.AgeMax {
		errs = append(errs, &ValidationError{
			Field:   "filters.age_max",
			Message: "should not be less than filters.age_min",
		})
	}
	for i, class := range c.Filters.Classes {
		if class <= 0 {
			errs = append(errs, &ValidationError{
				Field:   fmt.Sprintf("filters.classes[%d]", i),
				Message: "must be a positive class number",
			})
		}
	}

	// Validate charts
	if c.Charts.HistogramBins < 0 {
		errs = append(errs, &ValidationError{Field: "charts.histogram_bins", Message: "must be non-negative"})
	}
	if c.Charts.Width < 0 {
		errs = append(errs, &ValidationError{Field: "charts.width", Message: "must be non-negative"})
	}
	if c.Charts.Height < 0 {
		errs = append(errs, &ValidationError{Field: "charts.height", Message: "must be non-negative"})
	}

	// Validate server
	if c.Server.ReadTimeout < 0 {
		errs = append(errs, &ValidationError{Field: "server.read_timeout", Message: "must be non-negative"})
	}

	// Validate logging level
	if c.Logging.Level != "" {
		switch c.Logging.Level {
		case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
			// valid
		default:
			errs = append(errs, &ValidationError{
				Field:   "logging.level",
				Message: "must be 'debug', 'info', 'warn', or 'error'",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsBuiltin reports whether the data source is the bundled sample.
func (d DataConfig) IsBuiltin() bool {
	return strings.EqualFold(strings.TrimSpace(d.Source), BuiltinSource)
}
