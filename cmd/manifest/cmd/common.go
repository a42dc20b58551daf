package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wexinc/manifest/internal/config"
	"github.com/wexinc/manifest/internal/dataset"
	manifesterrors "github.com/wexinc/manifest/internal/errors"
	"github.com/wexinc/manifest/internal/explore"
	"github.com/wexinc/manifest/internal/logging"
	"github.com/wexinc/manifest/internal/passenger"
	"github.com/wexinc/manifest/internal/version"
)

// loadConfig reads the config named by --config and applies --source.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, configError(err)
	}

	if source, _ := cmd.Flags().GetString("source"); source != "" {
		cfg.Data.Source = source
	}
	return cfg, nil
}

// configError turns a loader failure into an actionable error.
func configError(err error) error {
	var le *config.LoadError
	if !errors.As(err, &le) {
		return err
	}

	if os.IsNotExist(le.Err) {
		return manifesterrors.WithSuggestion(manifesterrors.ErrNotFound,
			fmt.Sprintf("config file not found: %s", le.Path),
			"Create one with 'manifest init', or drop --config to use the defaults.")
	}

	var verrs config.ValidationErrors
	if errors.As(le.Err, &verrs) && len(verrs) > 0 {
		return manifesterrors.ConfigInvalid(verrs[0].Field, verrs.Error(), nil).
			WithDetails("path", le.Path)
	}

	return manifesterrors.ConfigParseError(le.Path, le.Err)
}

// initLogging installs the file logger described by cfg and returns a
// function that closes it. Failure to open the log file is not fatal.
func initLogging(cmd *cobra.Command, cfg *config.Config) func() {
	level, err := logging.ParseLevel(string(cfg.Logging.Level))
	if err != nil {
		level = logging.LevelInfo
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = logging.LevelDebug
	}

	logConfig := logging.DefaultConfig()
	logConfig.Level = level
	logConfig.LogDir = cfg.Logging.Dir
	logConfig.JSONFormat = cfg.Logging.JSON

	if err := logging.InitGlobal(logConfig); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
		return func() {}
	}

	logging.Info("manifest starting", "command", cmd.Name(), "version", Version, "source", cfg.Data.Source)
	return func() { _ = logging.CloseGlobal() }
}

// datasetOptions maps the data config onto loader options.
func datasetOptions(cfg *config.Config) dataset.Options {
	return dataset.Options{
		Source:   cfg.Data.Source,
		CacheDir: cfg.Data.CacheDir,
		Timeout:  cfg.Data.Timeout,
		Logger:   logging.Global(),
	}
}

// loadDataset loads the configured dataset and logs how long it took.
func loadDataset(ctx context.Context, cfg *config.Config) (*passenger.Dataset, error) {
	start := time.Now()
	ds, err := dataset.Load(ctx, datasetOptions(cfg))
	if err != nil {
		logging.Error("dataset load failed", "source", cfg.Data.Source, "error", err)
		return nil, err
	}
	logging.Info("dataset loaded", "source", ds.Source(), "passengers", ds.Len(), "elapsed", time.Since(start))
	return ds, nil
}

// filterOverrides holds the filter flags a user actually set.
type filterOverrides struct {
	sexes   []string
	classes []int
	ageMin  *int
	ageMax  *int
}

// readFilterFlags reads --sex, --class, --age-min and --age-max.
func readFilterFlags(cmd *cobra.Command) filterOverrides {
	var o filterOverrides
	f := cmd.Flags()
	if f.Changed("sex") {
		o.sexes, _ = f.GetStringSlice("sex")
	}
	if f.Changed("class") {
		o.classes, _ = f.GetIntSlice("class")
	}
	if f.Changed("age-min") {
		v, _ := f.GetInt("age-min")
		o.ageMin = &v
	}
	if f.Changed("age-max") {
		v, _ := f.GetInt("age-max")
		o.ageMax = &v
	}
	return o
}

// resolveCriteria builds the starting criteria for ds. Configured filters
// override the all-observed defaults and flags override both.
func resolveCriteria(cfg *config.Config, o filterOverrides, ds *passenger.Dataset) explore.Criteria {
	c := explore.DefaultCriteria(ds)
	if len(cfg.Filters.Sexes) > 0 {
		c.Sexes = append([]string(nil), cfg.Filters.Sexes...)
	}
	if len(cfg.Filters.Classes) > 0 {
		c.Classes = append([]int(nil), cfg.Filters.Classes...)
	}
	c.Age = explore.AgeRange{Min: cfg.Filters.AgeMin, Max: cfg.Filters.AgeMax}

	if o.sexes != nil {
		c.Sexes = o.sexes
	}
	if o.classes != nil {
		c.Classes = o.classes
	}
	if o.ageMin != nil {
		c.Age.Min = *o.ageMin
	}
	if o.ageMax != nil {
		c.Age.Max = *o.ageMax
	}
	return c
}

// validateFilterFlags rejects an age range outside the slider domain
// before any data is loaded.
func validateFilterFlags(cfg *config.Config, o filterOverrides) error {
	age := explore.AgeRange{Min: cfg.Filters.AgeMin, Max: cfg.Filters.AgeMax}
	if o.ageMin != nil {
		age.Min = *o.ageMin
	}
	if o.ageMax != nil {
		age.Max = *o.ageMax
	}
	if err := (explore.Criteria{Age: age}).Validate(); err != nil {
		return manifesterrors.InvalidCriteria("age", err.Error())
	}
	for _, k := range o.classes {
		if k <= 0 {
			return manifesterrors.InvalidCriteria("class", fmt.Sprintf("class %d is not a positive class number", k))
		}
	}
	return nil
}

// prepare loads config, installs logging and validates the filter flags.
// The returned cleanup must be called when the command finishes.
func prepare(cmd *cobra.Command) (*config.Config, filterOverrides, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, filterOverrides{}, nil, err
	}

	o := readFilterFlags(cmd)
	if err := validateFilterFlags(cfg, o); err != nil {
		return nil, filterOverrides{}, nil, err
	}

	return cfg, o, initLogging(cmd, cfg), nil
}

// touchProject records this run in an initialized project's version stamp.
func touchProject(dir string) {
	pv, err := version.LoadProjectVersion(dir)
	if err != nil {
		return
	}
	if pv.NewerThan(Version) {
		logging.Warn("project was last used by a newer manifest", "project_version", pv.ManifestVersion, "version", Version)
	}
	if err := version.UpdateLastRun(dir, Version); err != nil {
		logging.Warn("failed to update version stamp", "error", err)
	}
}
