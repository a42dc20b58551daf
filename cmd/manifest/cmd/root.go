// Package cmd provides the CLI commands for manifest.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	manifesterrors "github.com/wexinc/manifest/internal/errors"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Titanic passenger explorer",
	Long: `Manifest explores the Titanic passenger manifest.

Filter passengers by sex, class and age, then read the survival metrics
and charts in a terminal dashboard, a browser, or as plain output for
scripts.

With no subcommand manifest starts the terminal dashboard, same as
"manifest explore".`,
	RunE:          runExplore,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	addGlobalFlags(rootCmd)
}

// addGlobalFlags registers the flags shared by every command.
func addGlobalFlags(root *cobra.Command) {
	f := root.PersistentFlags()
	f.String("config", "", "Path to config file (default: .manifest/config.yaml)")
	f.String("source", "", "Dataset URL, CSV path, or 'builtin'")
	f.StringSlice("sex", nil, "Sex to include (repeatable)")
	f.IntSlice("class", nil, "Passenger class to include (repeatable)")
	f.Int("age-min", 0, "Minimum age, inclusive")
	f.Int("age-max", 80, "Maximum age, inclusive")
	f.BoolP("verbose", "v", false, "Enable debug logging")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("manifest {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err for a person at a terminal. Manifest errors carry
// their details and suggestion.
func printError(w io.Writer, err error) {
	if me, ok := manifesterrors.As(err); ok {
		fmt.Fprint(w, me.Format())
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
