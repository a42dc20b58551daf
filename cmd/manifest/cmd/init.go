package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/wexinc/manifest/internal/config"
	manifesterrors "github.com/wexinc/manifest/internal/errors"
	"github.com/wexinc/manifest/internal/version"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default configuration file",
	Long: `Initialize manifest in a project directory.

This command creates the .manifest directory:
  - .manifest/config.yaml    Default configuration
  - .manifest/version.json   Version stamp

Use --force to overwrite an existing configuration.

Examples:
  manifest init          # Initialize in current directory
  manifest init --force  # Overwrite existing config`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	addInitFlags(initCmd)
}

func addInitFlags(c *cobra.Command) {
	c.Flags().BoolP("force", "f", false, "Overwrite existing configuration")
}

// runInit is the main entry point for the init command.
func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")

	path := filepath.Join(dir, config.DefaultConfigPath)
	if _, err := os.Stat(path); err == nil && !force {
		return manifesterrors.ConfigExists(path)
	}

	if err := config.Save(config.NewConfig(), path); err != nil {
		return err
	}
	cmd.Printf("Created %s\n", path)

	if err := version.SaveProjectVersion(dir, &version.ProjectVersion{
		ManifestVersion: Version,
		InitializedAt:   time.Now(),
	}); err != nil {
		return err
	}
	cmd.Printf("Created %s\n", filepath.Join(dir, version.VersionFilePath))

	cmd.Println("")
	cmd.Println("Edit .manifest/config.yaml to set the data source and default filters.")
	cmd.Println("Run 'manifest' to open the dashboard.")
	return nil
}
