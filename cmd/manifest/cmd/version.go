package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/wexinc/manifest/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show detailed version information for manifest.

Displays the current version, commit hash, build date,
and Go/platform information.

Examples:
  manifest version          # Show detailed version info
  manifest version --json   # Machine-readable output`,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	addVersionFlags(versionCmd)
}

func addVersionFlags(c *cobra.Command) {
	c.Flags().Bool("json", false, "Output in JSON format")
}

// runVersion handles the version command.
func runVersion(cmd *cobra.Command, args []string) error {
	info := version.NewInfo(Version, Commit, Date)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	cmd.Println(info.FullString())
	return nil
}
