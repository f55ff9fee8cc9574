package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage buildtrack configuration file values.",
	Long: `Create, edit, display, and delete the buildtrack configuration file.

The configuration stores application-wide values:
- server.port / max_upload_mb / allowed_origins / import_rate_per_sec / import_burst
- store.driver (sqlite|postgres) / path / database_url
- log.level / log.format
- import.continue_on_row_error / import.use_source_ids

Every key can also be set through the environment, e.g. BUILDTRACK_STORE_DRIVER=postgres.`,
	Example: `
  # Create default config in $HOME/.buildtrack.yaml
  buildtrack config create

  # Show active config and source file
  buildtrack config show

  # Open active config in editor (creates example if missing)
  buildtrack config edit

  # Delete active config file
  buildtrack config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
