package cmd

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the active configuration file.",
	Long: `Delete the configuration file currently selected by buildtrack.

If no configuration file is active, the command returns an error.`,
	Example: `
  # Delete active config
  buildtrack config delete

  # Delete config at a custom path
  buildtrack --configFile ./custom-buildtrack.yaml config delete
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := viper.ConfigFileUsed()
		if configPath == "" {
			return eris.New("no configuration file found")
		}

		if err := os.Remove(configPath); err != nil {
			return eris.Wrap(err, "error deleting configuration file")
		}

		fmt.Printf("Configuration file successfully deleted: %s\n", configPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}
