package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"buildtrack/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the effective configuration (file, environment and defaults merged) as YAML,
together with the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  buildtrack config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		loaded, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if err := printConfig(os.Stdout, viper.ConfigFileUsed(), loaded); err != nil {
			fmt.Println("Error:", err)
		}
	},
}

func printConfig(out io.Writer, path string, loaded *config.Config) error {
	source := path
	if source == "" {
		source = "(none, defaults and environment only)"
	}
	fmt.Fprintln(out, "Config file loaded from:", source)

	content, err := yaml.Marshal(loaded)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Configuration:")
	_, err = out.Write(content)
	return err
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
