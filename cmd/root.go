/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"buildtrack/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "buildtrack",
	Short: "Import construction site spreadsheets into a normalized record store.",
	Long: `
**********************************************
*              BUILDTRACK                    *
**********************************************

This CLI imports construction management spreadsheets (sites, vehicles, materials,
expenses, labour, vendors), normalizes each row into a fixed record schema and
upserts it into SQLite or PostgreSQL. It also serves the HTTP import endpoint.

Supported input formats:
- Excel: .xlsx, .xlsm, .xls
- CSV: .csv (one kind per file, named after the kind)
`,
	Example: `
  # Create configuration file
  buildtrack config create

  # Import a workbook with one sheet per record kind
  buildtrack import -i ./site-data.xlsx

  # Start the HTTP import service
  buildtrack serve --port 8080

  # Export stored records, or write a blank import template
  buildtrack export -o ./records.xlsx
  buildtrack export -o ./template.xlsx --template
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !requiresConfig(cmd) {
			return nil
		}

		loaded, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		if err := config.InitLogger(loaded.Log); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.buildtrack.yaml, then ./.buildtrack.yaml)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path (overrides store.path)")
	_ = viper.BindPFlag(config.KeyStorePath, rootCmd.PersistentFlags().Lookup("db"))
}

func requiresConfig(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	switch cmd.Name() {
	case "serve", "import", "export":
		return true
	default:
		return false
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".buildtrack" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".buildtrack")
	}

	viper.SetEnvPrefix("BUILDTRACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // BUILDTRACK_STORE_DRIVER, BUILDTRACK_SERVER_PORT, ...

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found, using defaults. Create one with: buildtrack config create")
	}
}
