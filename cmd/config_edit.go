package cmd

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"buildtrack/config"
)

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the active config in an editor.",
	Long: `Open the active buildtrack config file in your editor.

Editor selection order:
1) $VISUAL
2) $EDITOR
3) vi

If no config file exists yet, this command creates one with an example template first.
After the editor exits, the content is validated as buildtrack YAML config.`,
	Example: `
  # Edit active config
  buildtrack config edit
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := resolveConfigEditPath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}

		created, err := ensureConfigFileWithTemplate(configPath)
		if err != nil {
			return err
		}
		if created {
			fmt.Printf("No config file found. Created example config at: %s\n", configPath)
		}

		editor := resolveEditorValue(os.Getenv("VISUAL"), os.Getenv("EDITOR"))
		editorCommand, err := buildEditorCommand(editor, configPath)
		if err != nil {
			return err
		}
		editorCommand.Stdin = os.Stdin
		editorCommand.Stdout = os.Stdout
		editorCommand.Stderr = os.Stderr
		if err := editorCommand.Run(); err != nil {
			return eris.Wrap(err, "opening editor failed")
		}

		content, err := os.ReadFile(configPath)
		if err != nil {
			return eris.Wrap(err, "reading edited config failed")
		}
		edited, err := config.ValidateYAMLContent(content)
		if err != nil {
			return eris.Wrapf(err, "config validation failed in %s", configPath)
		}

		fmt.Printf("Configuration saved and validated: %s\n", configPath)
		fmt.Printf("Store: %s, log level: %s, server port: %d\n",
			describeStoreTarget(edited.Store), edited.Log.Level, edited.Server.Port)
		return nil
	},
}

func resolveConfigEditPath(configFileFlag, configFileUsed string) (string, error) {
	if strings.TrimSpace(configFileFlag) != "" {
		return configFileFlag, nil
	}
	if strings.TrimSpace(configFileUsed) != "" {
		return configFileUsed, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", eris.Wrap(err, "resolve home directory")
	}
	return filepath.Join(home, ".buildtrack.yaml"), nil
}

func ensureConfigFileWithTemplate(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, eris.Wrap(err, "checking config file failed")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, eris.Wrap(err, "creating config directory failed")
	}
	if err := os.WriteFile(path, []byte(config.ExampleYAML()), 0o600); err != nil {
		return false, eris.Wrap(err, "creating example config failed")
	}

	return true, nil
}

// describeStoreTarget names the configured backend without leaking credentials.
func describeStoreTarget(store config.StoreConfig) string {
	if store.Driver != config.DriverPostgres {
		return fmt.Sprintf("sqlite (%s)", store.Path)
	}
	parsed, err := url.Parse(store.DatabaseURL)
	if err != nil || parsed.Host == "" {
		return "postgres"
	}
	return fmt.Sprintf("postgres (%s)", parsed.Redacted())
}

func resolveEditorValue(visual, editor string) string {
	if strings.TrimSpace(visual) != "" {
		return visual
	}
	if strings.TrimSpace(editor) != "" {
		return editor
	}
	return "vi"
}

func buildEditorCommand(editorValue, configPath string) (*exec.Cmd, error) {
	fields := strings.Fields(strings.TrimSpace(editorValue))
	if len(fields) == 0 {
		return nil, eris.New("editor command is empty")
	}

	args := append(fields[1:], configPath)
	return exec.Command(fields[0], args...), nil
}

func init() {
	configCmd.AddCommand(configEditCmd)
}
