package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"buildtrack/config"
)

var (
	deletePromptInput  io.Reader = os.Stdin
	deletePromptOutput io.Writer = os.Stdout
)

// SQLite keeps these next to the database file in WAL mode.
var sqliteSidecarSuffixes = []string{"-wal", "-shm"}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the complete SQLite database file",
	Long: `Destructive database cleanup command.

This command deletes the SQLite database file (store.path or --db) together with its
WAL side files. PostgreSQL stores are never touched.
Before deletion, an interactive security prompt requires typing exactly "Y".`,
	Example: `
  # Delete the configured SQLite file (requires interactive confirmation)
  buildtrack delete

  # Delete a specific SQLite file
  buildtrack delete --db ./buildtrack.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if driver := strings.ToLower(viper.GetString(config.KeyStoreDriver)); driver != "" && driver != config.DriverSQLite {
			return eris.Errorf("delete only supports the sqlite store, configured driver is %q", driver)
		}

		path := viper.GetString(config.KeyStorePath)
		confirmed, err := confirmDeletePrompt(deletePromptInput, deletePromptOutput, path)
		if err != nil {
			return err
		}
		if !confirmed {
			return eris.New("delete aborted: confirmation was not 'Y'")
		}

		if err := removeDatabaseFile(path); err != nil {
			return err
		}
		fmt.Printf("Deleted database file: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func confirmDeletePrompt(input io.Reader, output io.Writer, path string) (bool, error) {
	if input == nil {
		return false, eris.New("delete confirmation input is not available")
	}

	if output == nil {
		output = io.Discard
	}

	if _, err := fmt.Fprintf(output, "Delete database file %q? Type Y to confirm: ", path); err != nil {
		return false, eris.Wrap(err, "write delete confirmation prompt")
	}

	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			line = strings.TrimSpace(line)
			return line == "Y", nil
		}
		return false, eris.Wrap(err, "read delete confirmation")
	}
	return strings.TrimSpace(line) == "Y", nil
}

func removeDatabaseFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return eris.Errorf("database file not found: %s", path)
		}
		return eris.Wrap(err, "stat database file")
	}
	if info.IsDir() {
		return eris.Errorf("database path is a directory: %s", path)
	}
	if err := os.Remove(path); err != nil {
		return eris.Wrap(err, "delete database file")
	}

	for _, suffix := range sqliteSidecarSuffixes {
		if err := os.Remove(path + suffix); err != nil && !errors.Is(err, os.ErrNotExist) {
			return eris.Wrapf(err, "delete database file %s", path+suffix)
		}
	}
	return nil
}
