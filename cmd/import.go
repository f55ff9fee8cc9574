package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"buildtrack/entity"
	"buildtrack/importer"
	"buildtrack/storage"
)

var (
	importInputs             []string
	importContinueOnRowError bool
	importUseSourceIDs       bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import spreadsheet files into the configured record store",
	Long: `Read each input file, map every recognized sheet onto its record kind and upsert the rows.

Sheets are matched by name (case-insensitive): sites, vehicles, materials, expenses, labour, vendors.
Other sheets are skipped. A row missing a required field stops its sheet; other sheets continue.
CSV files hold a single kind and must be named after it (e.g. vendors.csv).`,
	Example: `
  # Import one workbook
  buildtrack import -i ./site-data.xlsx

  # Import several files, keeping good rows of a sheet that has bad ones
  buildtrack import -i ./sites.csv -i ./vendors.csv --continue-on-row-error

  # Re-import an export so rows update by their id column
  buildtrack import -i ./records.xlsx --use-source-ids
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		options := importer.Options{
			ContinueOnRowError: cfg.Import.ContinueOnRowError,
			UseSourceIDs:       cfg.Import.UseSourceIDs,
		}
		if cmd.Flags().Changed("continue-on-row-error") {
			options.ContinueOnRowError = importContinueOnRowError
		}
		if cmd.Flags().Changed("use-source-ids") {
			options.UseSourceIDs = importUseSourceIDs
		}

		store, err := storage.Open(cmd.Context(), cfg.Store)
		if err != nil {
			return err
		}
		defer store.Close()

		runner := importer.New(store, options, importer.WithLogger(zap.L().Named("importer")))

		failedFiles := 0
		for _, path := range importInputs {
			workbook, err := importer.ReadFile(path)
			if err != nil {
				return err
			}

			result, err := runner.Run(cmd.Context(), workbook)
			if err != nil {
				return err
			}

			printImportResult(os.Stdout, path, result)
			if len(result.Errors) > 0 {
				failedFiles++
			}
		}

		if failedFiles > 0 {
			return eris.Errorf("%d of %d files had sheet errors", failedFiles, len(importInputs))
		}
		return nil
	},
}

func printImportResult(out io.Writer, path string, result *importer.Result) {
	summary := result.Summary()
	counts := make([]string, 0, len(summary))
	for _, kind := range entity.Kinds() {
		counts = append(counts, fmt.Sprintf("%s=%d", kind, summary[kind]))
	}

	fmt.Fprintf(out, "Import completed. File: %s, Sheets: %d, Skipped sheets: %d, Rows read: %d, Records: %s\n",
		path,
		result.SheetsProcessed,
		result.SheetsSkipped,
		result.RowsRead,
		strings.Join(counts, " "),
	)
	for _, message := range result.Errors {
		fmt.Fprintf(out, "  %s\n", message)
	}
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringArrayVarP(&importInputs, "input", "i", nil, "Input file path (repeatable)")
	importCmd.Flags().BoolVar(&importContinueOnRowError, "continue-on-row-error", false, "Report bad rows and keep importing the rest of their sheet (overrides import.continue_on_row_error)")
	importCmd.Flags().BoolVar(&importUseSourceIDs, "use-source-ids", false, "Use the id column as the upsert key when present (overrides import.use_source_ids)")

	_ = importCmd.MarkFlagRequired("input")
}
