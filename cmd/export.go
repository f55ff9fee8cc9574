package cmd

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"buildtrack/entity"
	"buildtrack/output"
	"buildtrack/storage"
)

var (
	exportFormat   string
	exportOutput   string
	exportKinds    []string
	exportTemplate bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored records to Excel/CSV, or write a blank import template",
	Long: `Export stored records with one sheet per record kind.

Excel output holds every selected kind; CSV output holds exactly one (--kind).
With --template the sheets only carry the importable column headers, ready to fill in.
Exported workbooks can be imported again; add --use-source-ids on import to update rows in place.

Output format can be selected explicitly via --format or inferred from --output extension.`,
	Example: `
  # Export everything to Excel
  buildtrack export -o ./records.xlsx

  # Export vendors to CSV
  buildtrack export -o ./vendors.csv --kind vendors

  # Write the blank import template
  buildtrack export -o ./template.xlsx --template
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = output.FormatForPath(exportOutput)
		}
		writer, err := output.WriterForFormat(format)
		if err != nil {
			return err
		}

		kinds, err := resolveExportKinds(exportKinds)
		if err != nil {
			return err
		}

		var tables []output.Table
		if exportTemplate {
			tables = output.TemplateTables(kinds)
		} else {
			store, err := storage.Open(cmd.Context(), cfg.Store)
			if err != nil {
				return err
			}
			defer store.Close()

			tables, err = output.LoadTables(cmd.Context(), store, kinds)
			if err != nil {
				return err
			}
		}

		if err := writer.Write(exportOutput, tables); err != nil {
			return err
		}

		rows := 0
		for _, table := range tables {
			rows += len(table.Rows)
		}
		fmt.Printf("Export completed. Kinds: %d, Rows: %d, Format: %s, File: %s\n", len(tables), rows, format, exportOutput)
		return nil
	},
}

// resolveExportKinds defaults to every kind in canonical order.
func resolveExportKinds(names []string) ([]entity.Kind, error) {
	if len(names) == 0 {
		return entity.Kinds(), nil
	}

	kinds := make([]entity.Kind, 0, len(names))
	seen := make(map[entity.Kind]bool, len(names))
	for _, name := range names {
		kind, ok := entity.ParseKind(name)
		if !ok {
			return nil, eris.Errorf("unknown record kind %q (valid: sites, vehicles, materials, expenses, labour, vendors)", name)
		}
		if seen[kind] {
			continue
		}
		seen[kind] = true
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringSliceVar(&exportKinds, "kind", nil, "Record kind to export (repeatable, default all)")
	exportCmd.Flags().BoolVar(&exportTemplate, "template", false, "Write column headers only")

	_ = exportCmd.MarkFlagRequired("output")
}
