package output

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"
)

// ExcelWriter writes one sheet per table. Sheet names are the kind names, so
// the file imports back as is.
type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, tables []Table) error {
	if len(tables) == 0 {
		return eris.New("no tables to write")
	}

	file := excelize.NewFile()
	defer file.Close()

	for i, table := range tables {
		sheet := string(table.Kind)
		if i == 0 {
			if err := file.SetSheetName(file.GetSheetName(0), sheet); err != nil {
				return eris.Wrapf(err, "rename sheet to %s", sheet)
			}
		} else if _, err := file.NewSheet(sheet); err != nil {
			return eris.Wrapf(err, "create sheet %s", sheet)
		}

		if err := writeSheet(file, sheet, table); err != nil {
			return err
		}
	}

	if err := file.SaveAs(path); err != nil {
		return eris.Wrapf(err, "save excel output %s", path)
	}

	return nil
}

func writeSheet(file *excelize.File, sheet string, table Table) error {
	header := make([]any, len(table.Columns))
	for i, column := range table.Columns {
		header[i] = column
	}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return eris.Wrapf(err, "set excel header for %s", sheet)
	}

	for i, record := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return eris.Wrapf(err, "excel row %d", i+2)
		}
		values := make([]any, len(table.Columns))
		for col, column := range table.Columns {
			values[col] = excelValue(record[column])
		}
		if err := file.SetSheetRow(sheet, cell, &values); err != nil {
			return eris.Wrapf(err, "set excel row %s!%s", sheet, cell)
		}
	}
	return nil
}

// excelValue keeps numbers numeric and renders timestamps as text.
func excelValue(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case []byte:
		return string(v)
	default:
		return v
	}
}
