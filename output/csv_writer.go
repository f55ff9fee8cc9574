package output

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"
)

// CSVWriter writes exactly one table. Name the file after the kind
// (sites.csv) to import it back.
type CSVWriter struct{}

func (w *CSVWriter) Write(path string, tables []Table) error {
	if len(tables) != 1 {
		return eris.Errorf("csv output holds exactly one record kind, got %d", len(tables))
	}
	table := tables[0]

	file, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "create csv output %s", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(table.Columns); err != nil {
		return eris.Wrap(err, "write csv headers")
	}

	for _, record := range table.Rows {
		row := make([]string, len(table.Columns))
		for i, column := range table.Columns {
			row[i] = cellText(record[column])
		}
		if err := writer.Write(row); err != nil {
			return eris.Wrap(err, "write csv row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return eris.Wrap(err, "flush csv output")
	}

	return nil
}
