package importer

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// CSVReader reads a single-sheet CSV file. The sheet is named after the file
// stem, so sites.csv imports as the sites sheet.
type CSVReader struct{}

func (r *CSVReader) Read(name string, src io.Reader) (*Workbook, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	grid, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "read csv %s", name)
	}
	if len(grid) > 0 && len(grid[0]) > 0 {
		grid[0][0] = strings.TrimPrefix(grid[0][0], "\ufeff")
	}

	base := filepath.Base(name)
	return &Workbook{Sheets: []Sheet{{
		Name: strings.TrimSuffix(base, filepath.Ext(base)),
		Rows: rowsFromGrid(grid),
	}}}, nil
}
