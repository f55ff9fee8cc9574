package importer

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

var ErrUnsupportedFormat = eris.New("unsupported input format")

// Reader turns an uploaded file into a workbook. name is only used for
// diagnostics and, for CSV, as the sheet name.
type Reader interface {
	Read(name string, src io.Reader) (*Workbook, error)
}

// ReaderForFilename picks a reader from the file extension.
func ReaderForFilename(name string) (Reader, error) {
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(name))) {
	case ".xlsx", ".xlsm":
		return &ExcelReader{}, nil
	case ".xls":
		return &XLSReader{}, nil
	case ".csv":
		return &CSVReader{}, nil
	default:
		return nil, eris.Wrapf(ErrUnsupportedFormat, "file %s", name)
	}
}

// ReadFile opens path and reads it with the reader matching its extension.
func ReadFile(path string) (*Workbook, error) {
	reader, err := ReaderForFilename(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	return reader.Read(filepath.Base(path), file)
}

// headerIndex returns the position of the first row with any non-blank cell.
func headerIndex(rows [][]string) int {
	for i, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return i
			}
		}
	}
	return -1
}
