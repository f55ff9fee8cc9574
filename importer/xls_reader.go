package importer

import (
	"bytes"
	"io"

	"github.com/extrame/xls"
	"github.com/rotisserie/eris"
)

// XLSReader reads legacy BIFF (.xls) workbooks. The format exposes display
// strings only, so numeric-looking cells are typed with inferCellValue.
type XLSReader struct {
	// Charset passed to the BIFF decoder; empty means utf-8.
	Charset string
}

func (r *XLSReader) Read(name string, src io.Reader) (workbook *Workbook, err error) {
	// The BIFF decoder panics on some malformed files.
	defer func() {
		if recovered := recover(); recovered != nil {
			workbook = nil
			err = eris.Errorf("decode xls workbook %s: %v", name, recovered)
		}
	}()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, eris.Wrapf(err, "read xls upload %s", name)
	}

	charset := r.Charset
	if charset == "" {
		charset = "utf-8"
	}
	book, err := xls.OpenReader(bytes.NewReader(data), charset)
	if err != nil {
		return nil, eris.Wrapf(err, "open xls workbook %s", name)
	}
	if book.NumSheets() == 0 {
		return nil, eris.Errorf("xls workbook %s has no sheets", name)
	}

	workbook = &Workbook{Sheets: make([]Sheet, 0, book.NumSheets())}
	for i := 0; i < book.NumSheets(); i++ {
		ws := book.GetSheet(i)
		if ws == nil {
			continue
		}
		workbook.Sheets = append(workbook.Sheets, Sheet{
			Name: ws.Name,
			Rows: rowsFromGrid(xlsGrid(ws)),
		})
	}

	return workbook, nil
}

func xlsGrid(ws *xls.WorkSheet) [][]string {
	grid := make([][]string, 0, int(ws.MaxRow)+1)
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for col := 0; col < row.LastCol(); col++ {
			cells = append(cells, row.Col(col))
		}
		grid = append(grid, cells)
	}
	return grid
}

// rowsFromGrid maps a header-first grid of display strings to rows, keeping
// 1-based sheet row numbers.
func rowsFromGrid(grid [][]string) []Row {
	headerAt := headerIndex(grid)
	if headerAt < 0 {
		return nil
	}
	headers := grid[headerAt]

	rows := make([]Row, 0, len(grid)-headerAt-1)
	for i := headerAt + 1; i < len(grid); i++ {
		cells := make(map[string]any, len(headers))
		for col, header := range headers {
			if col >= len(grid[i]) {
				break
			}
			value := inferCellValue(grid[i][col])
			if isEmptyCell(value) {
				continue
			}
			cells[header] = value
		}
		if len(cells) == 0 {
			continue
		}
		rows = append(rows, NewRow(i+1, cells))
	}
	return rows
}
