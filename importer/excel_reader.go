package importer

import (
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"
)

// ExcelReader reads every sheet of an xlsx/xlsm workbook. Cells are read raw
// so date cells arrive as serial numbers rather than display strings.
type ExcelReader struct{}

func (r *ExcelReader) Read(name string, src io.Reader) (*Workbook, error) {
	file, err := excelize.OpenReader(src)
	if err != nil {
		return nil, eris.Wrapf(err, "open excel workbook %s", name)
	}
	defer file.Close()

	sheetNames := file.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, eris.Errorf("excel workbook %s has no sheets", name)
	}

	workbook := &Workbook{Sheets: make([]Sheet, 0, len(sheetNames))}
	for _, sheetName := range sheetNames {
		sheet, err := readExcelSheet(file, sheetName)
		if err != nil {
			return nil, err
		}
		workbook.Sheets = append(workbook.Sheets, sheet)
	}

	return workbook, nil
}

func readExcelSheet(file *excelize.File, sheetName string) (Sheet, error) {
	sheet := Sheet{Name: sheetName}

	rows, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return sheet, eris.Wrapf(err, "read rows from sheet %s", sheetName)
	}

	headerAt := headerIndex(rows)
	if headerAt < 0 {
		return sheet, nil
	}
	headers := rows[headerAt]

	sheet.Rows = make([]Row, 0, len(rows)-headerAt-1)
	for i := headerAt + 1; i < len(rows); i++ {
		rowNumber := i + 1
		cells := make(map[string]any, len(headers))
		for col, header := range headers {
			if strings.TrimSpace(header) == "" || col >= len(rows[i]) {
				continue
			}
			raw := rows[i][col]
			if strings.TrimSpace(raw) == "" {
				continue
			}

			cellName, err := excelize.CoordinatesToCellName(col+1, rowNumber)
			if err != nil {
				return sheet, eris.Wrapf(err, "sheet %s row %d", sheetName, rowNumber)
			}
			cellType, err := file.GetCellType(sheetName, cellName)
			if err != nil {
				return sheet, eris.Wrapf(err, "cell type %s!%s", sheetName, cellName)
			}
			cells[header] = excelCellValue(raw, cellType)
		}
		if len(cells) == 0 {
			continue
		}
		sheet.Rows = append(sheet.Rows, NewRow(rowNumber, cells))
	}

	return sheet, nil
}

func excelCellValue(raw string, cellType excelize.CellType) any {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return raw
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	default:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return parsed
		}
		return raw
	}
}
