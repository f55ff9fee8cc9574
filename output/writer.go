package output

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"buildtrack/entity"
)

// Table is one record kind ready to be written: canonical column headers and
// rows keyed by column.
type Table struct {
	Kind    entity.Kind
	Columns []string
	Rows    []map[string]any
}

type Writer interface {
	Write(path string, tables []Table) error
}

// Lister is the read side of storage.
type Lister interface {
	List(ctx context.Context, kind entity.Kind) ([]map[string]any, error)
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, eris.Errorf("unsupported output format: %s", format)
	}
}

// FormatForPath infers the output format from the file extension.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv"
	case ".xlsx":
		return "xlsx"
	default:
		return ""
	}
}

// LoadTables reads the stored records of each kind.
func LoadTables(ctx context.Context, lister Lister, kinds []entity.Kind) ([]Table, error) {
	tables := make([]Table, 0, len(kinds))
	for _, kind := range kinds {
		columns := entity.ColumnsFor(kind)
		if columns == nil {
			return nil, eris.Errorf("unknown record kind: %s", kind)
		}
		rows, err := lister.List(ctx, kind)
		if err != nil {
			return nil, eris.Wrapf(err, "load %s", kind)
		}
		tables = append(tables, Table{Kind: kind, Columns: columns, Rows: rows})
	}
	return tables, nil
}

// TemplateTables returns empty tables whose headers are the importable
// columns of each kind, without id and timestamps.
func TemplateTables(kinds []entity.Kind) []Table {
	tables := make([]Table, 0, len(kinds))
	for _, kind := range kinds {
		columns := make([]string, 0, 16)
		for _, column := range entity.ColumnsFor(kind) {
			switch column {
			case "id", "created_at", "updated_at":
				continue
			}
			columns = append(columns, column)
		}
		tables = append(tables, Table{Kind: kind, Columns: columns})
	}
	return tables
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

// cellText renders a stored value for text outputs.
func cellText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
