package importer

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"buildtrack/internal/timeutil"
)

// Workbook is the parsed upload: named sheets in workbook order.
type Workbook struct {
	Sheets []Sheet
}

// Sheet is one named tab; Rows excludes the header row and blank rows.
type Sheet struct {
	Name string
	Rows []Row
}

// Row is one spreadsheet row. Cells keeps the original headers for
// diagnostics; lookups go through the normalized Values index.
type Row struct {
	Number int
	Cells  map[string]any
	Values map[string]any
}

// NewRow builds a row from header -> cell value pairs. Cell values are
// string, float64 or bool. When two headers normalize to the same key, the
// header that sorts first wins.
func NewRow(number int, cells map[string]any) Row {
	values := make(map[string]any, len(cells))
	origin := make(map[string]string, len(cells))
	for header, value := range cells {
		key := normalizeHeader(header)
		if key == "" || isEmptyCell(value) {
			continue
		}
		if previous, exists := origin[key]; exists && previous < header {
			continue
		}
		origin[key] = header
		values[key] = value
	}
	return Row{Number: number, Cells: cells, Values: values}
}

// Value returns the first alias present with a non-empty value.
func (r Row) Value(keys ...string) (any, bool) {
	for _, key := range keys {
		value, ok := r.Values[normalizeHeader(key)]
		if !ok || isEmptyCell(value) {
			continue
		}
		return value, true
	}
	return nil, false
}

func (r Row) String(keys ...string) string {
	value, ok := r.Value(keys...)
	if !ok {
		return ""
	}
	return formatCell(value)
}

// Float parses the first matching alias permissively: ok is false only when
// no alias is present, unparsable input yields 0.
func (r Row) Float(keys ...string) (float64, bool) {
	value, ok := r.Value(keys...)
	if !ok {
		return 0, false
	}
	return parseNumber(value), true
}

func (r Row) Int(keys ...string) (int, bool) {
	value, ok := r.Float(keys...)
	if !ok {
		return 0, false
	}
	return truncateInt(value), true
}

func isEmptyCell(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}

func formatCell(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.UTC().Format(timeutil.DateLayout)
	default:
		return ""
	}
}

func normalizeHeader(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(stripDiacritics(input)))
	trimmed = strings.ReplaceAll(trimmed, "_", "")
	trimmed = strings.ReplaceAll(trimmed, "-", "")
	trimmed = strings.ReplaceAll(trimmed, " ", "")
	return trimmed
}

func stripDiacritics(input string) string {
	decomposed := norm.NFD.String(input)
	var out strings.Builder
	out.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}
