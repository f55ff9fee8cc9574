package importer

import (
	"encoding/json"
	"fmt"
	"strings"

	"buildtrack/entity"
)

// RowError rejects a single row for missing required fields. It carries the
// raw row so the operator can find it in the source sheet.
type RowError struct {
	Kind    entity.Kind
	Row     int
	Missing []string
	Raw     map[string]any
}

func (e *RowError) Error() string {
	message := fmt.Sprintf("row %d: missing required fields: %s", e.Row, strings.Join(e.Missing, ", "))
	raw, err := json.Marshal(e.Raw)
	if err != nil || len(e.Raw) == 0 {
		return message
	}
	return fmt.Sprintf("%s (row data: %s)", message, raw)
}
