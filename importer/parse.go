package importer

import (
	"math"
	"strconv"
	"strings"
)

var currencyPrefixes = []string{"₹", "$", "€", "£", "Rs.", "Rs", "INR"}

// parseNumber never fails: anything that does not read as a finite number
// becomes 0.
func parseNumber(value any) float64 {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return parseNumericString(v)
	default:
		return 0
	}
}

func parseNumericString(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	for _, prefix := range currencyPrefixes {
		if strings.HasPrefix(cleaned, prefix) {
			cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, prefix))
			break
		}
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}
	return parsed
}

func truncateInt(value float64) int {
	if value > math.MaxInt32 || value < math.MinInt32 {
		return 0
	}
	return int(math.Trunc(value))
}

// inferCellValue types a textual cell from formats that carry no cell type.
// Leading zeros keep the value textual so phone numbers and codes survive.
func inferCellValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) > 1 && trimmed[0] == '0' && trimmed[1] != '.' {
		return trimmed
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return trimmed
	}
	return parsed
}
