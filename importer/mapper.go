package importer

import (
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"buildtrack/entity"
)

// Mapper turns one sheet row into a record of its kind. Mapping never fails:
// bad numbers become 0 and bad dates are dropped. Required fields are checked
// afterwards by the service.
type Mapper interface {
	Kind() entity.Kind
	Map(row Row, logger *zap.Logger) entity.Record
}

func MapperFor(kind entity.Kind) (Mapper, error) {
	switch kind {
	case entity.KindSites:
		return SiteMapper{}, nil
	case entity.KindVehicles:
		return VehicleMapper{}, nil
	case entity.KindMaterials:
		return MaterialMapper{}, nil
	case entity.KindExpenses:
		return ExpenseMapper{}, nil
	case entity.KindLabour:
		return LabourMapper{}, nil
	case entity.KindVendors:
		return VendorMapper{}, nil
	default:
		return nil, eris.Errorf("unsupported record kind: %s", kind)
	}
}

// fields reads aliased values off a row for one mapper call.
type fields struct {
	row    Row
	kind   entity.Kind
	logger *zap.Logger
}

func newFields(row Row, kind entity.Kind, logger *zap.Logger) fields {
	if logger == nil {
		logger = zap.NewNop()
	}
	return fields{row: row, kind: kind, logger: logger}
}

func (f fields) text(aliases ...string) string {
	return f.row.String(aliases...)
}

func (f fields) textOr(fallback string, aliases ...string) string {
	if value := f.row.String(aliases...); value != "" {
		return value
	}
	return fallback
}

// enum lower-cases the value, so "Active" and "ACTIVE" store as "active".
func (f fields) enum(fallback string, aliases ...string) string {
	return strings.ToLower(f.textOr(fallback, aliases...))
}

func (f fields) number(aliases ...string) float64 {
	value, _ := f.row.Float(aliases...)
	return value
}

func (f fields) integer(aliases ...string) int {
	value, _ := f.row.Int(aliases...)
	return value
}

// date returns "" for absent cells. Present but unparseable cells are logged
// and also dropped.
func (f fields) date(aliases ...string) string {
	value, ok := f.row.Value(aliases...)
	if !ok {
		return ""
	}
	formatted, ok := FormatDate(value)
	if !ok {
		f.logger.Warn("invalid date value",
			zap.String("kind", string(f.kind)),
			zap.Int("row", f.row.Number),
			zap.Strings("aliases", aliases),
			zap.Any("value", value),
		)
		return ""
	}
	return formatted
}
