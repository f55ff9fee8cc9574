package importer

import (
	"go.uber.org/zap"

	"buildtrack/entity"
)

type MaterialMapper struct{}

func (MaterialMapper) Kind() entity.Kind { return entity.KindMaterials }

func (MaterialMapper) Map(row Row, logger *zap.Logger) entity.Record {
	f := newFields(row, entity.KindMaterials, logger)
	material := &entity.Material{
		Name:         f.text("name", "material_name", "item"),
		Category:     f.textOr("Construction", "category", "type"),
		Unit:         f.textOr("kg", "unit", "uom"),
		Quantity:     f.number("quantity", "qty"),
		UnitPrice:    f.number("unit_price", "price", "rate"),
		Supplier:     f.text("supplier", "vendor", "supplier_name"),
		PurchaseDate: f.date("purchase_date", "date"),
		SiteID:       f.text("site_id", "site"),
	}

	// A present but unparsable total stays 0; only a missing column is derived.
	if total, ok := row.Float("total_cost", "total", "amount"); ok {
		material.TotalCost = total
	} else {
		material.TotalCost = material.Quantity * material.UnitPrice
	}
	return material
}
