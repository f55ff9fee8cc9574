package importer

import (
	"go.uber.org/zap"

	"buildtrack/entity"
)

type ExpenseMapper struct{}

func (ExpenseMapper) Kind() entity.Kind { return entity.KindExpenses }

func (ExpenseMapper) Map(row Row, logger *zap.Logger) entity.Record {
	f := newFields(row, entity.KindExpenses, logger)
	return &entity.Expense{
		Description: f.text("description", "desc", "details"),
		Amount:      f.number("amount", "cost", "value"),
		Category:    f.textOr("Other", "category"),
		Date:        f.date("date", "expense_date"),
		SiteID:      f.text("site_id", "site"),
		VendorID:    f.text("vendor_id", "vendor"),
	}
}
