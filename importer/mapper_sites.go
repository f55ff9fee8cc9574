package importer

import (
	"go.uber.org/zap"

	"buildtrack/entity"
)

type SiteMapper struct{}

func (SiteMapper) Kind() entity.Kind { return entity.KindSites }

func (SiteMapper) Map(row Row, logger *zap.Logger) entity.Record {
	f := newFields(row, entity.KindSites, logger)
	return &entity.Site{
		Name:      f.text("name", "site_name", "project_name"),
		Location:  f.text("location", "address", "site_location"),
		Status:    f.enum("active", "status"),
		Progress:  f.number("progress", "progress_percent"),
		Budget:    f.number("budget", "total_budget"),
		Spent:     f.number("spent", "amount_spent", "expenditure"),
		Client:    f.text("client", "client_name"),
		Manager:   f.text("manager", "site_manager", "project_manager"),
		StartDate: f.date("start_date", "startdate", "start"),
		EndDate:   f.date("end_date", "enddate", "end"),
	}
}
