package importer

import (
	"go.uber.org/zap"

	"buildtrack/entity"
)

type LabourMapper struct{}

func (LabourMapper) Kind() entity.Kind { return entity.KindLabour }

func (LabourMapper) Map(row Row, logger *zap.Logger) entity.Record {
	f := newFields(row, entity.KindLabour, logger)
	return &entity.Labour{
		Name:       f.text("name", "worker_name", "labour_name"),
		Skill:      f.text("skill", "trade", "role"),
		Phone:      f.text("phone", "contact", "mobile"),
		WagePerDay: f.number("wage_per_day", "daily_wage", "wage"),
		JoinDate:   f.date("join_date", "joining_date", "start_date"),
		Status:     f.enum("active", "status"),
		SiteID:     f.text("site_id", "site"),
	}
}
