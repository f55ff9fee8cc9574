package importer

import (
	"go.uber.org/zap"

	"buildtrack/entity"
)

type VehicleMapper struct{}

func (VehicleMapper) Kind() entity.Kind { return entity.KindVehicles }

func (VehicleMapper) Map(row Row, logger *zap.Logger) entity.Record {
	f := newFields(row, entity.KindVehicles, logger)
	return &entity.Vehicle{
		Type:               f.text("type", "vehicle_type"),
		Make:               f.text("make", "manufacturer"),
		Model:              f.text("model"),
		Year:               f.integer("year", "manufacture_year"),
		RegistrationNumber: f.text("registration_number", "registration", "reg_number", "plate_number"),
		Capacity:           f.text("capacity"),
		FuelType:           f.enum("diesel", "fuel_type", "fuel"),
		PerDayCost:         f.number("per_day_cost", "daily_rate", "day_rate"),
		PerHourCost:        f.number("per_hour_cost", "hourly_rate"),
		Status:             f.enum("available", "status"),
		SiteID:             f.text("site_id", "site"),
	}
}
