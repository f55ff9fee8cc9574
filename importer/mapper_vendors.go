package importer

import (
	"go.uber.org/zap"

	"buildtrack/entity"
)

const defaultVendorRating = 5

type VendorMapper struct{}

func (VendorMapper) Kind() entity.Kind { return entity.KindVendors }

func (VendorMapper) Map(row Row, logger *zap.Logger) entity.Record {
	f := newFields(row, entity.KindVendors, logger)
	rating := f.number("rating")
	if rating == 0 {
		rating = defaultVendorRating
	}
	return &entity.Vendor{
		Name:           f.text("name", "vendor_name", "company"),
		ContactPerson:  f.text("contact_person", "contact_name", "contact"),
		Phone:          f.text("phone", "mobile"),
		Email:          f.text("email"),
		Address:        f.text("address"),
		Specialization: f.text("specialization", "category", "service"),
		Rating:         rating,
		Status:         f.enum("active", "status"),
	}
}
