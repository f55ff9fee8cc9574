package entity

type Site struct {
	Meta
	Name      string  `json:"name" validate:"required"`
	Location  string  `json:"location" validate:"required"`
	Status    string  `json:"status"`
	Progress  float64 `json:"progress"`
	Budget    float64 `json:"budget"`
	Spent     float64 `json:"spent"`
	Client    string  `json:"client,omitempty"`
	Manager   string  `json:"manager,omitempty"`
	StartDate string  `json:"start_date,omitempty"`
	EndDate   string  `json:"end_date,omitempty"`
}

func (s *Site) Kind() Kind        { return KindSites }
func (s *Site) Columns() []string { return columnsByKind[KindSites] }

func (s *Site) Values() []any {
	return []any{
		s.ID, s.Name, s.Location, s.Status, s.Progress, s.Budget, s.Spent,
		NullString(s.Client), NullString(s.Manager), NullString(s.StartDate), NullString(s.EndDate),
		s.CreatedAt, s.UpdatedAt,
	}
}

type Vehicle struct {
	Meta
	Type               string  `json:"type" validate:"required"`
	Make               string  `json:"make,omitempty"`
	Model              string  `json:"model,omitempty"`
	Year               int     `json:"year"`
	RegistrationNumber string  `json:"registration_number,omitempty"`
	Capacity           string  `json:"capacity,omitempty"`
	FuelType           string  `json:"fuel_type"`
	PerDayCost         float64 `json:"per_day_cost"`
	PerHourCost        float64 `json:"per_hour_cost"`
	Status             string  `json:"status"`
	SiteID             string  `json:"site_id,omitempty"`
}

func (v *Vehicle) Kind() Kind        { return KindVehicles }
func (v *Vehicle) Columns() []string { return columnsByKind[KindVehicles] }

func (v *Vehicle) Values() []any {
	return []any{
		v.ID, v.Type, NullString(v.Make), NullString(v.Model), v.Year, NullString(v.RegistrationNumber),
		NullString(v.Capacity), v.FuelType, v.PerDayCost, v.PerHourCost, v.Status, NullString(v.SiteID),
		v.CreatedAt, v.UpdatedAt,
	}
}

type Material struct {
	Meta
	Name         string  `json:"name" validate:"required"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalCost    float64 `json:"total_cost"`
	Supplier     string  `json:"supplier,omitempty"`
	PurchaseDate string  `json:"purchase_date,omitempty"`
	SiteID       string  `json:"site_id,omitempty"`
}

func (m *Material) Kind() Kind        { return KindMaterials }
func (m *Material) Columns() []string { return columnsByKind[KindMaterials] }

func (m *Material) Values() []any {
	return []any{
		m.ID, m.Name, m.Category, m.Unit, m.Quantity, m.UnitPrice, m.TotalCost,
		NullString(m.Supplier), NullString(m.PurchaseDate), NullString(m.SiteID),
		m.CreatedAt, m.UpdatedAt,
	}
}

// Expense requires a non-zero amount; a zero amount is treated as missing.
type Expense struct {
	Meta
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required"`
	Category    string  `json:"category"`
	Date        string  `json:"date,omitempty"`
	SiteID      string  `json:"site_id,omitempty"`
	VendorID    string  `json:"vendor_id,omitempty"`
}

func (e *Expense) Kind() Kind        { return KindExpenses }
func (e *Expense) Columns() []string { return columnsByKind[KindExpenses] }

func (e *Expense) Values() []any {
	return []any{
		e.ID, e.Description, e.Amount, e.Category, NullString(e.Date),
		NullString(e.SiteID), NullString(e.VendorID), e.CreatedAt, e.UpdatedAt,
	}
}

type Labour struct {
	Meta
	Name       string  `json:"name" validate:"required"`
	Skill      string  `json:"skill" validate:"required"`
	Phone      string  `json:"phone,omitempty"`
	WagePerDay float64 `json:"wage_per_day"`
	JoinDate   string  `json:"join_date,omitempty"`
	Status     string  `json:"status"`
	SiteID     string  `json:"site_id,omitempty"`
}

func (l *Labour) Kind() Kind        { return KindLabour }
func (l *Labour) Columns() []string { return columnsByKind[KindLabour] }

func (l *Labour) Values() []any {
	return []any{
		l.ID, l.Name, l.Skill, NullString(l.Phone), l.WagePerDay, NullString(l.JoinDate),
		l.Status, NullString(l.SiteID), l.CreatedAt, l.UpdatedAt,
	}
}

type Vendor struct {
	Meta
	Name           string  `json:"name" validate:"required"`
	ContactPerson  string  `json:"contact_person,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	Email          string  `json:"email,omitempty"`
	Address        string  `json:"address,omitempty"`
	Specialization string  `json:"specialization,omitempty"`
	Rating         float64 `json:"rating"`
	Status         string  `json:"status"`
}

func (v *Vendor) Kind() Kind        { return KindVendors }
func (v *Vendor) Columns() []string { return columnsByKind[KindVendors] }

func (v *Vendor) Values() []any {
	return []any{
		v.ID, v.Name, NullString(v.ContactPerson), NullString(v.Phone), NullString(v.Email),
		NullString(v.Address), NullString(v.Specialization), v.Rating, v.Status,
		v.CreatedAt, v.UpdatedAt,
	}
}
