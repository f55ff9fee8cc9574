// Package entity holds the six record kinds produced by the spreadsheet
// importer and persisted by storage.
package entity

import (
	"strings"
	"time"
)

// Kind names a record kind. It doubles as the sheet name the importer
// recognizes and the storage table name.
type Kind string

const (
	KindSites     Kind = "sites"
	KindVehicles  Kind = "vehicles"
	KindMaterials Kind = "materials"
	KindExpenses  Kind = "expenses"
	KindLabour    Kind = "labour"
	KindVendors   Kind = "vendors"
)

// Kinds returns every kind in canonical order.
func Kinds() []Kind {
	return []Kind{KindSites, KindVehicles, KindMaterials, KindExpenses, KindLabour, KindVendors}
}

// ParseKind matches name case-insensitively against the known kinds.
func ParseKind(name string) (Kind, bool) {
	candidate := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, kind := range Kinds() {
		if kind == candidate {
			return kind, true
		}
	}
	return "", false
}

// Record is implemented by every kind so storage can upsert them generically.
// Columns and Values are index-aligned; the first column is always "id".
type Record interface {
	Kind() Kind
	RecordID() string
	Columns() []string
	Values() []any
	Stamp(id string, now time.Time)
}

// Meta carries the identity and timestamps shared by all kinds.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m Meta) RecordID() string {
	return m.ID
}

// Stamp assigns the identity and sets both timestamps to now.
func (m *Meta) Stamp(id string, now time.Time) {
	m.ID = id
	m.CreatedAt = now
	m.UpdatedAt = now
}

var columnsByKind = map[Kind][]string{
	KindSites: {
		"id", "name", "location", "status", "progress", "budget", "spent",
		"client", "manager", "start_date", "end_date", "created_at", "updated_at",
	},
	KindVehicles: {
		"id", "type", "make", "model", "year", "registration_number", "capacity", "fuel_type",
		"per_day_cost", "per_hour_cost", "status", "site_id", "created_at", "updated_at",
	},
	KindMaterials: {
		"id", "name", "category", "unit", "quantity", "unit_price", "total_cost",
		"supplier", "purchase_date", "site_id", "created_at", "updated_at",
	},
	KindExpenses: {
		"id", "description", "amount", "category", "date", "site_id", "vendor_id", "created_at", "updated_at",
	},
	KindLabour: {
		"id", "name", "skill", "phone", "wage_per_day", "join_date", "status", "site_id", "created_at", "updated_at",
	},
	KindVendors: {
		"id", "name", "contact_person", "phone", "email", "address", "specialization",
		"rating", "status", "created_at", "updated_at",
	},
}

// ColumnsFor returns the storage columns of kind, or nil for an unknown kind.
func ColumnsFor(kind Kind) []string {
	columns, ok := columnsByKind[kind]
	if !ok {
		return nil
	}
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// NullString maps an absent optional string to SQL NULL.
func NullString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
