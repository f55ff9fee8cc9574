// Package storage persists imported records, one table per record kind.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"

	"buildtrack/config"
	"buildtrack/entity"
)

var ErrUnknownKind = eris.New("unknown record kind")

// Store is implemented by SQLiteStore and PostgresStore.
type Store interface {
	// Upsert inserts record or, when its id already exists, overwrites every
	// other column.
	Upsert(ctx context.Context, record entity.Record) error
	List(ctx context.Context, kind entity.Kind) ([]map[string]any, error)
	Count(ctx context.Context, kind entity.Kind) (int, error)
	Migrate(ctx context.Context) error
	Close() error
}

// Open connects to the configured backend and migrates its schema.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	var (
		store Store
		err   error
	)
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", config.DriverSQLite:
		store, err = NewSQLite(cfg.Path)
	case config.DriverPostgres:
		store, err = NewPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// Summary counts the stored records of every kind.
func Summary(ctx context.Context, store Store) (map[entity.Kind]int, error) {
	summary := make(map[entity.Kind]int, len(entity.Kinds()))
	for _, kind := range entity.Kinds() {
		count, err := store.Count(ctx, kind)
		if err != nil {
			return nil, err
		}
		summary[kind] = count
	}
	return summary, nil
}

// dialect captures the SQL differences between the two backends.
type dialect struct {
	realType      string
	intType       string
	timestampType string
	placeholder   func(n int) string
}

var (
	sqliteDialect = dialect{
		realType:      "REAL",
		intType:       "INTEGER",
		timestampType: "TEXT",
		placeholder:   func(int) string { return "?" },
	}
	postgresDialect = dialect{
		realType:      "DOUBLE PRECISION",
		intType:       "INTEGER",
		timestampType: "TIMESTAMPTZ",
		placeholder:   func(n int) string { return fmt.Sprintf("$%d", n) },
	}
)

var realColumns = map[string]bool{
	"progress": true, "budget": true, "spent": true, "per_day_cost": true, "per_hour_cost": true,
	"quantity": true, "unit_price": true, "total_cost": true, "amount": true,
	"wage_per_day": true, "rating": true,
}

// nullableColumns are the optional text columns; everything else is NOT NULL.
var nullableColumns = map[string]bool{
	"client": true, "manager": true, "start_date": true, "end_date": true,
	"make": true, "model": true, "registration_number": true, "capacity": true,
	"supplier": true, "purchase_date": true, "date": true, "site_id": true, "vendor_id": true,
	"phone": true, "join_date": true, "contact_person": true, "email": true,
	"address": true, "specialization": true,
}

func quoteIdent(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func quoteAndJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = quoteIdent(name)
	}
	return strings.Join(quoted, ", ")
}

func columnsOf(kind entity.Kind) ([]string, error) {
	columns := entity.ColumnsFor(kind)
	if columns == nil {
		return nil, eris.Wrapf(ErrUnknownKind, "kind %q", kind)
	}
	return columns, nil
}

func (d dialect) columnType(column string) string {
	switch {
	case column == "id":
		return "TEXT PRIMARY KEY"
	case column == "created_at" || column == "updated_at":
		return d.timestampType + " NOT NULL"
	case column == "year":
		return d.intType + " NOT NULL DEFAULT 0"
	case realColumns[column]:
		return d.realType + " NOT NULL DEFAULT 0"
	case nullableColumns[column]:
		return "TEXT"
	default:
		return "TEXT NOT NULL"
	}
}

// createTableSQL renders the DDL for one kind.
func (d dialect) createTableSQL(kind entity.Kind) string {
	columns := entity.ColumnsFor(kind)
	definitions := make([]string, len(columns))
	for i, column := range columns {
		definitions[i] = fmt.Sprintf("\t%s %s", quoteIdent(column), d.columnType(column))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);", quoteIdent(string(kind)), strings.Join(definitions, ",\n"))
}

func (d dialect) schemaSQL() string {
	statements := make([]string, 0, len(entity.Kinds()))
	for _, kind := range entity.Kinds() {
		statements = append(statements, d.createTableSQL(kind))
	}
	return strings.Join(statements, "\n\n")
}

// upsertSQL builds INSERT ... ON CONFLICT (id) DO UPDATE SET col = excluded.col
// for every non-key column.
func (d dialect) upsertSQL(kind entity.Kind, columns []string) string {
	placeholders := make([]string, len(columns))
	setClauses := make([]string, 0, len(columns)-1)
	for i, column := range columns {
		placeholders[i] = d.placeholder(i + 1)
		if column == "id" {
			continue
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = excluded.%s", quoteIdent(column), quoteIdent(column)))
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		quoteIdent(string(kind)),
		quoteAndJoin(columns),
		strings.Join(placeholders, ", "),
		quoteIdent("id"),
		strings.Join(setClauses, ", "),
	)
}

func (d dialect) listSQL(kind entity.Kind, columns []string) string {
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s, %s",
		quoteAndJoin(columns), quoteIdent(string(kind)), quoteIdent("created_at"), quoteIdent("id"))
}

func countSQL(kind entity.Kind) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteIdent(string(kind)))
}

func checkRecord(record entity.Record) ([]string, []any, error) {
	if record == nil {
		return nil, nil, eris.New("record is nil")
	}
	columns, err := columnsOf(record.Kind())
	if err != nil {
		return nil, nil, err
	}
	values := record.Values()
	if len(values) != len(columns) {
		return nil, nil, eris.Errorf("%s record has %d values for %d columns", record.Kind(), len(values), len(columns))
	}
	if strings.TrimSpace(record.RecordID()) == "" {
		return nil, nil, eris.Errorf("%s record has no id", record.Kind())
	}
	return columns, values, nil
}
