package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"buildtrack/entity"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, eris.New("sqlite: empty database path")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteDialect.schemaSQL())
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Upsert(ctx context.Context, record entity.Record) error {
	columns, values, err := checkRecord(record)
	if err != nil {
		return err
	}

	args := make([]any, len(values))
	for i, value := range values {
		args[i] = sqliteValue(value)
	}

	if _, err := s.db.ExecContext(ctx, sqliteDialect.upsertSQL(record.Kind(), columns), args...); err != nil {
		return eris.Wrapf(err, "sqlite: upsert %s %s", record.Kind(), record.RecordID())
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context, kind entity.Kind) ([]map[string]any, error) {
	columns, err := columnsOf(kind)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, sqliteDialect.listSQL(kind, columns))
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: list %s", kind)
	}
	defer rows.Close()

	records := make([]map[string]any, 0, 32)
	for rows.Next() {
		values := make([]any, len(columns))
		targets := make([]any, len(columns))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, eris.Wrapf(err, "sqlite: scan %s", kind)
		}

		record := make(map[string]any, len(columns))
		for i, column := range columns {
			if raw, ok := values[i].([]byte); ok {
				values[i] = string(raw)
			}
			record[column] = values[i]
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrapf(err, "sqlite: iterate %s", kind)
	}
	return records, nil
}

func (s *SQLiteStore) Count(ctx context.Context, kind entity.Kind) (int, error) {
	if _, err := columnsOf(kind); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, countSQL(kind)).Scan(&count); err != nil {
		return 0, eris.Wrapf(err, "sqlite: count %s", kind)
	}
	return count, nil
}

// sqliteValue stores timestamps as RFC 3339 text so they sort and read back
// unchanged.
func sqliteValue(value any) any {
	if t, ok := value.(time.Time); ok {
		return t.UTC().Format(time.RFC3339Nano)
	}
	return value
}
