package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"buildtrack/entity"
)

// pool is the subset of *pgxpool.Pool the store uses; pgxmock satisfies it
// in tests.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConns = 10
	pgxCfg.MinConns = 1
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	p, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: p}, nil
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresDialect.schemaSQL())
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) Upsert(ctx context.Context, record entity.Record) error {
	columns, values, err := checkRecord(record)
	if err != nil {
		return err
	}

	if _, err := s.pool.Exec(ctx, postgresDialect.upsertSQL(record.Kind(), columns), values...); err != nil {
		return eris.Wrapf(err, "postgres: upsert %s %s", record.Kind(), record.RecordID())
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, kind entity.Kind) ([]map[string]any, error) {
	columns, err := columnsOf(kind)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, postgresDialect.listSQL(kind, columns))
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: list %s", kind)
	}
	defer rows.Close()

	records := make([]map[string]any, 0, 32)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, eris.Wrapf(err, "postgres: scan %s", kind)
		}
		record := make(map[string]any, len(columns))
		for i, column := range columns {
			if i < len(values) {
				record[column] = values[i]
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrapf(err, "postgres: iterate %s", kind)
	}
	return records, nil
}

func (s *PostgresStore) Count(ctx context.Context, kind entity.Kind) (int, error) {
	if _, err := columnsOf(kind); err != nil {
		return 0, err
	}

	var count int64
	if err := s.pool.QueryRow(ctx, countSQL(kind)).Scan(&count); err != nil {
		return 0, eris.Wrapf(err, "postgres: count %s", kind)
	}
	return int(count), nil
}
