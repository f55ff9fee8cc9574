package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildtrack/config"
	"buildtrack/entity"
)

func TestUpsertSQL(t *testing.T) {
	t.Parallel()

	columns := entity.ColumnsFor(entity.KindExpenses)
	query := postgresDialect.upsertSQL(entity.KindExpenses, columns)

	assert.True(t, strings.HasPrefix(query, `INSERT INTO "expenses" ("id", "description", "amount"`))
	assert.Contains(t, query, "VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)")
	assert.Contains(t, query, `ON CONFLICT ("id") DO UPDATE SET "description" = excluded."description"`)
	assert.Contains(t, query, `"updated_at" = excluded."updated_at"`)
	assert.NotContains(t, query, `"id" = excluded."id"`)

	sqliteQuery := sqliteDialect.upsertSQL(entity.KindExpenses, columns)
	assert.Equal(t, len(columns), strings.Count(sqliteQuery, "?"))
}

func TestSchemaSQLCoversEveryKind(t *testing.T) {
	t.Parallel()

	for _, d := range []dialect{sqliteDialect, postgresDialect} {
		schema := d.schemaSQL()
		for _, kind := range entity.Kinds() {
			assert.Contains(t, schema, `CREATE TABLE IF NOT EXISTS "`+string(kind)+`"`)
		}
	}

	assert.Contains(t, postgresDialect.createTableSQL(entity.KindSites), `"budget" DOUBLE PRECISION NOT NULL DEFAULT 0`)
	assert.Contains(t, postgresDialect.createTableSQL(entity.KindSites), `"created_at" TIMESTAMPTZ NOT NULL`)
	assert.Contains(t, sqliteDialect.createTableSQL(entity.KindSites), `"client" TEXT,`)
	assert.Contains(t, sqliteDialect.createTableSQL(entity.KindVehicles), `"year" INTEGER NOT NULL DEFAULT 0`)
}

func TestColumnsOfUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := columnsOf("tools")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), config.StoreConfig{Driver: "mysql"})
	assert.Error(t, err)
}

func TestCheckRecordRequiresID(t *testing.T) {
	t.Parallel()

	_, _, err := checkRecord(&entity.Site{Name: "Tower A", Location: "Pune"})
	assert.Error(t, err)

	_, _, err = checkRecord(nil)
	assert.Error(t, err)

	site := &entity.Site{Name: "Tower A", Location: "Pune"}
	site.ID = "site-1"
	columns, values, err := checkRecord(site)
	require.NoError(t, err)
	assert.Len(t, values, len(columns))
}
