package output

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildtrack/entity"
	"buildtrack/importer"
)

type fakeLister struct {
	rows map[entity.Kind][]map[string]any
	err  error
}

func (l fakeLister) List(_ context.Context, kind entity.Kind) ([]map[string]any, error) {
	return l.rows[kind], l.err
}

func sampleSites() Table {
	return Table{
		Kind:    entity.KindSites,
		Columns: entity.ColumnsFor(entity.KindSites),
		Rows: []map[string]any{
			{
				"id": "site-1", "name": "Tower A", "location": "Pune", "status": "active",
				"progress": 40.0, "budget": 150000.0, "spent": 20000.0, "client": nil,
				"start_date": "2024-03-15", "created_at": time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestWriterForFormat(t *testing.T) {
	t.Parallel()

	writer, err := WriterForFormat("XLSX")
	require.NoError(t, err)
	assert.IsType(t, &ExcelWriter{}, writer)

	writer, err = WriterForFormat("csv")
	require.NoError(t, err)
	assert.IsType(t, &CSVWriter{}, writer)

	_, err = WriterForFormat("pdf")
	assert.Error(t, err)

	assert.Equal(t, "csv", FormatForPath("out/sites.CSV"))
	assert.Equal(t, "xlsx", FormatForPath("export.xlsx"))
	assert.Equal(t, "", FormatForPath("export.json"))
}

func TestExcelWriterImportsBack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, (&ExcelWriter{}).Write(path, []Table{sampleSites()}))

	workbook, err := importer.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, workbook.Sheets, 1)
	assert.Equal(t, "sites", workbook.Sheets[0].Name)
	require.Len(t, workbook.Sheets[0].Rows, 1)

	row := workbook.Sheets[0].Rows[0]
	assert.Equal(t, "Tower A", row.String("name"))
	budget, _ := row.Float("budget")
	assert.Equal(t, 150000.0, budget)
	assert.Equal(t, "2024-03-15T09:00:00Z", row.String("created_at"))
}

func TestTemplateWorkbook(t *testing.T) {
	t.Parallel()

	tables := TemplateTables(entity.Kinds())
	require.Len(t, tables, 6)
	assert.NotContains(t, tables[0].Columns, "id")
	assert.NotContains(t, tables[0].Columns, "created_at")
	assert.Contains(t, tables[0].Columns, "name")

	path := filepath.Join(t.TempDir(), "template.xlsx")
	require.NoError(t, (&ExcelWriter{}).Write(path, tables))

	workbook, err := importer.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, workbook.Sheets, 6)
	for i, kind := range entity.Kinds() {
		assert.Equal(t, string(kind), workbook.Sheets[i].Name)
		assert.Empty(t, workbook.Sheets[i].Rows)
	}
}

func TestExcelWriterRequiresTables(t *testing.T) {
	t.Parallel()

	err := (&ExcelWriter{}).Write(filepath.Join(t.TempDir(), "empty.xlsx"), nil)
	assert.Error(t, err)
}

func TestCSVWriter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sites.csv")
	require.NoError(t, (&CSVWriter{}).Write(path, []Table{sampleSites()}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "id,name,location,status,progress,budget")
	assert.Contains(t, string(content), "site-1,Tower A,Pune,active,40,150000,20000,,,2024-03-15,,2024-03-15T09:00:00Z,")

	workbook, err := importer.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sites", workbook.Sheets[0].Name)
	assert.Equal(t, "Pune", workbook.Sheets[0].Rows[0].String("location"))

	err = (&CSVWriter{}).Write(path, TemplateTables(entity.Kinds()))
	assert.Error(t, err)
}

func TestLoadTables(t *testing.T) {
	t.Parallel()

	lister := fakeLister{rows: map[entity.Kind][]map[string]any{
		entity.KindVendors: {{"id": "v1", "name": "Acme"}},
	}}

	tables, err := LoadTables(context.Background(), lister, []entity.Kind{entity.KindVendors, entity.KindSites})
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Len(t, tables[0].Rows, 1)
	assert.Empty(t, tables[1].Rows)
	assert.Equal(t, entity.ColumnsFor(entity.KindSites), tables[1].Columns)

	_, err = LoadTables(context.Background(), fakeLister{err: errors.New("closed")}, []entity.Kind{entity.KindSites})
	assert.Error(t, err)

	_, err = LoadTables(context.Background(), lister, []entity.Kind{"tools"})
	assert.Error(t, err)
}
