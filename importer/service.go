package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"buildtrack/entity"
)

// Store persists one record at a time. Upsert must insert or replace by id.
type Store interface {
	Upsert(ctx context.Context, record entity.Record) error
}

type Options struct {
	// ContinueOnRowError reports a bad row and keeps going instead of
	// abandoning the rest of its sheet.
	ContinueOnRowError bool
	// UseSourceIDs keys records by the row's own id column when present.
	UseSourceIDs bool
}

type Result struct {
	Records map[entity.Kind][]entity.Record
	// Imported marks kinds with at least one sheet that completed.
	Imported        map[entity.Kind]bool
	Errors          []string
	SheetsProcessed int
	SheetsSkipped   int
	RowsRead        int
}

func newResult() *Result {
	records := make(map[entity.Kind][]entity.Record, len(entity.Kinds()))
	for _, kind := range entity.Kinds() {
		records[kind] = []entity.Record{}
	}
	return &Result{Records: records, Imported: map[entity.Kind]bool{}, Errors: []string{}}
}

// Summary counts the imported records of every kind, including zero counts.
func (r *Result) Summary() map[entity.Kind]int {
	summary := make(map[entity.Kind]int, len(entity.Kinds()))
	for _, kind := range entity.Kinds() {
		summary[kind] = len(r.Records[kind])
	}
	return summary
}

// Count is the total number of imported records.
func (r *Result) Count() int {
	total := 0
	for _, records := range r.Records {
		total += len(records)
	}
	return total
}

type Importer struct {
	store   Store
	options Options
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

type Option func(*Importer)

func WithLogger(logger *zap.Logger) Option {
	return func(i *Importer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(i *Importer) {
		if now != nil {
			i.now = now
		}
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(i *Importer) {
		if newID != nil {
			i.newID = newID
		}
	}
}

func New(store Store, options Options, opts ...Option) *Importer {
	importer := &Importer{
		store:   store,
		options: options,
		logger:  zap.NewNop(),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(importer)
	}
	return importer
}

// Run imports every recognized sheet of workbook in order. A failing sheet is
// reported in Result.Errors and does not stop the others; the returned error
// is reserved for a nil workbook.
func (i *Importer) Run(ctx context.Context, workbook *Workbook) (*Result, error) {
	if workbook == nil {
		return nil, eris.New("workbook is nil")
	}

	result := newResult()
	for _, sheet := range workbook.Sheets {
		kind, ok := entity.ParseKind(sheet.Name)
		if !ok {
			i.logger.Info("skipping unrecognized sheet", zap.String("sheet", sheet.Name))
			result.SheetsSkipped++
			continue
		}

		result.SheetsProcessed++
		result.RowsRead += len(sheet.Rows)

		records, rowErrors, err := i.processSheet(ctx, kind, sheet)
		result.Errors = append(result.Errors, rowErrors...)
		if err != nil {
			i.logger.Error("sheet import failed",
				zap.String("sheet", sheet.Name),
				zap.Int("persisted_before_failure", len(records)),
				zap.Error(err),
			)
			if len(records) > 0 {
				i.logger.Warn("rows persisted before sheet failure are not reported",
					zap.String("sheet", sheet.Name),
					zap.Int("rows", len(records)),
				)
			}
			result.Errors = append(result.Errors, fmt.Sprintf("Error processing %s sheet: %s", sheet.Name, err.Error()))
			continue
		}

		result.Records[kind] = append(result.Records[kind], records...)
		result.Imported[kind] = true
		i.logger.Info("sheet imported",
			zap.String("sheet", sheet.Name),
			zap.Int("records", len(records)),
		)
	}

	return result, nil
}

// processSheet returns the persisted records, row-level error messages (only
// when ContinueOnRowError is set) and the error that aborted the sheet.
func (i *Importer) processSheet(ctx context.Context, kind entity.Kind, sheet Sheet) ([]entity.Record, []string, error) {
	mapper, err := MapperFor(kind)
	if err != nil {
		return nil, nil, err
	}

	records := make([]entity.Record, 0, len(sheet.Rows))
	rowErrors := []string{}
	for _, row := range sheet.Rows {
		if err := ctx.Err(); err != nil {
			return records, rowErrors, eris.Wrap(err, "import cancelled")
		}

		record, err := i.processRow(ctx, mapper, row)
		if err != nil {
			var rowErr *RowError
			if i.options.ContinueOnRowError && errors.As(err, &rowErr) {
				rowErrors = append(rowErrors, fmt.Sprintf("Error processing %s sheet row %d: %s", sheet.Name, row.Number, rowErr.Error()))
				continue
			}
			return records, rowErrors, err
		}
		records = append(records, record)
	}
	return records, rowErrors, nil
}

func (i *Importer) processRow(ctx context.Context, mapper Mapper, row Row) (entity.Record, error) {
	record := mapper.Map(row, i.logger)

	missing, err := entity.MissingFields(record)
	if err != nil {
		return nil, eris.Wrapf(err, "validate row %d", row.Number)
	}
	if len(missing) > 0 {
		return nil, &RowError{Kind: mapper.Kind(), Row: row.Number, Missing: missing, Raw: row.Cells}
	}

	record.Stamp(i.recordID(row), i.now())
	if err := i.store.Upsert(ctx, record); err != nil {
		return nil, eris.Wrapf(err, "save row %d", row.Number)
	}
	return record, nil
}

func (i *Importer) recordID(row Row) string {
	if i.options.UseSourceIDs {
		if id := row.String("id"); id != "" {
			return id
		}
	}
	return i.newID()
}
