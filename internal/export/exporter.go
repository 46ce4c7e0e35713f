package export

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"ponto/internal/accounting"
	"ponto/internal/errors"
	"ponto/internal/logging"
	"ponto/internal/store"
)

// utf8BOM lets spreadsheet programs detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options configures an Exporter. Zero values fall back to defaults.
type Options struct {
	Slot       string
	Comma      rune
	Calculator *accounting.Calculator
}

// Exporter reads the timesheet straight from persistence on every export,
// so it always reflects what was last saved.
type Exporter struct {
	kv    store.KV
	slot  string
	comma rune
	calc  accounting.Calculator
}

// NewExporter creates an exporter over kv.
func NewExporter(kv store.KV, opts Options) *Exporter {
	e := &Exporter{
		kv:    kv,
		slot:  opts.Slot,
		comma: opts.Comma,
		calc:  accounting.Default,
	}
	if e.slot == "" {
		e.slot = store.DefaultSlot
	}
	if e.comma == 0 {
		e.comma = ','
	}
	if opts.Calculator != nil {
		e.calc = *opts.Calculator
	}
	return e
}

// Rows returns the current export rows.
func (e *Exporter) Rows(ctx context.Context) []Row {
	entries := store.Read(ctx, e.kv, e.slot)
	return BuildRows(entries.Records(), e.calc)
}

// CSV writes a BOM, the header and one line per entry. Fields are quoted
// only when they contain the delimiter, a quote or a line break.
func (e *Exporter) CSV(ctx context.Context, w io.Writer) error {
	rows := e.Rows(ctx)

	if _, err := w.Write(utf8BOM); err != nil {
		return errors.NewExportError("csv", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = e.comma
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return errors.NewExportError("csv", err)
	}

	logging.Debugf("exported %d rows as csv", len(rows))
	return nil
}

// XLSX writes a workbook with the header and rows on a single sheet.
func (e *Exporter) XLSX(ctx context.Context, w io.Writer) error {
	rows := e.Rows(ctx)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return errors.NewExportError("xlsx", err)
	}

	if err := setRow(f, 1, Header); err != nil {
		return errors.NewExportError("xlsx", err)
	}
	for i, row := range rows {
		if err := setRow(f, i+2, row.cells()); err != nil {
			return errors.NewExportError("xlsx", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.NewExportError("xlsx", err)
	}

	logging.Debugf("exported %d rows as xlsx", len(rows))
	return nil
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(SheetName, cell, &cells)
}
