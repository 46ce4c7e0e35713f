// Package export writes the persisted timesheet as CSV or XLSX.
package export

import (
	"ponto/internal/accounting"
	"ponto/internal/domain"
)

const (
	// DefaultCSVFilename is the download name of the CSV export.
	DefaultCSVFilename = "folha_de_ponto.csv"
	// DefaultXLSXFilename is the download name of the XLSX export.
	DefaultXLSXFilename = "folha_de_ponto.xlsx"
	// SheetName is the worksheet that holds the XLSX export.
	SheetName = "Folha de Ponto"
)

// Row is one exported line. Travel minutes are not exported.
type Row struct {
	Date        string `csv:"Date"`
	Employee    string `csv:"Employee"`
	ClockIn     string `csv:"Clock In"`
	LunchStart  string `csv:"Lunch Start"`
	LunchEnd    string `csv:"Lunch End"`
	ClockOut    string `csv:"Clock Out"`
	TotalWorked string `csv:"Total Worked"`
}

// Header lists the column titles in export order.
var Header = []string{"Date", "Employee", "Clock In", "Lunch Start", "Lunch End", "Clock Out", "Total Worked"}

// BuildRows turns records into export rows in mapping order. The date
// column is the date part of the key.
func BuildRows(records []domain.Record, calc accounting.Calculator) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		displayDate, _ := domain.ParseEntryKey(rec.Key)
		rows = append(rows, Row{
			Date:        displayDate,
			Employee:    rec.Entry.Name,
			ClockIn:     rec.Entry.ClockIn,
			LunchStart:  rec.Entry.LunchStart,
			LunchEnd:    rec.Entry.LunchEnd,
			ClockOut:    rec.Entry.ClockOut,
			TotalWorked: calc.Daily(rec.Entry).Text,
		})
	}
	return rows
}

func (r Row) cells() []string {
	return []string{r.Date, r.Employee, r.ClockIn, r.LunchStart, r.LunchEnd, r.ClockOut, r.TotalWorked}
}
