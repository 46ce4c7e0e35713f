package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ponto/internal/accounting"
	"ponto/internal/domain"
	"ponto/internal/store"
)

func seed(t *testing.T, kv store.KV, entries ...domain.TimeEntry) {
	t.Helper()
	s := store.Open(context.Background(), kv, store.DefaultSlot)
	for _, e := range entries {
		require.NoError(t, s.Save(context.Background(), e.Key(), e))
	}
}

func entry(name, date, in, ls, le, out string) domain.TimeEntry {
	return domain.TimeEntry{Name: name, Date: date, ClockIn: in, LunchStart: ls, LunchEnd: le, ClockOut: out}
}

func readCSV(t *testing.T, data []byte, comma rune) [][]string {
	t.Helper()
	require.True(t, bytes.HasPrefix(data, utf8BOM), "export should start with a UTF-8 BOM")

	r := csv.NewReader(bytes.NewReader(data[len(utf8BOM):]))
	r.Comma = comma
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

func TestCSV_HeaderAndRows(t *testing.T) {
	kv := store.NewMemoryKV()
	seed(t, kv,
		entry("Ana", "2024-05-06", "08:00", "12:00", "13:00", "17:00"),
		entry("Bruno", "2024-05-06", "09:00", "12:00", "13:00", "14:00"),
	)

	var buf bytes.Buffer
	require.NoError(t, NewExporter(kv, Options{}).CSV(context.Background(), &buf))

	records := readCSV(t, buf.Bytes(), ',')
	require.Len(t, records, 3)
	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{"06/05/2024", "Ana", "08:00", "12:00", "13:00", "17:00", "8h 0min"}, records[1])
	assert.Equal(t, []string{"06/05/2024", "Bruno", "09:00", "12:00", "13:00", "14:00", "4h 0min"}, records[2])
	assert.NotContains(t, buf.String(), "\r\n")
}

func TestCSV_EmptyStoreWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExporter(store.NewMemoryKV(), Options{}).CSV(context.Background(), &buf))

	records := readCSV(t, buf.Bytes(), ',')
	require.Len(t, records, 1)
	assert.Equal(t, Header, records[0])
}

func TestCSV_QuotesOnlyWhenNeeded(t *testing.T) {
	kv := store.NewMemoryKV()
	seed(t, kv, entry("Silva, Ana", "2024-05-06", "08:00", "12:00", "13:00", "17:00"))

	var buf bytes.Buffer
	require.NoError(t, NewExporter(kv, Options{}).CSV(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, `"Silva, Ana"`)
	assert.Contains(t, out, "06/05/2024,")
	assert.NotContains(t, out, `"06/05/2024"`)
}

func TestCSV_SemicolonDelimiter(t *testing.T) {
	kv := store.NewMemoryKV()
	seed(t, kv, entry("Ana", "2024-05-06", "08:00", "12:00", "13:00", "17:00"))

	var buf bytes.Buffer
	require.NoError(t, NewExporter(kv, Options{Comma: ';'}).CSV(context.Background(), &buf))

	records := readCSV(t, buf.Bytes(), ';')
	require.Len(t, records, 2)
	assert.Equal(t, "Ana", records[1][1])
}

func TestCSV_IncompleteAndNegativeTotals(t *testing.T) {
	kv := store.NewMemoryKV()
	// Written straight to persistence, as a hand-edited slot would be.
	require.NoError(t, kv.Set(context.Background(), store.DefaultSlot,
		`{"06/05/2024 - Ana":{"nome":"Ana","data":"2024-05-06","entrada":"08:00","almocoInicio":"","almocoFim":"13:00","saida":"17:00"},`+
			`"07/05/2024 - Ana":{"nome":"Ana","data":"2024-05-07","entrada":"10:00","almocoInicio":"12:00","almocoFim":"13:00","saida":"09:30"}}`))

	var buf bytes.Buffer
	require.NoError(t, NewExporter(kv, Options{}).CSV(context.Background(), &buf))

	records := readCSV(t, buf.Bytes(), ',')
	require.Len(t, records, 3)
	assert.Equal(t, "-", records[1][6])
	assert.Equal(t, "-2h -30min", records[2][6])
}

func TestCSV_ReadsPersistenceNotMemory(t *testing.T) {
	kv := store.NewMemoryKV()
	exporter := NewExporter(kv, Options{})

	var before bytes.Buffer
	require.NoError(t, exporter.CSV(context.Background(), &before))
	assert.Len(t, readCSV(t, before.Bytes(), ','), 1)

	seed(t, kv, entry("Ana", "2024-05-06", "08:00", "12:00", "13:00", "17:00"))

	var after bytes.Buffer
	require.NoError(t, exporter.CSV(context.Background(), &after))
	assert.Len(t, readCSV(t, after.Bytes(), ','), 2)
}

func TestCSV_CustomThresholdDoesNotChangeText(t *testing.T) {
	kv := store.NewMemoryKV()
	seed(t, kv, entry("Ana", "2024-05-06", "08:00", "12:00", "13:00", "17:00"))

	calc := accounting.NewCalculator(480, 2400)
	rows := NewExporter(kv, Options{Calculator: &calc}).Rows(context.Background())
	require.Len(t, rows, 1)
	assert.Equal(t, "8h 0min", rows[0].TotalWorked)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestCSV_WriteError(t *testing.T) {
	err := NewExporter(store.NewMemoryKV(), Options{}).CSV(context.Background(), failingWriter{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to export csv"))
}

func TestXLSX(t *testing.T) {
	kv := store.NewMemoryKV()
	seed(t, kv,
		entry("Ana", "2024-05-06", "08:00", "12:00", "13:00", "17:00"),
		entry("Bruno", "2024-05-07", "08:00", "12:00", "13:00", "14:00"),
	)

	var buf bytes.Buffer
	require.NoError(t, NewExporter(kv, Options{}).XLSX(context.Background(), &buf))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, SheetName, f.GetSheetName(0))

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"07/05/2024", "Bruno", "08:00", "12:00", "13:00", "14:00", "5h 0min"}, rows[2])
}
