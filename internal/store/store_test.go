package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ponto/internal/domain"
	apperrors "ponto/internal/errors"
)

func sampleEntry(name, date, out string) domain.TimeEntry {
	return domain.TimeEntry{
		Name:       name,
		Date:       date,
		ClockIn:    "08:00",
		LunchStart: "12:00",
		LunchEnd:   "13:00",
		ClockOut:   out,
	}
}

func setupStore(t *testing.T) (*Store, *MemoryKV) {
	kv := NewMemoryKV()
	return Open(context.Background(), kv, DefaultSlot), kv
}

func TestStore_OpenEmpty(t *testing.T) {
	s, _ := setupStore(t)

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
	assert.Equal(t, DefaultSlot, s.Slot())
}

func TestStore_SaveThenReload(t *testing.T) {
	ctx := context.Background()
	s, kv := setupStore(t)

	first := sampleEntry("Ana", "2024-05-06", "17:00")
	second := sampleEntry("Bruno", "2024-05-06", "16:00")
	require.NoError(t, s.Save(ctx, first.Key(), first))
	require.NoError(t, s.Save(ctx, second.Key(), second))

	fresh := Open(ctx, kv, DefaultSlot)

	assert.Equal(t, s.All(), fresh.All())
	records := fresh.All()
	require.Len(t, records, 2)
	assert.Equal(t, "06/05/2024 - Ana", records[0].Key)
	assert.Equal(t, "06/05/2024 - Bruno", records[1].Key)
}

func TestStore_DuplicateKeyReplacesWholeEntry(t *testing.T) {
	ctx := context.Background()
	s, kv := setupStore(t)

	original := sampleEntry("Ana", "2024-05-06", "17:00")
	original.TravelMinutes = 30
	other := sampleEntry("Bruno", "2024-05-06", "17:00")
	replacement := sampleEntry("Ana", "2024-05-06", "18:00")

	require.NoError(t, s.Save(ctx, original.Key(), original))
	require.NoError(t, s.Save(ctx, other.Key(), other))
	require.NoError(t, s.Save(ctx, replacement.Key(), replacement))

	fresh := Open(ctx, kv, DefaultSlot)
	records := fresh.All()
	require.Len(t, records, 2)

	// The replaced key keeps its first position and has no leftover fields.
	assert.Equal(t, original.Key(), records[0].Key)
	assert.Equal(t, replacement, records[0].Entry)
	assert.Zero(t, records[0].Entry.TravelMinutes)
}

func TestStore_PersistsWholeMappingAsJSONObject(t *testing.T) {
	ctx := context.Background()
	s, kv := setupStore(t)

	entry := sampleEntry("Ana", "2024-05-06", "17:00")
	require.NoError(t, s.Save(ctx, entry.Key(), entry))

	raw, ok, err := kv.Get(ctx, DefaultSlot)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"06/05/2024 - Ana": {
		"nome": "Ana", "data": "2024-05-06", "entrada": "08:00",
		"almocoInicio": "12:00", "almocoFim": "13:00", "saida": "17:00"
	}}`, raw)
}

func TestStore_MalformedSlotLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{{{"},
		{"array", `[1,2,3]`},
		{"null", `null`},
		{"entry is a number", `{"06/05/2024 - Ana": 5}`},
		{"empty string", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemoryKV()
			require.NoError(t, kv.Set(ctx, DefaultSlot, tt.raw))

			s := Open(ctx, kv, DefaultSlot)

			assert.Equal(t, 0, s.Len())
		})
	}
}

func TestStore_LoadsLegacyTextData(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	legacy := `{
		"06/05/2024 - Ana": {"nome":"Ana","data":"2024-05-06","entrada":"08:00","viagem":"45","almocoInicio":"12:00","almocoFim":"13:00","saida":"17:00"},
		"04/05/2024 - Ana": {"nome":"Ana","data":"2024-05-04","entrada":"09:00","almocoInicio":"12:00","almocoFim":"13:00","saida":"15:00"}
	}`
	require.NoError(t, kv.Set(ctx, DefaultSlot, legacy))

	s := Open(ctx, kv, DefaultSlot)

	records := s.All()
	require.Len(t, records, 2)
	assert.Equal(t, "06/05/2024 - Ana", records[0].Key)
	assert.Equal(t, domain.TravelMinutes(45), records[0].Entry.TravelMinutes)
	assert.Equal(t, "04/05/2024 - Ana", records[1].Key)
}

func TestStore_FractionalTravelKeepsEveryEntry(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	legacy := `{"06/05/2024 - Ana":{"nome":"Ana","data":"2024-05-06","entrada":"08:00","viagem":"1.5","almocoInicio":"12:00","almocoFim":"13:00","saida":"17:00"},` +
		`"07/05/2024 - Bia":{"nome":"Bia","data":"2024-05-07","entrada":"08:00","viagem":"30","almocoInicio":"12:00","almocoFim":"13:00","saida":"16:00"}}`
	require.NoError(t, kv.Set(ctx, DefaultSlot, legacy))

	s := Open(ctx, kv, DefaultSlot)
	require.Equal(t, 2, s.Len())

	caio := sampleEntry("Caio", "2024-05-08", "17:00")
	require.NoError(t, s.Save(ctx, caio.Key(), caio))

	records := Read(ctx, kv, DefaultSlot).Records()
	require.Len(t, records, 3)
	assert.Equal(t, "06/05/2024 - Ana", records[0].Key)
	assert.Equal(t, domain.TravelMinutes(1), records[0].Entry.TravelMinutes)
	assert.Equal(t, "07/05/2024 - Bia", records[1].Key)
	assert.Equal(t, domain.TravelMinutes(30), records[1].Entry.TravelMinutes)
	assert.Equal(t, "08/05/2024 - Caio", records[2].Key)
}

type failingKV struct {
	getErr error
	setErr error
}

func (f failingKV) Get(ctx context.Context, slot string) (string, bool, error) {
	return "", false, f.getErr
}

func (f failingKV) Set(ctx context.Context, slot string, value string) error {
	return f.setErr
}

func TestStore_ReadErrorDegradesToEmpty(t *testing.T) {
	s := Open(context.Background(), failingKV{getErr: errors.New("locked")}, DefaultSlot)

	assert.Equal(t, 0, s.Len())
}

func TestStore_SaveReportsPersistenceError(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, failingKV{setErr: errors.New("disk full")}, DefaultSlot)
	entry := sampleEntry("Ana", "2024-05-06", "17:00")

	err := s.Save(ctx, entry.Key(), entry)

	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
	got, ok := s.Get(entry.Key())
	assert.True(t, ok, "in-memory mapping keeps the entry")
	assert.Equal(t, entry, got)
}

func TestRead_BypassesInMemoryState(t *testing.T) {
	ctx := context.Background()
	s, kv := setupStore(t)

	entry := sampleEntry("Ana", "2024-05-06", "17:00")
	require.NoError(t, s.Save(ctx, entry.Key(), entry))

	// Persistence changed behind the store's back.
	require.NoError(t, kv.Set(ctx, DefaultSlot, `{}`))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, Read(ctx, kv, DefaultSlot).Len())
}

func TestMemoryKV_CancelledContext(t *testing.T) {
	kv := NewMemoryKV()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := kv.Get(ctx, DefaultSlot)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, kv.Set(ctx, DefaultSlot, "{}"), context.Canceled)
}
