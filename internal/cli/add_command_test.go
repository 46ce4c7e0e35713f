package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ponto/internal/store"
)

func TestAddCommand_Execute(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{
			name: "exceeds daily minimum",
			args: []string{"Ana", "2024-05-06", "08:00", "12:00", "13:00", "17:00"},
			want: "Ana: ✅ MET, with 120 extra minutes (8h 0min)",
		},
		{
			name: "meets daily minimum exactly",
			args: []string{"Bruno", "2024-05-06", "08:00", "11:00", "12:00", "15:00", "30"},
			want: "Bruno: ✅ MET (6h 0min)",
		},
		{
			name: "below daily minimum",
			args: []string{"Carla", "2024-05-06", "08:00", "10:00", "11:00", "13:00"},
			want: "Carla: ⛔ NOT MET (4h 0min)",
		},
		{
			name:    "missing clock out",
			args:    []string{"Ana", "2024-05-06", "08:00", "12:00", "13:00"},
			wantErr: "failed to save entry: All fields are required. Missing: saida",
		},
		{
			name:    "no arguments",
			args:    []string{},
			wantErr: "All fields are required.",
		},
		{
			name:    "travel is not a number",
			args:    []string{"Ana", "2024-05-06", "08:00", "12:00", "13:00", "17:00", "abc"},
			wantErr: "must be a whole number of minutes",
		},
		{
			name:    "too many arguments",
			args:    []string{"Ana", "2024-05-06", "08:00", "12:00", "13:00", "17:00", "0", "extra"},
			wantErr: "usage: ponto add",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out, _ := setupTestApp(t)

			err := NewAddCommand(app).Execute(context.Background(), tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, out.String())
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestAddCommand_PersistsUnderDateAndName(t *testing.T) {
	app, _, kv := setupTestApp(t)
	ctx := context.Background()

	require.NoError(t, NewAddCommand(app).Execute(ctx, []string{"Ana", "2024-05-06", "08:00", "12:00", "13:00", "17:00"}))

	raw, ok, err := kv.Get(ctx, store.DefaultSlot)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"06/05/2024 - Ana"`)
	assert.Contains(t, raw, `"saida":"17:00"`)
}

func TestAddCommand_StorageFailure(t *testing.T) {
	app, out, _ := setupTestApp(t)
	app.api = stubAPI{err: errors.New("disk full")}

	err := NewAddCommand(app).Execute(context.Background(), []string{"Ana", "2024-05-06", "08:00", "12:00", "13:00", "17:00"})
	require.Error(t, err)
	assert.Equal(t, "failed to save entry: disk full", err.Error())
	assert.Empty(t, out.String())
}
