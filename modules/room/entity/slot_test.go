package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlotKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid afternoon slot", input: "2025-01-01_14", want: "2025-01-01_14"},
		{name: "midnight hour", input: "2025-06-30_0", want: "2025-06-30_0"},
		{name: "last hour of day", input: "2025-06-30_23", want: "2025-06-30_23"},
		{name: "padded hour canonicalizes", input: "2025-01-01_09", want: "2025-01-01_9"},
		{name: "missing separator", input: "2025-01-01", wantErr: true},
		{name: "hour out of range high", input: "2025-01-01_24", wantErr: true},
		{name: "negative hour", input: "2025-01-01_-1", wantErr: true},
		{name: "non-numeric hour", input: "2025-01-01_noon", wantErr: true},
		{name: "impossible date", input: "2025-02-30_10", wantErr: true},
		{name: "garbage date", input: "notadate_10", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := ParseSlotKey(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, slot.String())
		})
	}
}

func TestNewSlotKeyTruncatesToDay(t *testing.T) {
	ts := time.Date(2025, 3, 15, 18, 42, 7, 0, time.UTC)
	slot, err := NewSlotKey(ts, 10)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15_10", slot.String())
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), slot.Date)
}

func TestSlotKeyRoundTrip(t *testing.T) {
	slot, err := NewSlotKey(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), 21)
	require.NoError(t, err)

	parsed, err := ParseSlotKey(slot.String())
	require.NoError(t, err)
	assert.Equal(t, slot, parsed)
}
