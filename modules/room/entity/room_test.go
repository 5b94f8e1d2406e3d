package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizeCoercesAbsentMaps(t *testing.T) {
	room := &Room{
		Code: "ABCD1234",
		Participants: map[string]*Participant{
			"u1": {ID: "u1", Name: "Ana"},
		},
	}

	room.Normalize()
	assert.NotNil(t, room.Participants)
	assert.NotNil(t, room.Participants["u1"].Schedule)

	empty := &Room{Code: "EMPTY000"}
	empty.Normalize()
	assert.NotNil(t, empty.Participants)
	assert.Len(t, empty.Participants, 0)
}

func TestParticipantByName(t *testing.T) {
	room := &Room{
		Participants: map[string]*Participant{
			"u1": {ID: "u1", Name: "Ana"},
			"u2": {ID: "u2", Name: "Ben"},
		},
	}

	assert.Equal(t, "u2", room.ParticipantByName("Ben").ID)
	assert.Nil(t, room.ParticipantByName("Cara"))
}

func TestDaysInRange(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{name: "single day", start: day(2025, 1, 1), end: day(2025, 1, 1), want: 1},
		{name: "one week", start: day(2025, 1, 1), end: day(2025, 1, 7), want: 7},
		{name: "crosses month boundary", start: day(2025, 1, 30), end: day(2025, 2, 2), want: 4},
		{name: "inverted range is empty", start: day(2025, 1, 5), end: day(2025, 1, 1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := &Room{StartDate: tt.start, EndDate: tt.end}
			days := room.DaysInRange()
			assert.Len(t, days, tt.want)
			if tt.want > 0 {
				assert.Equal(t, tt.start, days[0])
				assert.Equal(t, tt.end, days[len(days)-1])
			}
		})
	}
}

func TestDaysInRangeIgnoresTimeOfDay(t *testing.T) {
	room := &Room{
		StartDate: time.Date(2025, 1, 1, 23, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 2, 0, 15, 0, 0, time.UTC),
	}
	assert.Len(t, room.DaysInRange(), 2)
}
