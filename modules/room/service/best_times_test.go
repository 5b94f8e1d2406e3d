package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotsync/modules/room/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustSlot(t *testing.T, s string) entity.SlotKey {
	t.Helper()
	slot, err := entity.ParseSlotKey(s)
	require.NoError(t, err)
	return slot
}

func oneDayRoom(participants map[string]*entity.Participant) *entity.Room {
	room := &entity.Room{
		Code:         "TESTROOM",
		StartDate:    day(2025, 1, 1),
		EndDate:      day(2025, 1, 1),
		Participants: participants,
	}
	room.Normalize()
	return room
}

func TestSlotAvailabilitySingleParticipant(t *testing.T) {
	room := oneDayRoom(map[string]*entity.Participant{
		"a": {ID: "a", Name: "A", JoinedAt: day(2025, 1, 1), Schedule: map[string]bool{"2025-01-01_14": true}},
		"b": {ID: "b", Name: "B", JoinedAt: day(2025, 1, 1).Add(time.Minute), Schedule: map[string]bool{}},
	})

	avail := SlotAvailability(room, mustSlot(t, "2025-01-01_14"))
	assert.Equal(t, 1, avail.Count)
	require.Len(t, avail.Participants, 1)
	assert.Equal(t, "a", avail.Participants[0].ID)
}

func TestSlotAvailabilityAllParticipants(t *testing.T) {
	room := oneDayRoom(map[string]*entity.Participant{
		"a": {ID: "a", Name: "A", JoinedAt: day(2025, 1, 1), Schedule: map[string]bool{"2025-01-01_14": true}},
		"b": {ID: "b", Name: "B", JoinedAt: day(2025, 1, 1).Add(time.Minute), Schedule: map[string]bool{"2025-01-01_14": true}},
	})

	avail := SlotAvailability(room, mustSlot(t, "2025-01-01_14"))
	assert.Equal(t, 2, avail.Count)

	ids := []string{avail.Participants[0].ID, avail.Participants[1].ID}
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestSlotAvailabilityEmptyRoom(t *testing.T) {
	room := oneDayRoom(nil)

	avail := SlotAvailability(room, mustSlot(t, "2025-01-01_14"))
	assert.Equal(t, 0, avail.Count)
	assert.Empty(t, avail.Participants)
}

func TestSlotAvailabilityNilScheduleNeverContributes(t *testing.T) {
	room := &entity.Room{
		StartDate: day(2025, 1, 1),
		EndDate:   day(2025, 1, 1),
		Participants: map[string]*entity.Participant{
			"a": {ID: "a", Name: "A"},
		},
	}

	avail := SlotAvailability(room, mustSlot(t, "2025-01-01_14"))
	assert.Equal(t, 0, avail.Count)
}

func TestFindBestTimesSingleMarkedSlot(t *testing.T) {
	room := oneDayRoom(map[string]*entity.Participant{
		"a": {ID: "a", Name: "A", JoinedAt: day(2025, 1, 1), Schedule: map[string]bool{"2025-01-01_14": true}},
		"b": {ID: "b", Name: "B", JoinedAt: day(2025, 1, 1).Add(time.Minute), Schedule: map[string]bool{}},
	})

	ranked := NewBestTimesFinder().FindBestTimes(room)
	require.Len(t, ranked, 1)
	assert.Equal(t, "2025-01-01_14", ranked[0].Slot.String())
	assert.Equal(t, 1, ranked[0].Count)
	assert.False(t, ranked[0].Full)
}

func TestFindBestTimesFullSlot(t *testing.T) {
	room := oneDayRoom(map[string]*entity.Participant{
		"a": {ID: "a", Name: "A", JoinedAt: day(2025, 1, 1), Schedule: map[string]bool{"2025-01-01_14": true}},
		"b": {ID: "b", Name: "B", JoinedAt: day(2025, 1, 1).Add(time.Minute), Schedule: map[string]bool{"2025-01-01_14": true}},
	})

	ranked := NewBestTimesFinder().FindBestTimes(room)
	require.Len(t, ranked, 1)
	assert.Equal(t, 2, ranked[0].Count)
	assert.True(t, ranked[0].Full)
}

func TestFindBestTimesOrderingAndLimit(t *testing.T) {
	// Three participants over a two-day range. 2025-01-02_10 has everyone,
	// 2025-01-01_14 has two, the rest have one each.
	schedule := func(keys ...string) map[string]bool {
		m := make(map[string]bool)
		for _, k := range keys {
			m[k] = true
		}
		return m
	}
	room := &entity.Room{
		Code:      "TESTROOM",
		StartDate: day(2025, 1, 1),
		EndDate:   day(2025, 1, 2),
		Participants: map[string]*entity.Participant{
			"a": {ID: "a", Name: "A", JoinedAt: day(2025, 1, 1), Schedule: schedule("2025-01-01_14", "2025-01-02_10", "2025-01-01_9")},
			"b": {ID: "b", Name: "B", JoinedAt: day(2025, 1, 1).Add(time.Minute), Schedule: schedule("2025-01-01_14", "2025-01-02_10", "2025-01-01_10")},
			"c": {ID: "c", Name: "C", JoinedAt: day(2025, 1, 1).Add(2 * time.Minute), Schedule: schedule("2025-01-02_10", "2025-01-01_11", "2025-01-01_12", "2025-01-01_13")},
		},
	}

	ranked := NewBestTimesFinder().FindBestTimes(room)
	require.Len(t, ranked, 5)

	assert.Equal(t, "2025-01-02_10", ranked[0].Slot.String())
	assert.Equal(t, 3, ranked[0].Count)
	assert.True(t, ranked[0].Full)

	assert.Equal(t, "2025-01-01_14", ranked[1].Slot.String())
	assert.Equal(t, 2, ranked[1].Count)

	// Count-1 slots keep discovery order: earliest day, then hour.
	assert.Equal(t, "2025-01-01_9", ranked[2].Slot.String())
	assert.Equal(t, "2025-01-01_10", ranked[3].Slot.String())
	assert.Equal(t, "2025-01-01_11", ranked[4].Slot.String())
}

func TestFindBestTimesIdempotent(t *testing.T) {
	room := oneDayRoom(map[string]*entity.Participant{
		"a": {ID: "a", Name: "A", JoinedAt: day(2025, 1, 1), Schedule: map[string]bool{
			"2025-01-01_10": true, "2025-01-01_14": true,
		}},
		"b": {ID: "b", Name: "B", JoinedAt: day(2025, 1, 1).Add(time.Minute), Schedule: map[string]bool{
			"2025-01-01_14": true,
		}},
	})

	finder := NewBestTimesFinder()
	first := finder.FindBestTimes(room)
	second := finder.FindBestTimes(room)
	assert.Equal(t, first, second)
}

func TestFindBestTimesStaysInsideRange(t *testing.T) {
	// Slots outside [startDate, endDate] can be stored but never rank.
	room := oneDayRoom(map[string]*entity.Participant{
		"a": {ID: "a", Name: "A", JoinedAt: day(2025, 1, 1), Schedule: map[string]bool{
			"2025-01-01_14": true,
			"2025-02-15_14": true,
			"2024-12-31_14": true,
		}},
	})

	ranked := NewBestTimesFinder().FindBestTimes(room)
	require.Len(t, ranked, 1)
	assert.Equal(t, "2025-01-01_14", ranked[0].Slot.String())
}

func TestFindBestTimesHourWindow(t *testing.T) {
	// Slots outside the visible hour window are stored but never rank.
	room := oneDayRoom(map[string]*entity.Participant{
		"a": {ID: "a", Name: "A", JoinedAt: day(2025, 1, 1), Schedule: map[string]bool{
			"2025-01-01_3":  true,
			"2025-01-01_23": true,
			"2025-01-01_9":  true,
		}},
	})

	ranked := NewBestTimesFinder().FindBestTimes(room)
	require.Len(t, ranked, 1)
	assert.Equal(t, "2025-01-01_9", ranked[0].Slot.String())
}

func TestFindBestTimesEmptyResults(t *testing.T) {
	t.Run("nobody available", func(t *testing.T) {
		room := oneDayRoom(map[string]*entity.Participant{
			"a": {ID: "a", Name: "A", Schedule: map[string]bool{}},
		})
		assert.Empty(t, NewBestTimesFinder().FindBestTimes(room))
	})

	t.Run("no participants", func(t *testing.T) {
		assert.Empty(t, NewBestTimesFinder().FindBestTimes(oneDayRoom(nil)))
	})

	t.Run("inverted date range", func(t *testing.T) {
		room := &entity.Room{
			StartDate: day(2025, 1, 5),
			EndDate:   day(2025, 1, 1),
			Participants: map[string]*entity.Participant{
				"a": {ID: "a", Name: "A", Schedule: map[string]bool{"2025-01-03_10": true}},
			},
		}
		assert.Empty(t, NewBestTimesFinder().FindBestTimes(room))
	})

	t.Run("nil room", func(t *testing.T) {
		assert.Empty(t, NewBestTimesFinder().FindBestTimes(nil))
	})
}
