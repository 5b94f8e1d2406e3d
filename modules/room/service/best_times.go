package service

import (
	"sort"

	"slotsync/core/constants"
	"slotsync/modules/room/entity"
)

// BestTimesFinder ranks slots across a room's date range by how many
// participants are available.
type BestTimesFinder struct {
	// StartHour and EndHour bound the visible hour window [StartHour, EndHour).
	StartHour int
	EndHour   int
	// Limit caps the shortlist length.
	Limit int
}

// NewBestTimesFinder creates a finder with the default policy.
func NewBestTimesFinder() *BestTimesFinder {
	return &BestTimesFinder{
		StartHour: constants.DefaultStartHour,
		EndHour:   constants.DefaultEndHour,
		Limit:     constants.DefaultTopTimes,
	}
}

// SlotAvailability aggregates one slot over the room's participants. Pure
// function of the snapshot: no participants means count 0, not an error.
// The returned participants are ordered by join time, then id, so repeated
// runs over the same snapshot agree.
func SlotAvailability(room *entity.Room, slot entity.SlotKey) entity.Availability {
	if room == nil || len(room.Participants) == 0 {
		return entity.Availability{Participants: []*entity.Participant{}}
	}

	key := slot.String()
	available := make([]*entity.Participant, 0)
	for _, p := range room.Participants {
		if p.Schedule != nil && p.Schedule[key] {
			available = append(available, p)
		}
	}

	sort.Slice(available, func(i, j int) bool {
		if !available[i].JoinedAt.Equal(available[j].JoinedAt) {
			return available[i].JoinedAt.Before(available[j].JoinedAt)
		}
		return available[i].ID < available[j].ID
	})

	return entity.Availability{Count: len(available), Participants: available}
}

// FindBestTimes enumerates every slot in the room's inclusive date range
// and hour window, drops slots nobody marked, and returns the top slots by
// availability count. Ties keep discovery order (earliest day and hour
// first), so the result is deterministic for a fixed snapshot.
func (f *BestTimesFinder) FindBestTimes(room *entity.Room) []entity.RankedSlot {
	if room == nil {
		return []entity.RankedSlot{}
	}

	total := len(room.Participants)
	ranked := make([]entity.RankedSlot, 0)

	for _, day := range room.DaysInRange() {
		for hour := f.StartHour; hour < f.EndHour; hour++ {
			slot, err := entity.NewSlotKey(day, hour)
			if err != nil {
				continue
			}
			avail := SlotAvailability(room, slot)
			if avail.Count == 0 {
				continue
			}
			ranked = append(ranked, entity.RankedSlot{
				Slot:         slot,
				Count:        avail.Count,
				Participants: avail.Participants,
				Full:         total > 0 && avail.Count == total,
			})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > f.Limit {
		return ranked[:f.Limit]
	}
	return ranked
}
