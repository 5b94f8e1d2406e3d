package entity

import "time"

// Participant is one person in a room, holding their own availability.
// Schedule maps slot-keys to true; an absent key means "not selected" and
// false values are never persisted.
type Participant struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Schedule map[string]bool `json:"schedule"`
	JoinedAt time.Time       `json:"joinedAt"`
}

// Room is the shared scheduling session, addressed by a short uppercase
// code. StartDate and EndDate bound the inclusive date range and are fixed
// at creation. Version is the optimistic-concurrency token bumped on every
// persisted write; legacy payloads without it decode as 0.
type Room struct {
	Code         string                  `json:"code"`
	CreatedAt    time.Time               `json:"createdAt"`
	StartDate    time.Time               `json:"startDate"`
	EndDate      time.Time               `json:"endDate"`
	Version      int64                   `json:"version,omitempty"`
	Participants map[string]*Participant `json:"participants"`
}

// Normalize coerces absent maps to empty so downstream code never sees nil.
func (r *Room) Normalize() {
	if r.Participants == nil {
		r.Participants = make(map[string]*Participant)
	}
	for _, p := range r.Participants {
		if p.Schedule == nil {
			p.Schedule = make(map[string]bool)
		}
	}
}

// ParticipantByName returns the first participant with the given display
// name, or nil. Names are not unique; join treats a repeat name as the same
// person.
func (r *Room) ParticipantByName(name string) *Participant {
	for _, p := range r.Participants {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// DaysInRange walks the inclusive [StartDate, EndDate] range one calendar
// day at a time. An inverted range enumerates nothing.
func (r *Room) DaysInRange() []time.Time {
	var days []time.Time
	end := DayOf(r.EndDate)
	for day := DayOf(r.StartDate); !day.After(end); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}
