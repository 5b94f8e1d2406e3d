package dto

import (
	"time"

	"slotsync/modules/room/entity"
)

// ===================== Request DTOs =====================

// CreateRoomRequest creates a room with its creator as the first
// participant. Dates are optional YYYY-MM-DD; the default range is today
// through six days out.
type CreateRoomRequest struct {
	CreatorName string `json:"creatorName" validate:"required"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// JoinRoomRequest adds a participant; a repeat name re-identifies the
// existing participant instead of duplicating them.
type JoinRoomRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateScheduleRequest replaces one participant's full schedule map.
type UpdateScheduleRequest struct {
	UserID   string          `json:"userId" validate:"required"`
	Schedule map[string]bool `json:"schedule"`
}

// ===================== Response DTOs =====================

// RoomWithUserResponse pairs the room snapshot with the caller's
// participant id, returned by create and join.
type RoomWithUserResponse struct {
	Room   *entity.Room `json:"room"`
	UserID string       `json:"userId"`
	// Existing reports whether join resolved to an already-present
	// participant; it decides the HTTP status, not the body.
	Existing bool `json:"-"`
}

// UpdateScheduleResponse returns the room after a schedule write.
type UpdateScheduleResponse struct {
	Success bool         `json:"success"`
	Room    *entity.Room `json:"room"`
}

// BestTimeSlot is one ranked entry of the shortlist.
type BestTimeSlot struct {
	SlotKey      string    `json:"slotKey"`
	Date         string    `json:"date"`
	Hour         int       `json:"hour"`
	Count        int       `json:"count"`
	Participants []string  `json:"participants"`
	Full         bool      `json:"full"`
	Rank         int       `json:"rank"`
	StartsAt     time.Time `json:"startsAt"`
}

// BestTimesResponse is the ranked shortlist for a room.
type BestTimesResponse struct {
	Code              string         `json:"code"`
	TotalParticipants int            `json:"totalParticipants"`
	BestTimes         []BestTimeSlot `json:"bestTimes"`
}

// ===================== Mapper Functions =====================

// ToBestTimesResponse maps ranked slots onto the wire shape.
func ToBestTimesResponse(room *entity.Room, ranked []entity.RankedSlot) *BestTimesResponse {
	resp := &BestTimesResponse{
		Code:              room.Code,
		TotalParticipants: len(room.Participants),
		BestTimes:         make([]BestTimeSlot, 0, len(ranked)),
	}

	for i, rs := range ranked {
		names := make([]string, 0, len(rs.Participants))
		for _, p := range rs.Participants {
			names = append(names, p.Name)
		}
		resp.BestTimes = append(resp.BestTimes, BestTimeSlot{
			SlotKey:      rs.Slot.String(),
			Date:         rs.Slot.Date.Format(entity.SlotDateLayout),
			Hour:         rs.Slot.Hour,
			Count:        rs.Count,
			Participants: names,
			Full:         rs.Full,
			Rank:         i + 1,
			StartsAt:     rs.Slot.Date.Add(time.Duration(rs.Slot.Hour) * time.Hour),
		})
	}
	return resp
}
