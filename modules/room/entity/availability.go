package entity

// Availability is the aggregation result for a single slot: how many and
// which participants marked it.
type Availability struct {
	Count        int
	Participants []*Participant
}

// RankedSlot is one entry of the best-times shortlist.
type RankedSlot struct {
	Slot         SlotKey
	Count        int
	Participants []*Participant
	// Full means every participant in the room is available here.
	Full bool
}
