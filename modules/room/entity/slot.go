package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SlotDateLayout is the calendar-date half of the slot-key wire form.
const SlotDateLayout = "2006-01-02"

// SlotKey addresses one calendar-day/hour availability cell. Business logic
// works with this type; the delimited string form only appears at the
// storage and wire boundary.
type SlotKey struct {
	Date time.Time // midnight UTC of the calendar day
	Hour int       // [0, 24)
}

// NewSlotKey builds a validated slot key. The date is truncated to its
// calendar day in UTC.
func NewSlotKey(date time.Time, hour int) (SlotKey, error) {
	if hour < 0 || hour > 23 {
		return SlotKey{}, fmt.Errorf("slot hour %d out of range [0, 24)", hour)
	}
	return SlotKey{Date: DayOf(date), Hour: hour}, nil
}

// ParseSlotKey decodes the "<date>_<hour>" wire form, e.g. "2025-01-01_14".
func ParseSlotKey(s string) (SlotKey, error) {
	datePart, hourPart, ok := strings.Cut(s, "_")
	if !ok {
		return SlotKey{}, fmt.Errorf("slot key %q: missing '_' separator", s)
	}

	date, err := time.ParseInLocation(SlotDateLayout, datePart, time.UTC)
	if err != nil {
		return SlotKey{}, fmt.Errorf("slot key %q: invalid date: %w", s, err)
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return SlotKey{}, fmt.Errorf("slot key %q: invalid hour: %w", s, err)
	}

	return NewSlotKey(date, hour)
}

// String renders the canonical encoding: ISO date, underscore, unpadded hour.
func (k SlotKey) String() string {
	return k.Date.Format(SlotDateLayout) + "_" + strconv.Itoa(k.Hour)
}

// DayOf truncates a timestamp to midnight UTC of its calendar day.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
