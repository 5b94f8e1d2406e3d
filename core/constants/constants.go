package constants

import "time"

// Room code policy
const (
	RoomCodeAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	RoomCodeLength      = 8
	RoomCodeMaxAttempts = 10
)

// Room lifecycle
const (
	RoomTTL          = 7 * 24 * time.Hour
	MaxRoomRangeDays = 30
	// DefaultRangeDays is added to today when a room is created without
	// explicit dates, yielding a 7-day inclusive span.
	DefaultRangeDays = 6
)

// Ranking policy defaults; the visible hour window matches the grid the
// client renders, not a storage constraint.
const (
	DefaultStartHour = 9
	DefaultEndHour   = 22
	DefaultTopTimes  = 5
)

// Storage
const (
	RoomKeyPrefix = "room:"
	// UpdateMaxRetries bounds the optimistic retry loop on version conflicts.
	UpdateMaxRetries = 3
)

// Server
const (
	DefaultHTTPAddress      = ":7070"
	ShutdownTimeout         = 10 * time.Second
	DatabaseMaxOpenConns    = 10
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)
