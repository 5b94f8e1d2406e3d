package utils

import (
	"strings"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"slotsync/core/constants"
)

// GenerateRoomCode returns a short uppercase room code. Uniqueness is the
// caller's problem; codes are checked against the store on creation.
func GenerateRoomCode() string {
	code, err := gonanoid.Generate(constants.RoomCodeAlphabet, constants.RoomCodeLength)
	if err != nil {
		return ""
	}
	return code
}

// GenerateParticipantID returns an opaque participant identifier, unique
// within a room for all practical purposes.
func GenerateParticipantID() string {
	return uuid.NewString()
}

// NormalizeRoomCode upper-cases a room code for lookup; codes are always
// stored uppercase.
func NormalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
