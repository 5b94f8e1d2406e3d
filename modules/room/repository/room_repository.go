package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"slotsync/core/constants"
	"slotsync/core/storage"
	"slotsync/core/utils"
	"slotsync/modules/room/entity"
)

// Sentinel errors the service layer maps onto its taxonomy.
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrParticipantNotFound = errors.New("participant not found in room")
	ErrUpdateConflict      = errors.New("room update conflict")
)

// RoomRepositoryInterface defines the persistence contract
type RoomRepositoryInterface interface {
	GetRoom(ctx context.Context, code string) (*entity.Room, error)
	SaveRoom(ctx context.Context, room *entity.Room) error
	RoomExists(ctx context.Context, code string) (bool, error)
	DeleteRoom(ctx context.Context, code string) (bool, error)
	ListRoomCodes(ctx context.Context) ([]string, error)
	UpdateRoom(ctx context.Context, code string, apply func(*entity.Room) error) (*entity.Room, error)
	UpdateParticipantSchedule(ctx context.Context, code, participantID string, schedule map[string]bool) (*entity.Room, error)
}

// RoomRepository persists whole-room JSON documents in the key-value
// provider. Mutations go through a per-room lock for in-process writers,
// plus an optimistic version check against the store so a save from
// another instance between read and write is detected and the cycle
// retried on a fresh snapshot.
type RoomRepository struct {
	store storage.Provider
	ttl   time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRoomRepository(store storage.Provider, ttl time.Duration) RoomRepositoryInterface {
	return &RoomRepository{
		store: store,
		ttl:   ttl,
		locks: make(map[string]*sync.Mutex),
	}
}

func roomKey(code string) string {
	return constants.RoomKeyPrefix + utils.NormalizeRoomCode(code)
}

func (r *RoomRepository) lockFor(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	return l
}

// GetRoom fetches and normalizes a room; (nil, nil) when absent.
func (r *RoomRepository) GetRoom(ctx context.Context, code string) (*entity.Room, error) {
	raw, err := r.store.Get(ctx, roomKey(code))
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	var room entity.Room
	if err := json.Unmarshal(raw, &room); err != nil {
		return nil, fmt.Errorf("decode room %s: %w", code, err)
	}
	room.Normalize()
	return &room, nil
}

// SaveRoom normalizes, bumps the version and writes the whole document with
// the configured TTL.
func (r *RoomRepository) SaveRoom(ctx context.Context, room *entity.Room) error {
	room.Normalize()
	room.Version++

	raw, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("encode room %s: %w", room.Code, err)
	}
	if err := r.store.Set(ctx, roomKey(room.Code), raw, r.ttl); err != nil {
		return fmt.Errorf("save room %s: %w", room.Code, err)
	}
	return nil
}

func (r *RoomRepository) RoomExists(ctx context.Context, code string) (bool, error) {
	return r.store.Exists(ctx, roomKey(code))
}

func (r *RoomRepository) DeleteRoom(ctx context.Context, code string) (bool, error) {
	return r.store.Delete(ctx, roomKey(code))
}

func (r *RoomRepository) ListRoomCodes(ctx context.Context) ([]string, error) {
	keys, err := r.store.Keys(ctx, constants.RoomKeyPrefix)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(keys))
	for _, key := range keys {
		codes = append(codes, strings.TrimPrefix(key, constants.RoomKeyPrefix))
	}
	return codes, nil
}

// UpdateRoom runs a read-modify-write under the room's lock. The callback
// sees a fresh snapshot; returning an error aborts without writing. Before
// saving, the stored version is re-read: if another writer got in since the
// snapshot, the whole get-apply-save cycle retries on fresh state, so an
// update from a second instance is folded in rather than clobbered.
// Exhausting the retries reports ErrUpdateConflict.
func (r *RoomRepository) UpdateRoom(ctx context.Context, code string, apply func(*entity.Room) error) (*entity.Room, error) {
	key := roomKey(code)
	lock := r.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	for attempt := 0; attempt < constants.UpdateMaxRetries; attempt++ {
		room, err := r.GetRoom(ctx, code)
		if err != nil {
			return nil, err
		}
		if room == nil {
			return nil, ErrRoomNotFound
		}

		if err := apply(room); err != nil {
			return nil, err
		}

		stored, err := r.storedVersion(ctx, code)
		if err != nil {
			return nil, err
		}
		if stored != room.Version {
			continue
		}

		if err := r.SaveRoom(ctx, room); err != nil {
			return nil, err
		}
		return room, nil
	}
	return nil, ErrUpdateConflict
}

// storedVersion reads only the version field of the persisted document.
func (r *RoomRepository) storedVersion(ctx context.Context, code string) (int64, error) {
	raw, err := r.store.Get(ctx, roomKey(code))
	if errors.Is(err, storage.ErrKeyNotFound) {
		return 0, ErrRoomNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("get room version: %w", err)
	}

	var doc struct {
		Version int64 `json:"version"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0, fmt.Errorf("decode room version %s: %w", code, err)
	}
	return doc.Version, nil
}

// UpdateParticipantSchedule replaces exactly one participant's schedule.
// The write is scoped to that participant's sub-map over a fresh snapshot,
// so a concurrent edit to a different participant is never lost.
func (r *RoomRepository) UpdateParticipantSchedule(ctx context.Context, code, participantID string, schedule map[string]bool) (*entity.Room, error) {
	return r.UpdateRoom(ctx, code, func(room *entity.Room) error {
		p, ok := room.Participants[participantID]
		if !ok {
			return ErrParticipantNotFound
		}
		if schedule == nil {
			schedule = make(map[string]bool)
		}
		p.Schedule = schedule
		return nil
	})
}
