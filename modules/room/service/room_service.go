package service

import (
	"context"
	stderrors "errors"
	"time"

	"slotsync/core/config"
	"slotsync/core/constants"
	"slotsync/core/errors"
	"slotsync/core/logger"
	"slotsync/core/utils"
	"slotsync/modules/room/dto"
	"slotsync/modules/room/entity"
	"slotsync/modules/room/repository"
)

// RoomService implements room business logic over the repository
type RoomService struct {
	repo   repository.RoomRepositoryInterface
	finder *BestTimesFinder
	cfg    config.RoomConfig
	now    func() time.Time
}

// RoomServiceInterface defines the service contract
type RoomServiceInterface interface {
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomWithUserResponse, *errors.AppError)
	GetRoom(ctx context.Context, code string) (*entity.Room, *errors.AppError)
	JoinRoom(ctx context.Context, code string, req *dto.JoinRoomRequest) (*dto.RoomWithUserResponse, *errors.AppError)
	UpdateSchedule(ctx context.Context, code string, req *dto.UpdateScheduleRequest) (*dto.UpdateScheduleResponse, *errors.AppError)
	BestTimes(ctx context.Context, code string) (*dto.BestTimesResponse, *errors.AppError)
}

// NewRoomService creates a room service with the configured ranking policy.
func NewRoomService(repo repository.RoomRepositoryInterface, cfg config.RoomConfig) RoomServiceInterface {
	return &RoomService{
		repo: repo,
		finder: &BestTimesFinder{
			StartHour: cfg.StartHour,
			EndHour:   cfg.EndHour,
			Limit:     cfg.TopTimes,
		},
		cfg: cfg,
		now: time.Now,
	}
}

// CreateRoom validates the request, generates a unique code and persists
// the room with its creator as the first participant. Nothing is persisted
// when validation fails.
func (s *RoomService) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomWithUserResponse, *errors.AppError) {
	if req.CreatorName == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Creator name is required", nil)
	}

	startDate, endDate, appErr := s.resolveDateRange(req.StartDate, req.EndDate)
	if appErr != nil {
		return nil, appErr
	}

	code, appErr := s.generateUniqueCode(ctx)
	if appErr != nil {
		return nil, appErr
	}

	now := s.now().UTC()
	userID := utils.GenerateParticipantID()
	room := &entity.Room{
		Code:      code,
		CreatedAt: now,
		StartDate: startDate,
		EndDate:   endDate,
		Participants: map[string]*entity.Participant{
			userID: {
				ID:       userID,
				Name:     req.CreatorName,
				Schedule: make(map[string]bool),
				JoinedAt: now,
			},
		},
	}

	if err := s.repo.SaveRoom(ctx, room); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create room", err)
	}

	logger.Info("room created", "code", code, "creator", req.CreatorName)
	return &dto.RoomWithUserResponse{Room: room, UserID: userID}, nil
}

// GetRoom fetches a room by code; lookups are case-insensitive.
func (s *RoomService) GetRoom(ctx context.Context, code string) (*entity.Room, *errors.AppError) {
	room, err := s.repo.GetRoom(ctx, code)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get room", err)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}
	return room, nil
}

// JoinRoom adds a participant. A name already present in the room resolves
// to that participant's existing id without mutating anything.
func (s *RoomService) JoinRoom(ctx context.Context, code string, req *dto.JoinRoomRequest) (*dto.RoomWithUserResponse, *errors.AppError) {
	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name is required", nil)
	}

	var userID string

	room, err := s.repo.UpdateRoom(ctx, code, func(room *entity.Room) error {
		if p := room.ParticipantByName(req.Name); p != nil {
			userID = p.ID
			return errNoMutation
		}

		now := s.now().UTC()
		userID = utils.GenerateParticipantID()
		room.Participants[userID] = &entity.Participant{
			ID:       userID,
			Name:     req.Name,
			Schedule: make(map[string]bool),
			JoinedAt: now,
		}
		return nil
	})

	if stderrors.Is(err, errNoMutation) {
		room, appErr := s.GetRoom(ctx, code)
		if appErr != nil {
			return nil, appErr
		}
		return &dto.RoomWithUserResponse{Room: room, UserID: userID, Existing: true}, nil
	}
	if stderrors.Is(err, repository.ErrRoomNotFound) {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}
	if stderrors.Is(err, repository.ErrUpdateConflict) {
		return nil, errors.NewAppError(errors.ErrConflict, "Room is being updated, try again", err)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to join room", err)
	}

	logger.Info("participant joined", "code", room.Code, "name", req.Name)
	return &dto.RoomWithUserResponse{Room: room, UserID: userID}, nil
}

// UpdateSchedule replaces one participant's schedule wholesale. Keys must
// be well-formed slot keys; false entries are dropped rather than stored.
// Dates outside the room's range are accepted and simply never rank.
func (s *RoomService) UpdateSchedule(ctx context.Context, code string, req *dto.UpdateScheduleRequest) (*dto.UpdateScheduleResponse, *errors.AppError) {
	if req.UserID == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "userId is required", nil)
	}
	if req.Schedule == nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "schedule is required", nil)
	}

	schedule := make(map[string]bool, len(req.Schedule))
	for key, selected := range req.Schedule {
		slot, err := entity.ParseSlotKey(key)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid slot key: "+key, err)
		}
		if selected {
			schedule[slot.String()] = true
		}
	}

	room, err := s.repo.UpdateParticipantSchedule(ctx, code, req.UserID, schedule)
	if stderrors.Is(err, repository.ErrRoomNotFound) {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}
	if stderrors.Is(err, repository.ErrParticipantNotFound) {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found in room", nil)
	}
	if stderrors.Is(err, repository.ErrUpdateConflict) {
		return nil, errors.NewAppError(errors.ErrConflict, "Schedule update conflicted, try again", err)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update schedule", err)
	}

	return &dto.UpdateScheduleResponse{Success: true, Room: room}, nil
}

// BestTimes computes the ranked shortlist for a room snapshot.
func (s *RoomService) BestTimes(ctx context.Context, code string) (*dto.BestTimesResponse, *errors.AppError) {
	room, appErr := s.GetRoom(ctx, code)
	if appErr != nil {
		return nil, appErr
	}
	ranked := s.finder.FindBestTimes(room)
	return dto.ToBestTimesResponse(room, ranked), nil
}

// errNoMutation aborts an UpdateRoom callback without treating it as a
// failure; used when join resolves to an existing participant.
var errNoMutation = stderrors.New("no mutation")

func (s *RoomService) resolveDateRange(start, end string) (time.Time, time.Time, *errors.AppError) {
	today := entity.DayOf(s.now())
	startDate := today
	endDate := today.AddDate(0, 0, constants.DefaultRangeDays)

	if start != "" {
		parsed, err := time.ParseInLocation(entity.SlotDateLayout, start, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "Invalid startDate", err)
		}
		startDate = parsed
	}
	if end != "" {
		parsed, err := time.ParseInLocation(entity.SlotDateLayout, end, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "Invalid endDate", err)
		}
		endDate = parsed
	}

	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "startDate must not be after endDate", nil)
	}
	if endDate.Sub(startDate) > time.Duration(constants.MaxRoomRangeDays)*24*time.Hour {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "Date range must not exceed 30 days", nil)
	}
	return startDate, endDate, nil
}

func (s *RoomService) generateUniqueCode(ctx context.Context) (string, *errors.AppError) {
	code := utils.GenerateRoomCode()
	for attempt := 0; attempt < constants.RoomCodeMaxAttempts; attempt++ {
		exists, err := s.repo.RoomExists(ctx, code)
		if err != nil {
			return "", errors.NewAppError(errors.ErrInternalServer, "Failed to check room code", err)
		}
		if !exists {
			return code, nil
		}
		code = utils.GenerateRoomCode()
	}

	if s.cfg.CodeOnExhaustion == config.ExhaustionAccept {
		logger.Warn("room code generation exhausted, accepting possible collision", "code", code)
		return code, nil
	}
	return "", errors.NewAppError(errors.ErrCodeExhausted, "Could not generate a unique room code", nil)
}
