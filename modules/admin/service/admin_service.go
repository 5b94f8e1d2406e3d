package service

import (
	"context"
	"strings"

	"slotsync/core/constants"
	"slotsync/core/errors"
	"slotsync/core/storage"
)

// StorageStatus reports the configured providers and their health.
type StorageStatus struct {
	Active     string           `json:"active"`
	Providers  []storage.Status `json:"providers"`
	MemorySize int              `json:"memorySize"`
}

// AdminService exposes the operator/debug view over the storage layer
type AdminService struct {
	store storage.Provider
}

// AdminServiceInterface defines the service contract
type AdminServiceInterface interface {
	StorageStatus(ctx context.Context) (*StorageStatus, *errors.AppError)
	ListRoomCodes(ctx context.Context) ([]string, *errors.AppError)
}

func NewAdminService(store storage.Provider) AdminServiceInterface {
	return &AdminService{store: store}
}

// StorageStatus pings every composed provider. A degraded primary shows up
// here before it shows up as data loss.
func (s *AdminService) StorageStatus(ctx context.Context) (*StorageStatus, *errors.AppError) {
	status := &StorageStatus{Active: s.store.Name()}

	providers := []storage.Provider{s.store}
	if f, ok := s.store.(*storage.Failover); ok {
		providers = f.Providers()
	}

	for _, p := range providers {
		status.Providers = append(status.Providers, storage.CheckStatus(ctx, p))
		if mem, ok := p.(*storage.MemoryProvider); ok {
			status.MemorySize = mem.Len()
		}
	}
	return status, nil
}

// ListRoomCodes returns every stored room code.
func (s *AdminService) ListRoomCodes(ctx context.Context) ([]string, *errors.AppError) {
	keys, err := s.store.Keys(ctx, constants.RoomKeyPrefix)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStorageFailure, "Failed to list rooms", err)
	}

	codes := make([]string, 0, len(keys))
	for _, key := range keys {
		codes = append(codes, strings.TrimPrefix(key, constants.RoomKeyPrefix))
	}
	return codes, nil
}
