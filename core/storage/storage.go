package storage

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Get when a key is absent or expired.
var ErrKeyNotFound = errors.New("storage: key not found")

// Provider is the minimal key-value contract the room layer needs. Values
// are opaque bytes; callers own serialization. TTL handling is the
// provider's responsibility.
type Provider interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) (bool, error)
	Keys(ctx context.Context, prefix string) ([]string, error)
	Ping(ctx context.Context) error
}

// Status describes one provider's health for the admin surface.
type Status struct {
	Provider string `json:"provider"`
	Healthy  bool   `json:"healthy"`
	Detail   string `json:"detail,omitempty"`
}

// CheckStatus pings a provider and reports the result.
func CheckStatus(ctx context.Context, p Provider) Status {
	st := Status{Provider: p.Name()}
	if err := p.Ping(ctx); err != nil {
		st.Detail = err.Error()
		return st
	}
	st.Healthy = true
	return st
}
