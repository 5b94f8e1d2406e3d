package storage

import (
	"context"
	"errors"
	"time"

	"slotsync/core/logger"
)

// Failover composes a primary provider with a fallback. Writes mirror to
// the fallback so reads survive a primary outage; a primary failure
// degrades to the fallback instead of surfacing the error. This trades
// consistency for availability: once degraded, instances can diverge until
// the primary returns.
type Failover struct {
	primary  Provider
	fallback Provider
	// migrateTTL is applied when a fallback hit is written back to a
	// recovered primary, which no longer knows the original deadline.
	migrateTTL time.Duration
}

func NewFailover(primary, fallback Provider, migrateTTL time.Duration) *Failover {
	return &Failover{
		primary:    primary,
		fallback:   fallback,
		migrateTTL: migrateTTL,
	}
}

func (f *Failover) Name() string { return f.primary.Name() + "+" + f.fallback.Name() }

func (f *Failover) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := f.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}

	if errors.Is(err, ErrKeyNotFound) {
		// Primary miss: the entry may only exist in the fallback after a
		// degraded write. Migrate it back.
		value, ferr := f.fallback.Get(ctx, key)
		if errors.Is(ferr, ErrKeyNotFound) {
			return nil, ErrKeyNotFound
		}
		if ferr != nil {
			logger.Warn("failover: fallback get failed after primary miss", "key", key, "error", ferr)
			return nil, ferr
		}
		if serr := f.primary.Set(ctx, key, value, f.migrateTTL); serr != nil {
			logger.Warn("failover: migrate to primary failed", "key", key, "error", serr)
		} else {
			logger.Info("failover: migrated entry to primary", "key", key)
		}
		return value, nil
	}

	logger.Warn("failover: primary get failed, using fallback", "key", key, "error", err)
	return f.fallback.Get(ctx, key)
}

func (f *Failover) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := f.primary.Set(ctx, key, value, ttl); err != nil {
		logger.Warn("failover: primary set failed, using fallback", "key", key, "error", err)
		return f.fallback.Set(ctx, key, value, ttl)
	}
	// Mirror for fast reads and outage coverage.
	if err := f.fallback.Set(ctx, key, value, ttl); err != nil {
		logger.Warn("failover: mirror set failed", "key", key, "error", err)
	}
	return nil
}

func (f *Failover) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := f.primary.Exists(ctx, key)
	if err != nil {
		logger.Warn("failover: primary exists failed, using fallback", "key", key, "error", err)
		return f.fallback.Exists(ctx, key)
	}
	if !ok {
		return f.fallback.Exists(ctx, key)
	}
	return true, nil
}

func (f *Failover) Delete(ctx context.Context, key string) (bool, error) {
	deleted, err := f.primary.Delete(ctx, key)
	fdeleted, ferr := f.fallback.Delete(ctx, key)
	if err != nil {
		logger.Warn("failover: primary delete failed", "key", key, "error", err)
		return fdeleted, ferr
	}
	return deleted || fdeleted, nil
}

func (f *Failover) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys, err := f.primary.Keys(ctx, prefix)
	if err != nil {
		logger.Warn("failover: primary keys failed, using fallback", "error", err)
		return f.fallback.Keys(ctx, prefix)
	}
	return keys, nil
}

func (f *Failover) Ping(ctx context.Context) error {
	return f.primary.Ping(ctx)
}

// Providers exposes the composed providers for the admin status surface,
// flattening nested chains such as redis over postgres over memory.
func (f *Failover) Providers() []Provider {
	var out []Provider
	for _, p := range []Provider{f.primary, f.fallback} {
		if nested, ok := p.(*Failover); ok {
			out = append(out, nested.Providers()...)
			continue
		}
		out = append(out, p)
	}
	return out
}
