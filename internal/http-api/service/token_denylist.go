package service

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records revoked access-token ids until their natural expiry.
// Logout writes here; the auth middleware consults it on every request so a
// revoked bearer token stops working immediately instead of at expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

const denylistKeyPrefix = "denylist:jti:"

// redisDenylist keeps revoked token ids in Redis with a TTL matching the
// token's remaining lifetime, so entries clean themselves up.
type redisDenylist struct {
	client *redis.Client
}

func NewRedisDenylist(client *redis.Client) TokenDenylist {
	return &redisDenylist{client: client}
}

func (d *redisDenylist) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		// already expired, nothing to remember
		return nil
	}
	return d.client.Set(ctx, denylistKeyPrefix+jti, "1", ttl).Err()
}

func (d *redisDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.client.Exists(ctx, denylistKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// memoryDenylist is the in-process fallback used in tests and redis-less
// deployments. Expired entries are dropped lazily on lookup.
type memoryDenylist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewMemoryDenylist() TokenDenylist {
	return &memoryDenylist{revoked: make(map[string]time.Time)}
}

func (d *memoryDenylist) Revoke(_ context.Context, jti string, until time.Time) error {
	if time.Until(until) <= 0 {
		return nil
	}
	d.mu.Lock()
	d.revoked[jti] = until
	d.mu.Unlock()
	return nil
}

func (d *memoryDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	d.mu.RLock()
	until, ok := d.revoked[jti]
	d.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if time.Now().After(until) {
		d.mu.Lock()
		delete(d.revoked, jti)
		d.mu.Unlock()
		return false, nil
	}
	return true, nil
}
