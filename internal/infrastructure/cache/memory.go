package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryLocker is the in-process lock used when Redis is not configured.
// It only guards against concurrent generation within one instance.
type MemoryLocker struct {
	mu    sync.Mutex
	items map[string]time.Time
}

// NewMemoryLocker creates a new in-memory locker
func NewMemoryLocker() *MemoryLocker {
	locker := &MemoryLocker{
		items: make(map[string]time.Time),
	}

	// Sweep expired locks so the map cannot grow unbounded.
	go locker.cleanupExpired()

	return locker
}

// TryLock acquires the key unless an unexpired holder exists
func (ml *MemoryLocker) TryLock(_ context.Context, key string, ttl time.Duration) (bool, error) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if expiry, exists := ml.items[key]; exists && time.Now().Before(expiry) {
		return false, nil
	}
	ml.items[key] = time.Now().Add(ttl)
	return true, nil
}

// Unlock releases the key
func (ml *MemoryLocker) Unlock(_ context.Context, key string) error {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	delete(ml.items, key)
	return nil
}

// cleanupExpired periodically removes expired locks
func (ml *MemoryLocker) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ml.mu.Lock()
		now := time.Now()
		for key, expiry := range ml.items {
			if now.After(expiry) {
				delete(ml.items, key)
			}
		}
		ml.mu.Unlock()
	}
}
