package llm

import (
	"fmt"
	"sync"
	"time"
)

// KeyStats reports usage counters for one API key.
type KeyStats struct {
	Key      string
	Requests int
	InFlight int
}

// Keyring rotates requests across a pool of API keys, tracking per-key
// request counts inside a reset window. It is an explicit stateful service
// injected into the client rather than package-level mutable state, so the
// rotation policy stays unit-testable.
type Keyring struct {
	mu          sync.Mutex
	keys        []string
	requests    []int
	inFlight    []int
	next        int
	perKeyLimit int
	window      time.Duration
	windowStart time.Time
	now         func() time.Time
}

// NewKeyring creates a rotation service over the given keys. perKeyLimit is
// the maximum requests per key inside each reset window; a zero or negative
// limit disables budgeting.
func NewKeyring(keys []string, perKeyLimit int, window time.Duration) (*Keyring, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("keyring requires at least one API key")
	}
	if window <= 0 {
		window = time.Minute
	}
	k := &Keyring{
		keys:        keys,
		requests:    make([]int, len(keys)),
		inFlight:    make([]int, len(keys)),
		perKeyLimit: perKeyLimit,
		window:      window,
		now:         time.Now,
	}
	k.windowStart = k.now()
	return k, nil
}

// Acquire returns the next key with remaining budget, round-robin, and
// counts the request against it. It fails when every key has exhausted its
// window budget; callers should surface that as backpressure, not retry
// immediately.
func (k *Keyring) Acquire() (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.maybeResetLocked()

	for offset := 0; offset < len(k.keys); offset++ {
		idx := (k.next + offset) % len(k.keys)
		if k.perKeyLimit > 0 && k.requests[idx] >= k.perKeyLimit {
			continue
		}
		k.requests[idx]++
		k.inFlight[idx]++
		k.next = (idx + 1) % len(k.keys)
		return k.keys[idx], nil
	}

	return "", fmt.Errorf("all %d API keys exhausted for the current window", len(k.keys))
}

// Release marks a previously acquired key as no longer in flight.
func (k *Keyring) Release(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()

	for i, candidate := range k.keys {
		if candidate == key && k.inFlight[i] > 0 {
			k.inFlight[i]--
			return
		}
	}
}

// Stats returns a snapshot of per-key usage for the current window.
func (k *Keyring) Stats() []KeyStats {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.maybeResetLocked()

	stats := make([]KeyStats, len(k.keys))
	for i, key := range k.keys {
		stats[i] = KeyStats{
			Key:      redactKey(key),
			Requests: k.requests[i],
			InFlight: k.inFlight[i],
		}
	}
	return stats
}

// maybeResetLocked zeroes the request counters when the window has elapsed.
// Callers must hold mu.
func (k *Keyring) maybeResetLocked() {
	if k.now().Sub(k.windowStart) < k.window {
		return
	}
	for i := range k.requests {
		k.requests[i] = 0
	}
	k.windowStart = k.now()
}

// redactKey keeps only a recognizable suffix so stats never leak a full key.
func redactKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
