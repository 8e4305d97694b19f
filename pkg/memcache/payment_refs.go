package memcache

import (
	"sync"
	"time"
)

// ReferenceGuard de-duplicates in-flight payment verifications: the first
// caller to Acquire a reference wins, concurrent retries are turned away
// until Release (or the hold expires).
type ReferenceGuard interface {
	Acquire(reference string, ttl time.Duration) bool
	Release(reference string)
}

type holdEntry struct {
	expiresAt time.Time
}

type ReferenceHolds struct {
	mu   sync.Mutex
	data map[string]holdEntry
}

func NewReferenceHolds() *ReferenceHolds {
	return &ReferenceHolds{
		data: make(map[string]holdEntry),
	}
}

func (s *ReferenceHolds) Acquire(reference string, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[reference]
	if ok && time.Now().Before(e.expiresAt) {
		return false
	}
	s.data[reference] = holdEntry{expiresAt: time.Now().Add(ttl)}
	return true
}

func (s *ReferenceHolds) Release(reference string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, reference)
}
