package idempotency

import (
	"context"
	"sync"
	"time"

	"github.com/nataliadudina/bike-rental/internal/pkg/clock"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

// MemoryStore keeps records in process; used when no Redis address is configured.
type MemoryStore struct {
	mu      sync.Mutex
	clock   clock.Clock
	ttl     time.Duration
	records map[string]memoryEntry
}

type memoryEntry struct {
	rec       record
	expiresAt time.Time
}

func NewMemoryStore(clk clock.Clock, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		clock:   clk,
		ttl:     ttl,
		records: map[string]memoryEntry{},
	}
}

var _ shared.IdempotencyStore = (*MemoryStore)(nil)

func (s *MemoryStore) Begin(_ context.Context, key, fingerprint string) (*uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if e, ok := s.records[key]; ok && now.Before(e.expiresAt) {
		return e.rec.resolve(fingerprint)
	}
	s.records[key] = memoryEntry{
		rec:       record{Fingerprint: fingerprint, State: stateProcessing},
		expiresAt: now.Add(s.ttl),
	}
	return nil, nil
}

func (s *MemoryStore) Complete(_ context.Context, key, fingerprint string, rentalID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = memoryEntry{
		rec:       record{Fingerprint: fingerprint, State: stateDone, RentalID: &rentalID},
		expiresAt: s.clock.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	return nil
}
