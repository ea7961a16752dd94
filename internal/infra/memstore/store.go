// Package memstore keeps the whole data set in process memory. It backs the
// service when STORAGE_DRIVER=memory and the use-case tests.
package memstore

import (
	"context"
	"maps"
	"sync"

	"github.com/nataliadudina/bike-rental/internal/domain/bicycle"
	"github.com/nataliadudina/bike-rental/internal/domain/payment"
	"github.com/nataliadudina/bike-rental/internal/domain/rental"
	"github.com/nataliadudina/bike-rental/internal/domain/user"
	"github.com/nataliadudina/bike-rental/internal/pkg/clock"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

// Entities are held by value so callers never alias stored state.
type state struct {
	bicycles map[uuid.UUID]bicycle.Bicycle
	rentals  map[uuid.UUID]rental.Rental
	payments map[uuid.UUID]payment.Payment
	users    map[uuid.UUID]user.User
}

func (s *state) clone() *state {
	return &state{
		bicycles: maps.Clone(s.bicycles),
		rentals:  maps.Clone(s.rentals),
		payments: maps.Clone(s.payments),
		users:    maps.Clone(s.users),
	}
}

// optimisticAttempts bounds how often a unit of work is re-run after losing a
// commit race before it runs under the exclusive lock.
const optimisticAttempts = 5

// Store runs each unit of work against a private copy of the data. The copy
// replaces the live data only when fn succeeds and nothing else committed in
// between; otherwise fn runs again on fresh data. Slow units (a cost
// computation, for instance) therefore never block readers or other writers.
type Store struct {
	mu      sync.RWMutex
	data    *state
	version uint64
	clock   clock.Clock
}

func New(clk clock.Clock) *Store {
	return &Store{
		clock: clk,
		data: &state{
			bicycles: map[uuid.UUID]bicycle.Bicycle{},
			rentals:  map[uuid.UUID]rental.Rental{},
			payments: map[uuid.UUID]payment.Payment{},
			users:    map[uuid.UUID]user.User{},
		},
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt < optimisticAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.mu.RLock()
		staged, base := s.data.clone(), s.version
		s.mu.RUnlock()

		if err := fn(ctx, &memTx{st: staged, clock: s.clock}); err != nil {
			return err
		}

		s.mu.Lock()
		if s.version == base {
			s.data = staged
			s.version++
			s.mu.Unlock()
			return nil
		}
		s.mu.Unlock()
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.data.clone()
	if err := fn(ctx, &memTx{st: staged, clock: s.clock}); err != nil {
		return err
	}
	s.data = staged
	s.version++
	return nil
}

func (s *Store) read(fn func(st *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}
