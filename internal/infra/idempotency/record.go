// Package idempotency remembers which rental a keyed reservation request produced.
package idempotency

import (
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	stateProcessing = "processing"
	stateDone       = "done"
)

type record struct {
	Fingerprint string     `json:"fp"`
	State       string     `json:"state"`
	RentalID    *uuid.UUID `json:"rental_id,omitempty"`
}

// resolve decides what a second Begin on an existing record yields.
func (r record) resolve(fingerprint string) (*uuid.UUID, error) {
	if r.Fingerprint != fingerprint {
		return nil, shared.ErrIdempotencyKeyReused
	}
	if r.State != stateDone || r.RentalID == nil {
		return nil, shared.ErrIdempotencyInProgress
	}
	id := *r.RentalID
	return &id, nil
}
