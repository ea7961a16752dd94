package shared

import (
	"context"

	"github.com/nataliadudina/bike-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrIdempotencyInProgress = errs.Sentinel("request with this idempotency key is still in progress", errs.ErrConflict)
	ErrIdempotencyKeyReused  = errs.Sentinel("idempotency key was used for a different request", errs.ErrConflict)
)

// IdempotencyStore remembers which rental a reservation request created.
type IdempotencyStore interface {
	// Begin claims key for fingerprint. A completed claim returns the stored rental id.
	Begin(ctx context.Context, key, fingerprint string) (*uuid.UUID, error)
	Complete(ctx context.Context, key, fingerprint string, rentalID uuid.UUID) error
	// Release drops an unfinished claim so the client can retry.
	Release(ctx context.Context, key string) error
}
