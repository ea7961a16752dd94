package rental

import "github.com/nataliadudina/bike-rental/internal/pkg/errs"

var (
	ErrNotFound              = errs.Sentinel("rental not found", errs.ErrNotFound)
	ErrBikeMissing           = errs.Sentinel("rented bicycle no longer exists", errs.ErrNotFound)
	ErrNotAuthorized         = errs.Sentinel("rental belongs to another renter", errs.ErrUnauthorized)
	ErrAlreadyClosed         = errs.Sentinel("rental is not active", errs.ErrConflict)
	ErrNotAwaitingPayment    = errs.Sentinel("rental is not awaiting payment", errs.ErrConflict)
	ErrRenterHasActiveRental = errs.Sentinel("renter already has an active rental", errs.ErrConflict)

	ErrInvalidInterval = errs.Sentinel("rental end precedes its start", errs.ErrValidation)
	ErrNegativeRate    = errs.Sentinel("billing rates must not be negative", errs.ErrValidation)
	ErrInvalidStatus   = errs.Sentinel("invalid rental status", errs.ErrValidation)

	ErrCostUnavailable = errs.Sentinel("rental cost could not be computed", errs.ErrUpstream)
)
