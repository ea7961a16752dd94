package rental

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rental is one possession period of a bicycle by a renter.
// The bicycle and renter references become nil when the referenced record is deleted.
type Rental struct {
	id        uuid.UUID
	bicycleID *uuid.UUID
	renterID  *uuid.UUID
	status    Status
	startedAt time.Time
	endedAt   *time.Time
	cost      *decimal.Decimal
}

func NewRental(bicycleID, renterID uuid.UUID, startedAt time.Time) *Rental {
	return &Rental{
		id:        uuid.New(),
		bicycleID: &bicycleID,
		renterID:  &renterID,
		status:    StatusActive,
		startedAt: startedAt,
	}
}

func Reconstruct(
	id uuid.UUID,
	bicycleID, renterID *uuid.UUID,
	status Status,
	startedAt time.Time,
	endedAt *time.Time,
	cost *decimal.Decimal,
) *Rental {
	return &Rental{
		id:        id,
		bicycleID: bicycleID,
		renterID:  renterID,
		status:    status,
		startedAt: startedAt,
		endedAt:   endedAt,
		cost:      cost,
	}
}

// CheckReturnable reports why userID may not return this rental, checking the
// bicycle reference first, then ownership, then status.
func (r *Rental) CheckReturnable(userID uuid.UUID) error {
	if r.bicycleID == nil {
		return ErrBikeMissing
	}
	if !r.IsRentedBy(userID) {
		return ErrNotAuthorized
	}
	if r.status != StatusActive {
		return ErrAlreadyClosed
	}
	return nil
}

// Finalize records the return: end time, cost and the move to awaiting_payment.
func (r *Rental) Finalize(endedAt time.Time, cost decimal.Decimal) error {
	if r.status != StatusActive {
		return ErrAlreadyClosed
	}
	if endedAt.Before(r.startedAt) {
		return ErrInvalidInterval
	}
	c := cost.Round(2)
	r.endedAt = &endedAt
	r.cost = &c
	r.status = StatusAwaitingPayment
	return nil
}

func (r *Rental) Close() error {
	if r.status != StatusAwaitingPayment {
		return ErrNotAwaitingPayment
	}
	r.status = StatusClosed
	return nil
}

func (r *Rental) IsRentedBy(userID uuid.UUID) bool {
	return r.renterID != nil && *r.renterID == userID
}

func (r *Rental) IsActive() bool          { return r.status == StatusActive }
func (r *Rental) IsAwaitingPayment() bool { return r.status == StatusAwaitingPayment }

func (r *Rental) ID() uuid.UUID          { return r.id }
func (r *Rental) BicycleID() *uuid.UUID  { return r.bicycleID }
func (r *Rental) RenterID() *uuid.UUID   { return r.renterID }
func (r *Rental) Status() Status         { return r.status }
func (r *Rental) StartedAt() time.Time   { return r.startedAt }
func (r *Rental) EndedAt() *time.Time    { return r.endedAt }
func (r *Rental) Cost() *decimal.Decimal { return r.cost }
