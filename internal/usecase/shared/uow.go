package shared

import (
	"context"
	"time"

	"github.com/nataliadudina/bike-rental/internal/domain/bicycle"
	"github.com/nataliadudina/bike-rental/internal/domain/payment"
	"github.com/nataliadudina/bike-rental/internal/domain/rental"
	"github.com/nataliadudina/bike-rental/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within runs fn in one transaction. Returning an error rolls back every
	// write made through tx; implementations may re-run fn on serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bicycles() BicycleRepository
	Rentals() RentalRepository
	Payments() PaymentRepository
	Users() UserRepository
}

type BicycleRepository interface {
	// FindByID returns bicycle.ErrNotFound when id does not resolve.
	FindByID(ctx context.Context, id uuid.UUID) (*bicycle.Bicycle, error)
	// SetAvailability overwrites the flag unconditionally.
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*bicycle.Bicycle, error)
	// TryReserve flips the flag from true to false and reports whether it did.
	TryReserve(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, b *bicycle.Bicycle) error
	Update(ctx context.Context, b *bicycle.Bicycle) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RentalRepository interface {
	Create(ctx context.Context, r *rental.Rental) error
	// FindByID returns rental.ErrNotFound when id does not resolve.
	FindByID(ctx context.Context, id uuid.UUID) (*rental.Rental, error)
	// FindByIDForUpdate also holds the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*rental.Rental, error)
	// FindActiveByRenter returns nil, nil when the renter has no active rental.
	FindActiveByRenter(ctx context.Context, renterID uuid.UUID) (*rental.Rental, error)
	HasActiveForBicycle(ctx context.Context, bicycleID uuid.UUID) (bool, error)
	// HasOpenForRenter reports an active or awaiting_payment rental of the renter.
	HasOpenForRenter(ctx context.Context, renterID uuid.UUID) (bool, error)
	// Finalize moves an active rental to awaiting_payment; rental.ErrAlreadyClosed otherwise.
	Finalize(ctx context.Context, id uuid.UUID, endedAt time.Time, cost decimal.Decimal) (*rental.Rental, error)
	// Close moves a rental awaiting payment to closed; rental.ErrNotAwaitingPayment otherwise.
	Close(ctx context.Context, id uuid.UUID) (*rental.Rental, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	FindBySessionID(ctx context.Context, sessionID string) (*payment.Payment, error)
	// FindOpenByRental returns the newest pending or unpaid checkout, or nil, nil.
	FindOpenByRental(ctx context.Context, rentalID uuid.UUID) (*payment.Payment, error)
	UpdateStatus(ctx context.Context, p *payment.Payment) error
	ListPendingSessions(ctx context.Context, olderThan time.Time, limit int) ([]string, error)
}

type UserRepository interface {
	// Create returns user.ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	// Update returns user.ErrEmailTaken when the new email belongs to someone else.
	Update(ctx context.Context, u *user.User) error
	// Delete detaches the account's rentals and payments before removing it.
	Delete(ctx context.Context, id uuid.UUID) error
}
