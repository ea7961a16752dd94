package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/nataliadudina/bike-rental/internal/domain/bicycle"
	"github.com/nataliadudina/bike-rental/internal/domain/rental"
	"github.com/nataliadudina/bike-rental/internal/pkg/clock"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReserveResult struct {
	Rental     *rental.Rental
	IsReplayed bool
}

//go:generate mockgen -source=rental.go -destination=../../mock/commandsmock/rental.go -package=commandsmock
type RentalCommands interface {
	// Reserve hands a bicycle to the actor. A non-empty idempotencyKey makes
	// retries of the same request return the rental created the first time.
	Reserve(ctx context.Context, bicycleID uuid.UUID, actor shared.Actor, idempotencyKey string) (*ReserveResult, error)
	ReturnBike(ctx context.Context, rentalID uuid.UUID, actor shared.Actor) (*rental.Rental, error)
}

type RentalOptions struct {
	CostTimeout time.Duration
}

type rentalCommandsImpl struct {
	uow         shared.UnitOfWork
	costs       rental.CostComputer
	idempotency shared.IdempotencyStore
	clock       clock.Clock
	costTimeout time.Duration
}

func NewRentalCommands(
	uow shared.UnitOfWork,
	costs rental.CostComputer,
	idempotency shared.IdempotencyStore,
	clk clock.Clock,
	opts RentalOptions,
) RentalCommands {
	return &rentalCommandsImpl{
		uow:         uow,
		costs:       costs,
		idempotency: idempotency,
		clock:       clk,
		costTimeout: opts.CostTimeout,
	}
}

func (uc *rentalCommandsImpl) Reserve(
	ctx context.Context,
	bicycleID uuid.UUID,
	actor shared.Actor,
	idempotencyKey string,
) (*ReserveResult, error) {
	if idempotencyKey == "" || uc.idempotency == nil {
		created, err := uc.reserve(ctx, bicycleID, actor.UserID)
		if err != nil {
			return nil, err
		}
		return &ReserveResult{Rental: created}, nil
	}

	key := actor.UserID.String() + ":" + idempotencyKey
	fingerprint := reserveFingerprint(bicycleID, actor.UserID)

	existingID, err := uc.idempotency.Begin(ctx, key, fingerprint)
	if err != nil {
		return nil, err
	}
	if existingID != nil {
		replayed, err := uc.findRental(ctx, *existingID)
		if err != nil {
			return nil, err
		}
		return &ReserveResult{Rental: replayed, IsReplayed: true}, nil
	}

	created, err := uc.reserve(ctx, bicycleID, actor.UserID)
	if err != nil {
		if releaseErr := uc.idempotency.Release(ctx, key); releaseErr != nil {
			slog.Warn("failed to release idempotency key", "key", key, "error", releaseErr.Error())
		}
		return nil, err
	}

	if err := uc.idempotency.Complete(ctx, key, fingerprint, created.ID()); err != nil {
		// The rental is already committed.
		slog.Warn("failed to complete idempotency key", "key", key, "rental_id", created.ID(), "error", err.Error())
	}
	return &ReserveResult{Rental: created}, nil
}

func (uc *rentalCommandsImpl) reserve(ctx context.Context, bicycleID, renterID uuid.UUID) (*rental.Rental, error) {
	var created *rental.Rental
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bike, err := tx.Bicycles().FindByID(ctx, bicycleID)
		if err != nil {
			return err
		}
		if !bike.IsAvailable() {
			return bicycle.ErrUnavailable
		}

		active, err := tx.Rentals().FindActiveByRenter(ctx, renterID)
		if err != nil {
			return err
		}
		if active != nil {
			return rental.ErrRenterHasActiveRental
		}

		// Another transaction may have taken the bicycle since the read above.
		reserved, err := tx.Bicycles().TryReserve(ctx, bicycleID)
		if err != nil {
			return err
		}
		if !reserved {
			return bicycle.ErrUnavailable
		}

		r := rental.NewRental(bicycleID, renterID, uc.clock.Now())
		if err := tx.Rentals().Create(ctx, r); err != nil {
			return err
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "reserve bicycle")
	}

	slog.Info("bicycle reserved",
		"rental_id", created.ID(),
		"bicycle_id", bicycleID,
		"renter_id", renterID)
	return created, nil
}

func (uc *rentalCommandsImpl) ReturnBike(ctx context.Context, rentalID uuid.UUID, actor shared.Actor) (*rental.Rental, error) {
	var finalized *rental.Rental
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rentals().FindByIDForUpdate(ctx, rentalID)
		if err != nil {
			return err
		}
		if err := r.CheckReturnable(actor.UserID); err != nil {
			return err
		}

		bike, err := tx.Bicycles().FindByID(ctx, *r.BicycleID())
		if err != nil {
			if errs.Is(err, bicycle.ErrNotFound) {
				return rental.ErrBikeMissing
			}
			return err
		}

		endedAt := uc.clock.Now()
		cost, err := uc.computeCost(ctx, rental.Quote{
			RentalID:   r.ID().String(),
			Start:      r.StartedAt(),
			End:        endedAt,
			HourlyRate: bike.Rates().Hourly(),
			DailyRate:  bike.Rates().Daily(),
		})
		if err != nil {
			return err
		}

		if err := r.Finalize(endedAt, cost); err != nil {
			return err
		}
		finalized, err = tx.Rentals().Finalize(ctx, r.ID(), endedAt, *r.Cost())
		if err != nil {
			return err
		}

		_, err = tx.Bicycles().SetAvailability(ctx, bike.ID(), true)
		return err
	})
	if err != nil {
		return nil, errs.Wrap(err, "return bicycle")
	}

	slog.Info("bicycle returned",
		"rental_id", finalized.ID(),
		"renter_id", actor.UserID,
		"cost", finalized.Cost().StringFixed(2))
	return finalized, nil
}

// computeCost waits at most costTimeout for the computer, even one that ignores its context.
func (uc *rentalCommandsImpl) computeCost(ctx context.Context, q rental.Quote) (decimal.Decimal, error) {
	if uc.costTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.costTimeout)
		defer cancel()
	}

	type outcome struct {
		cost decimal.Decimal
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		cost, err := uc.costs.Compute(ctx, q)
		done <- outcome{cost: cost, err: err}
	}()

	var res outcome
	select {
	case res = <-done:
	case <-ctx.Done():
		res = outcome{err: ctx.Err()}
	}

	if res.err == nil {
		return res.cost, nil
	}
	if errs.CategoryOf(res.err) == errs.CategoryValidation {
		return decimal.Zero, res.err
	}
	slog.Error("rental cost computation failed", "rental_id", q.RentalID, "error", res.err.Error())
	return decimal.Zero, errs.WithCause(rental.ErrCostUnavailable, res.err)
}

func (uc *rentalCommandsImpl) findRental(ctx context.Context, id uuid.UUID) (*rental.Rental, error) {
	var found *rental.Rental
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		found, err = tx.Rentals().FindByID(ctx, id)
		return err
	})
	return found, err
}

func reserveFingerprint(bicycleID, renterID uuid.UUID) string {
	hash := sha256.Sum256([]byte("POST /rent/" + bicycleID.String() + "|" + renterID.String()))
	return hex.EncodeToString(hash[:])
}
