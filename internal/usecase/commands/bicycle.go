package commands

import (
	"context"
	"log/slog"

	"github.com/nataliadudina/bike-rental/internal/domain/bicycle"
	"github.com/nataliadudina/bike-rental/internal/pkg/clock"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=bicycle.go -destination=../../mock/commandsmock/bicycle.go -package=commandsmock
type BicycleCommands interface {
	Create(ctx context.Context, spec bicycle.Spec, actor shared.Actor) (*bicycle.Bicycle, error)
	Update(ctx context.Context, id uuid.UUID, spec bicycle.Spec, actor shared.Actor) (*bicycle.Bicycle, error)
	// Delete refuses bicycles that are out on an active rental.
	Delete(ctx context.Context, id uuid.UUID, actor shared.Actor) error
}

type bicycleCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBicycleCommands(uow shared.UnitOfWork, clk clock.Clock) BicycleCommands {
	return &bicycleCommandsImpl{uow: uow, clock: clk}
}

func (uc *bicycleCommandsImpl) Create(ctx context.Context, spec bicycle.Spec, actor shared.Actor) (*bicycle.Bicycle, error) {
	if err := actor.RequireModerator(); err != nil {
		return nil, err
	}
	b, err := bicycle.NewBicycle(spec, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bicycles().Create(ctx, b)
	})
	if err != nil {
		return nil, errs.Wrap(err, "create bicycle")
	}

	slog.Info("bicycle added to catalog", "bicycle_id", b.ID(), "moderator_id", actor.UserID)
	return b, nil
}

func (uc *bicycleCommandsImpl) Update(ctx context.Context, id uuid.UUID, spec bicycle.Spec, actor shared.Actor) (*bicycle.Bicycle, error) {
	if err := actor.RequireModerator(); err != nil {
		return nil, err
	}

	var updated *bicycle.Bicycle
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bicycles().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := b.Revise(spec, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Bicycles().Update(ctx, b); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "update bicycle")
	}
	return updated, nil
}

func (uc *bicycleCommandsImpl) Delete(ctx context.Context, id uuid.UUID, actor shared.Actor) error {
	if err := actor.RequireModerator(); err != nil {
		return err
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Bicycles().FindByID(ctx, id); err != nil {
			return err
		}
		rented, err := tx.Rentals().HasActiveForBicycle(ctx, id)
		if err != nil {
			return err
		}
		if rented {
			return bicycle.ErrInUse
		}
		return tx.Bicycles().Delete(ctx, id)
	})
	if err != nil {
		return errs.Wrap(err, "delete bicycle")
	}

	slog.Info("bicycle removed from catalog", "bicycle_id", id, "moderator_id", actor.UserID)
	return nil
}
