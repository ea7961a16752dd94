package queries

import (
	"context"

	"github.com/nataliadudina/bike-rental/internal/domain/rental"
	"github.com/nataliadudina/bike-rental/internal/infra"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/pkg/pagination"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=rental.go -destination=../../mock/queriesmock/rental.go -package=queriesmock
type RentalQueries interface {
	// GetByID is visible to the renter and to moderators.
	GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*RentalView, error)
	ListAll(ctx context.Context, actor shared.Actor, p pagination.Params) (*Page[RentalView], error)
	ListHistory(ctx context.Context, actor shared.Actor, p pagination.Params) (*Page[RentalView], error)
}

type RentalReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	List(ctx context.Context, f RentalFilter, p pagination.Params) ([]*RentalView, int64, error)
}

type rentalQueriesImpl struct {
	readStore RentalReadStore
}

func NewRentalQueries(readStore RentalReadStore) RentalQueries {
	return &rentalQueriesImpl{readStore: readStore}
}

func (q *rentalQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*RentalView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, rental.ErrNotFound
		}
		return nil, errs.Wrap(err, "get rental")
	}

	if actor.IsModerator() {
		return view, nil
	}
	if view.RenterID == nil || *view.RenterID != actor.UserID {
		return nil, rental.ErrNotAuthorized
	}
	return view, nil
}

func (q *rentalQueriesImpl) ListAll(ctx context.Context, actor shared.Actor, p pagination.Params) (*Page[RentalView], error) {
	if err := actor.RequireModerator(); err != nil {
		return nil, err
	}
	items, total, err := q.readStore.List(ctx, RentalFilter{}, p)
	if err != nil {
		return nil, errs.Wrap(err, "list rentals")
	}
	return newPage(items, p, total), nil
}

func (q *rentalQueriesImpl) ListHistory(ctx context.Context, actor shared.Actor, p pagination.Params) (*Page[RentalView], error) {
	renterID := actor.UserID
	items, total, err := q.readStore.List(ctx, RentalFilter{RenterID: &renterID}, p)
	if err != nil {
		return nil, errs.Wrap(err, "list rental history")
	}
	return newPage(items, p, total), nil
}
