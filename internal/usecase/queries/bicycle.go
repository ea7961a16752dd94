package queries

import (
	"context"

	"github.com/nataliadudina/bike-rental/internal/domain/bicycle"
	"github.com/nataliadudina/bike-rental/internal/infra"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/pkg/pagination"

	"github.com/google/uuid"
)

//go:generate mockgen -source=bicycle.go -destination=../../mock/queriesmock/bicycle.go -package=queriesmock
type BicycleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BicycleView, error)
	ListAvailable(ctx context.Context, f BicycleFilter, p pagination.Params) (*Page[BicycleView], error)
}

type BicycleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BicycleView, error)
	List(ctx context.Context, f BicycleFilter, p pagination.Params) ([]*BicycleView, int64, error)
}

type bicycleQueriesImpl struct {
	readStore BicycleReadStore
}

func NewBicycleQueries(readStore BicycleReadStore) BicycleQueries {
	return &bicycleQueriesImpl{readStore: readStore}
}

func (q *bicycleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BicycleView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, bicycle.ErrNotFound
		}
		return nil, errs.Wrap(err, "get bicycle")
	}
	return view, nil
}

func (q *bicycleQueriesImpl) ListAvailable(ctx context.Context, f BicycleFilter, p pagination.Params) (*Page[BicycleView], error) {
	if err := validateBicycleFilter(f); err != nil {
		return nil, err
	}
	f.AvailableOnly = true

	items, total, err := q.readStore.List(ctx, f, p)
	if err != nil {
		return nil, errs.Wrap(err, "list available bicycles")
	}
	return newPage(items, p, total), nil
}

func validateBicycleFilter(f BicycleFilter) error {
	if f.Condition != nil {
		if _, err := bicycle.NewCondition(*f.Condition); err != nil {
			return err
		}
	}
	if f.Type != nil {
		if _, err := bicycle.NewKind(*f.Type); err != nil {
			return err
		}
	}
	return nil
}
