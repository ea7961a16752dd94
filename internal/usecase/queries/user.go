package queries

import (
	"context"

	"github.com/nataliadudina/bike-rental/internal/domain/user"
	"github.com/nataliadudina/bike-rental/internal/infra"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/pkg/pagination"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../mock/queriesmock/user.go -package=queriesmock
type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	// GetByID is visible to the account owner and to moderators.
	GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*UserView, error)
	List(ctx context.Context, actor shared.Actor, p pagination.Params) (*Page[UserView], error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context, p pagination.Params) ([]*UserView, int64, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	view, err := q.find(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !view.IsActive {
		return nil, user.ErrInactive
	}

	return view, nil
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*UserView, error) {
	if id != actor.UserID && !actor.IsModerator() {
		return nil, user.ErrNotAuthorized
	}
	return q.find(ctx, id)
}

func (q *userQueriesImpl) List(ctx context.Context, actor shared.Actor, p pagination.Params) (*Page[UserView], error) {
	if err := actor.RequireModerator(); err != nil {
		return nil, err
	}
	items, total, err := q.readStore.List(ctx, p)
	if err != nil {
		return nil, errs.Wrap(err, "list users")
	}
	return newPage(items, p, total), nil
}

func (q *userQueriesImpl) find(ctx context.Context, id uuid.UUID) (*UserView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return view, nil
}
