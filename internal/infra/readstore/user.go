package readstore

import (
	"context"

	"github.com/nataliadudina/bike-rental/internal/infra"
	"github.com/nataliadudina/bike-rental/internal/infra/query"
	"github.com/nataliadudina/bike-rental/internal/pkg/pagination"
	"github.com/nataliadudina/bike-rental/internal/pkg/pgconv"
	"github.com/nataliadudina/bike-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.User, error)
	ListUsers(ctx context.Context, db query.DBTX, limit, offset int32) ([]query.User, error)
	CountUsers(ctx context.Context, db query.DBTX) (int64, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      query.DBTX
}

func NewUserReadStore(queries UserReadQueries, db query.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := s.queries.GetUserByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return userView(row), nil
}

func (s *UserReadStore) List(ctx context.Context, p pagination.Params) ([]*queries.UserView, int64, error) {
	total, err := s.queries.CountUsers(ctx, s.db)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count users", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	rows, err := s.queries.ListUsers(ctx, s.db, int32(p.Limit()), int32(p.Offset()))
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list users", err)
	}

	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, userView(row))
	}
	return views, total, nil
}

func userView(row query.User) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Role:      row.Role,
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
