package repository

import (
	"context"
	"time"

	"github.com/nataliadudina/bike-rental/internal/domain/user"
	"github.com/nataliadudina/bike-rental/internal/infra"
	"github.com/nataliadudina/bike-rental/internal/infra/query"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserQueries interface {
	InsertUser(ctx context.Context, db query.DBTX, arg query.InsertUserParams) error
	GetUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.User, error)
	GetUserByEmail(ctx context.Context, db query.DBTX, email string) (query.User, error)
	UpdateUserLastLogin(ctx context.Context, db query.DBTX, id uuid.UUID, at pgtype.Timestamptz) (int64, error)
	UpdateUser(ctx context.Context, db query.DBTX, arg query.UpdateUserParams) (int64, error)
	DeleteUser(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type UserRepository struct {
	queries UserQueries
	db      query.DBTX
}

func NewUserRepository(queries UserQueries, db query.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	err := r.queries.InsertUser(ctx, r.db, query.InsertUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		FirstName:    u.Name().First(),
		LastName:     u.Name().Last(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	})
	if err != nil {
		if _, dup := pgconv.UniqueViolation(err); dup {
			return errs.WithCause(user.ErrEmailTaken, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey))
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	return decodeUser(row, err)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	return decodeUser(row, err)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	n, err := r.queries.UpdateUserLastLogin(ctx, r.db, id, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

// Update writes the editable profile fields; a duplicate email yields user.ErrEmailTaken.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	n, err := r.queries.UpdateUser(ctx, r.db, query.UpdateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		FirstName:    u.Name().First(),
		LastName:     u.Name().Last(),
		PasswordHash: u.PasswordHash(),
	})
	if err != nil {
		if _, dup := pgconv.UniqueViolation(err); dup {
			return errs.WithCause(user.ErrEmailTaken, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey))
		}
		return infra.WrapRepoErr("failed to update user", err)
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteUser(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func decodeUser(row query.User, err error) (*user.User, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.WithCause(user.ErrNotFound, infra.WrapRepoErr("user not found", err, infra.KindNotFound))
		}
		return nil, infra.WrapRepoErr("failed to load user", err)
	}
	u, err := toUser(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode user", err)
	}
	return u, nil
}
