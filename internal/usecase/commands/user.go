package commands

import (
	"context"
	"log/slog"

	"github.com/nataliadudina/bike-rental/internal/domain/user"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/pkg/password"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

// UpdateUserInput leaves nil fields untouched.
type UpdateUserInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	Password  *string
}

//go:generate mockgen -source=user.go -destination=../../mock/commandsmock/user.go -package=commandsmock
type UserCommands interface {
	// Update and Delete act on the caller's own account only.
	Update(ctx context.Context, id uuid.UUID, in UpdateUserInput, actor shared.Actor) (*user.User, error)
	// Delete refuses while the account has an active or unpaid rental.
	Delete(ctx context.Context, id uuid.UUID, actor shared.Actor) error
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher *password.Hasher
}

func NewUserCommands(uow shared.UnitOfWork, hasher *password.Hasher) UserCommands {
	return &userCommandsImpl{uow: uow, hasher: hasher}
}

func (uc *userCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput, actor shared.Actor) (*user.User, error) {
	if actor.UserID != id {
		return nil, user.ErrNotAuthorized
	}

	var email *user.Email
	if in.Email != nil {
		e, err := user.NewEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		email = &e
	}

	// Hashing is slow; keep it out of the transaction.
	var hash string
	if in.Password != nil {
		pw, err := user.NewPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		hash, err = uc.hasher.Hash(pw.Value())
		if err != nil {
			return nil, errs.Wrap(err, "hash password")
		}
	}

	var updated *user.User
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if in.FirstName != nil || in.LastName != nil {
			first, last := u.Name().First(), u.Name().Last()
			if in.FirstName != nil {
				first = *in.FirstName
			}
			if in.LastName != nil {
				last = *in.LastName
			}
			name, err := user.NewFullName(first, last)
			if err != nil {
				return err
			}
			u.Rename(name)
		}
		if email != nil {
			u.ChangeEmail(*email)
		}
		if hash != "" {
			u.ChangePasswordHash(hash)
		}

		if err := tx.Users().Update(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "update user")
	}

	slog.Info("user profile updated", "user_id", id, "password_changed", hash != "")
	return updated, nil
}

func (uc *userCommandsImpl) Delete(ctx context.Context, id uuid.UUID, actor shared.Actor) error {
	if actor.UserID != id {
		return user.ErrNotAuthorized
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		open, err := tx.Rentals().HasOpenForRenter(ctx, id)
		if err != nil {
			return err
		}
		if open {
			return user.ErrHasOpenRentals
		}
		return tx.Users().Delete(ctx, id)
	})
	if err != nil {
		return errs.Wrap(err, "delete user")
	}

	slog.Info("user deleted", "user_id", id)
	return nil
}
