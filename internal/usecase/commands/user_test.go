//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/nataliadudina/bike-rental/internal/domain/rental"
	"github.com/nataliadudina/bike-rental/internal/domain/user"
	"github.com/nataliadudina/bike-rental/internal/pkg/password"
	"github.com/nataliadudina/bike-rental/internal/usecase/commands"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func (f *fixture) users() commands.UserCommands {
	return commands.NewUserCommands(f.store, password.NewHasher(bcrypt.MinCost))
}

func ownerOf(u *user.User) shared.Actor {
	return shared.Actor{UserID: u.ID(), Role: u.Role()}
}

func strPtr(s string) *string { return &s }

func TestUserCommands_Update(t *testing.T) {
	t.Run("partial update keeps the other fields", func(t *testing.T) {
		f := newFixture()
		u := f.addUser(t, "rider@example.com", user.RoleUser)

		updated, err := f.users().Update(context.Background(), u.ID(), commands.UpdateUserInput{
			LastName: strPtr("Lee"),
		}, ownerOf(u))

		require.NoError(t, err)
		assert.Equal(t, "Test", updated.Name().First())
		assert.Equal(t, "Lee", updated.Name().Last())
		assert.Equal(t, "rider@example.com", updated.Email().Value())
		assert.Equal(t, "hash", updated.PasswordHash())
	})

	t.Run("password is stored hashed", func(t *testing.T) {
		f := newFixture()
		u := f.addUser(t, "rider@example.com", user.RoleUser)
		hasher := password.NewHasher(bcrypt.MinCost)

		updated, err := f.users().Update(context.Background(), u.ID(), commands.UpdateUserInput{
			Email:    strPtr(" New@Example.com"),
			Password: strPtr("brand-new-secret"),
		}, ownerOf(u))

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", updated.Email().Value())
		assert.NoError(t, hasher.Compare(updated.PasswordHash(), "brand-new-secret"))
	})

	tests := []struct {
		name    string
		input   commands.UpdateUserInput
		actor   func(u *user.User) shared.Actor
		wantErr error
	}{
		{
			name:    "moderator cannot edit someone else",
			input:   commands.UpdateUserInput{FirstName: strPtr("X")},
			actor:   func(*user.User) shared.Actor { return shared.Actor{UserID: uuid.New(), Role: user.RoleModerator} },
			wantErr: user.ErrNotAuthorized,
		},
		{
			name:    "email belongs to another account",
			input:   commands.UpdateUserInput{Email: strPtr("taken@example.com")},
			actor:   ownerOf,
			wantErr: user.ErrEmailTaken,
		},
		{
			name:    "blank name",
			input:   commands.UpdateUserInput{FirstName: strPtr("  ")},
			actor:   ownerOf,
			wantErr: user.ErrInvalidName,
		},
		{
			name:    "short password",
			input:   commands.UpdateUserInput{Password: strPtr("short")},
			actor:   ownerOf,
			wantErr: user.ErrPasswordTooWeak,
		},
		{
			name:    "malformed email",
			input:   commands.UpdateUserInput{Email: strPtr("nope")},
			actor:   ownerOf,
			wantErr: user.ErrInvalidEmail,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			u := f.addUser(t, "rider@example.com", user.RoleUser)
			f.addUser(t, "taken@example.com", user.RoleUser)

			_, err := f.users().Update(context.Background(), u.ID(), tt.input, tt.actor(u))

			assert.ErrorIs(t, err, tt.wantErr)
			f.within(t, func(ctx context.Context, tx shared.Tx) error {
				stored, err := tx.Users().FindByID(ctx, u.ID())
				require.NoError(t, err)
				assert.Equal(t, "rider@example.com", stored.Email().Value())
				assert.Equal(t, "Test", stored.Name().First())
				return nil
			})
		})
	}
}

func TestUserCommands_Delete(t *testing.T) {
	t.Run("history survives without the renter", func(t *testing.T) {
		f := newFixture()
		u := f.addUser(t, "rider@example.com", user.RoleUser)
		bike := f.addBicycle(t, "5.00", "25.00")
		renterID, bikeID := u.ID(), bike.ID()
		ended := startTime.Add(time.Hour)
		cost := decimal.RequireFromString("5.00")
		past := rental.Reconstruct(uuid.New(), &bikeID, &renterID, rental.StatusClosed, startTime, &ended, &cost)
		f.addRental(t, past)

		require.NoError(t, f.users().Delete(context.Background(), u.ID(), ownerOf(u)))

		f.within(t, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Users().FindByID(ctx, u.ID())
			assert.ErrorIs(t, err, user.ErrNotFound)
			return nil
		})
		kept := f.rental(t, past.ID())
		assert.Nil(t, kept.RenterID())
		assert.Equal(t, rental.StatusClosed, kept.Status())
	})

	t.Run("active rental blocks deletion", func(t *testing.T) {
		f := newFixture()
		u := f.addUser(t, "rider@example.com", user.RoleUser)
		bike := f.addBicycle(t, "5.00", "25.00")
		f.addRental(t, rental.NewRental(bike.ID(), u.ID(), startTime))

		err := f.users().Delete(context.Background(), u.ID(), ownerOf(u))

		assert.ErrorIs(t, err, user.ErrHasOpenRentals)
		f.within(t, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Users().FindByID(ctx, u.ID())
			return err
		})
	})

	t.Run("only the owner", func(t *testing.T) {
		f := newFixture()
		u := f.addUser(t, "rider@example.com", user.RoleUser)

		err := f.users().Delete(context.Background(), u.ID(), shared.Actor{UserID: uuid.New(), Role: user.RoleModerator})

		assert.ErrorIs(t, err, user.ErrNotAuthorized)
	})

	t.Run("unknown account", func(t *testing.T) {
		f := newFixture()
		ghost := shared.Actor{UserID: uuid.New(), Role: user.RoleUser}

		err := f.users().Delete(context.Background(), ghost.UserID, ghost)

		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}
