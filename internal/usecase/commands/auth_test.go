//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/nataliadudina/bike-rental/internal/domain/user"
	"github.com/nataliadudina/bike-rental/internal/pkg/jwt"
	"github.com/nataliadudina/bike-rental/internal/pkg/password"
	"github.com/nataliadudina/bike-rental/internal/usecase/commands"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func (f *fixture) auth() (commands.AuthCommands, *jwt.Service) {
	tokens := jwt.NewService("test-secret-key-with-enough-length", 15*time.Minute, 24*time.Hour, "bike-rental-test", f.clock)
	return commands.NewAuthCommands(f.store, password.NewHasher(bcrypt.MinCost), tokens, f.clock), tokens
}

func TestRegister(t *testing.T) {
	t.Run("stores a regular user with a hashed password", func(t *testing.T) {
		f := newFixture()
		uc, _ := f.auth()

		u, err := uc.Register(context.Background(), commands.RegisterInput{
			Email:     "  Rider@Example.com ",
			Password:  "long-enough",
			FirstName: "Ann",
			LastName:  "Lee",
		})

		require.NoError(t, err)
		assert.Equal(t, "rider@example.com", u.Email().Value())
		assert.Equal(t, user.RoleUser, u.Role())
		assert.NotEqual(t, "long-enough", u.PasswordHash())
		assert.True(t, u.IsActive())
	})

	tests := []struct {
		name    string
		input   commands.RegisterInput
		wantErr error
	}{
		{
			name:    "bad email",
			input:   commands.RegisterInput{Email: "nope", Password: "long-enough", FirstName: "A", LastName: "B"},
			wantErr: user.ErrInvalidEmail,
		},
		{
			name:    "short password",
			input:   commands.RegisterInput{Email: "a@example.com", Password: "short", FirstName: "A", LastName: "B"},
			wantErr: user.ErrPasswordTooWeak,
		},
		{
			name:    "missing name",
			input:   commands.RegisterInput{Email: "a@example.com", Password: "long-enough", FirstName: " ", LastName: "B"},
			wantErr: user.ErrInvalidName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newFixture().auth()

			_, err := uc.Register(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("email taken", func(t *testing.T) {
		f := newFixture()
		uc, _ := f.auth()
		in := commands.RegisterInput{Email: "a@example.com", Password: "long-enough", FirstName: "A", LastName: "B"}
		_, err := uc.Register(context.Background(), in)
		require.NoError(t, err)

		in.Email = "A@EXAMPLE.COM"
		_, err = uc.Register(context.Background(), in)

		assert.ErrorIs(t, err, user.ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	register := func(t *testing.T, f *fixture) *user.User {
		t.Helper()
		uc, _ := f.auth()
		u, err := uc.Register(context.Background(), commands.RegisterInput{
			Email: "rider@example.com", Password: "long-enough", FirstName: "Ann", LastName: "Lee",
		})
		require.NoError(t, err)
		return u
	}

	t.Run("issues a token and records the login", func(t *testing.T) {
		f := newFixture()
		u := register(t, f)
		uc, tokens := f.auth()
		f.clock.Add(time.Hour)

		res, err := uc.Login(context.Background(), commands.LoginInput{Email: "rider@example.com", Password: "long-enough"})

		require.NoError(t, err)
		assert.Equal(t, u.ID(), res.UserID)
		assert.Equal(t, int64(900), res.TokenPair.ExpiresIn)
		assert.NotEmpty(t, res.TokenPair.RefreshToken)
		claims, err := tokens.ValidateToken(res.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, u.ID(), claims.UserID)

		f.within(t, func(ctx context.Context, tx shared.Tx) error {
			stored, err := tx.Users().FindByID(ctx, u.ID())
			require.NoError(t, err)
			require.NotNil(t, stored.LastLogin())
			assert.Equal(t, startTime.Add(time.Hour), *stored.LastLogin())
			return nil
		})
	})

	tests := []struct {
		name  string
		input commands.LoginInput
	}{
		{name: "wrong password", input: commands.LoginInput{Email: "rider@example.com", Password: "not-the-one"}},
		{name: "unknown email", input: commands.LoginInput{Email: "ghost@example.com", Password: "long-enough"}},
		{name: "malformed email", input: commands.LoginInput{Email: "ghost", Password: "long-enough"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			register(t, f)
			uc, _ := f.auth()

			_, err := uc.Login(context.Background(), tt.input)

			assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
		})
	}
}

func TestRefreshToken(t *testing.T) {
	login := func(t *testing.T, f *fixture, uc commands.AuthCommands) *commands.LoginResult {
		t.Helper()
		_, err := uc.Register(context.Background(), commands.RegisterInput{
			Email: "rider@example.com", Password: "long-enough", FirstName: "Ann", LastName: "Lee",
		})
		require.NoError(t, err)
		res, err := uc.Login(context.Background(), commands.LoginInput{Email: "rider@example.com", Password: "long-enough"})
		require.NoError(t, err)
		return res
	}

	t.Run("issues a new pair after the access token expired", func(t *testing.T) {
		f := newFixture()
		uc, tokens := f.auth()
		res := login(t, f, uc)
		f.clock.Add(time.Hour)

		pair, err := uc.RefreshToken(context.Background(), res.TokenPair.RefreshToken)

		require.NoError(t, err)
		assert.NotEqual(t, res.TokenPair.RefreshToken, pair.RefreshToken)
		claims, err := tokens.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, res.UserID, claims.UserID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("access token is not accepted", func(t *testing.T) {
		f := newFixture()
		uc, _ := f.auth()
		res := login(t, f, uc)

		_, err := uc.RefreshToken(context.Background(), res.TokenPair.AccessToken)

		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("expired refresh token", func(t *testing.T) {
		f := newFixture()
		uc, _ := f.auth()
		res := login(t, f, uc)
		f.clock.Add(25 * time.Hour)

		_, err := uc.RefreshToken(context.Background(), res.TokenPair.RefreshToken)

		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture()
		uc, tokens := f.auth()
		refresh, err := tokens.GenerateRefreshToken(uuid.New(), user.RoleUser)
		require.NoError(t, err)

		_, err = uc.RefreshToken(context.Background(), refresh)

		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("deactivated user", func(t *testing.T) {
		f := newFixture()
		uc, tokens := f.auth()
		email, err := user.NewEmail("gone@example.com")
		require.NoError(t, err)
		name, err := user.NewFullName("Gone", "Rider")
		require.NoError(t, err)
		inactive := user.Reconstruct(uuid.New(), email, name, "hash", user.RoleUser, nil, false, startTime)
		f.within(t, func(ctx context.Context, tx shared.Tx) error {
			return tx.Users().Create(ctx, inactive)
		})
		refresh, err := tokens.GenerateRefreshToken(inactive.ID(), user.RoleUser)
		require.NoError(t, err)

		_, err = uc.RefreshToken(context.Background(), refresh)

		assert.ErrorIs(t, err, user.ErrInactive)
	})
}
