package commands

import (
	"context"
	"log/slog"

	"github.com/nataliadudina/bike-rental/internal/domain/user"
	"github.com/nataliadudina/bike-rental/internal/pkg/clock"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/pkg/jwt"
	"github.com/nataliadudina/bike-rental/internal/pkg/password"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.Sentinel("invalid credentials", errs.ErrUnauthorized)
	ErrTokenValidation    = errs.Sentinel("token validation failed", errs.ErrUnauthorized)
	ErrTokenGeneration    = errs.New("token generation failed")
)

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

//go:generate mockgen -source=auth.go -destination=../../mock/commandsmock/auth.go -package=commandsmock
type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*user.User, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	hasher     *password.Hasher
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, hasher *password.Hasher, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		hasher:     hasher,
		jwtService: jwtService,
		clock:      clk,
	}
}

// Register always creates regular users; moderators are promoted out of band.
func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	name, err := user.NewFullName(in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}

	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	u := user.NewUser(email, name, hash, user.RoleUser, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		return nil, errs.Wrap(err, "register user")
	}

	slog.Info("user registered", "user_id", u.ID())
	return u, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	var found *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		found, err = tx.Users().FindByEmail(ctx, email.Value())
		return err
	})
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		if errs.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "find user")
	}

	if err := a.hasher.Compare(found.PasswordHash(), in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !found.IsActive() {
		return nil, user.ErrInactive
	}

	pair, err := a.issuePair(found.ID(), found.Role())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, found.ID(), a.clock.Now())
	})
	if err != nil {
		// Login succeeded; only the last_login bookkeeping failed
		slog.Warn("failed to update last login", "user_id", found.ID(), "error", err.Error())
	}

	return &LoginResult{
		UserID:    found.ID(),
		Role:      found.Role(),
		TokenPair: pair,
	}, nil
}

// RefreshToken trades a refresh token for a new pair. The role is re-read from
// the store so a promotion or demotion takes effect on the next refresh.
func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	var found *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		found, err = tx.Users().FindByID(ctx, claims.UserID)
		return err
	})
	if err != nil {
		if errs.Is(err, user.ErrNotFound) {
			return nil, errs.Mark(err, ErrTokenValidation)
		}
		return nil, errs.Wrap(err, "find user")
	}
	if !found.IsActive() {
		return nil, user.ErrInactive
	}

	return a.issuePair(found.ID(), found.Role())
}

func (a *authCommandsImpl) issuePair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(a.jwtService.TokenDuration().Seconds()),
	}, nil
}
