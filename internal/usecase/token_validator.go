package usecase

import (
	"github.com/nataliadudina/bike-rental/internal/domain/user"
	"github.com/nataliadudina/bike-rental/internal/pkg/jwt"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"
)

// TokenValidator turns a bearer token into the actor that presented it.
type TokenValidator interface {
	Authenticate(token string) (shared.Actor, error)
}

type jwtTokenValidator struct {
	tokens *jwt.Service
}

func NewTokenValidator(tokens *jwt.Service) TokenValidator {
	return &jwtTokenValidator{tokens: tokens}
}

func (v *jwtTokenValidator) Authenticate(token string) (shared.Actor, error) {
	claims, err := v.tokens.ValidateToken(token)
	if err != nil {
		return shared.Actor{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return shared.Actor{}, jwt.ErrInvalidToken
	}

	// Claims with an unknown role are rejected.
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, err
	}

	return shared.Actor{UserID: claims.UserID, Role: role}, nil
}
