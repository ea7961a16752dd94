package bootstrap

import (
	"fmt"
	"time"

	"github.com/nataliadudina/bike-rental/internal/pkg/clock"
	"github.com/nataliadudina/bike-rental/internal/pkg/config"
	"github.com/nataliadudina/bike-rental/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_DURATION: %w", err)
	}
	refreshDuration, err := time.ParseDuration(cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_TOKEN_DURATION: %w", err)
	}
	return jwt.NewService(cfg.JWT.Secret, tokenDuration, refreshDuration, cfg.JWT.Issuer, clk), nil
}
