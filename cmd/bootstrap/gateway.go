package bootstrap

import (
	"log/slog"

	"github.com/nataliadudina/bike-rental/internal/domain/payment"
	"github.com/nataliadudina/bike-rental/internal/infra/gateway"
	"github.com/nataliadudina/bike-rental/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewPaymentGateway,
	),
)

func NewPaymentGateway(cfg config.Config) payment.Gateway {
	if cfg.Payment.StripeSecretKey == "" {
		slog.Warn("STRIPE_SECRET_KEY is not set; only cash settlement is available")
		return gateway.Unconfigured{}
	}
	return gateway.NewStripeGateway(cfg.Payment, cfg.Server.BaseURL)
}
