package gateway

import (
	"context"

	"github.com/nataliadudina/bike-rental/internal/domain/payment"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
)

var errNotConfigured = errs.New("payment gateway is not configured")

// Unconfigured stands in when no provider key is set. Cash settlement keeps
// working; every gateway call fails as an upstream error.
type Unconfigured struct{}

var _ payment.Gateway = Unconfigured{}

func (Unconfigured) CreateCheckout(context.Context, payment.CheckoutRequest) (payment.CheckoutSession, error) {
	return payment.CheckoutSession{}, errs.WithCause(payment.ErrGatewayFailure, errNotConfigured)
}

func (Unconfigured) SessionStatus(context.Context, string) (payment.Status, error) {
	return "", errs.WithCause(payment.ErrGatewayFailure, errNotConfigured)
}
