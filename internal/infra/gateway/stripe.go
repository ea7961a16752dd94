// Package gateway adapts hosted checkout providers to payment.Gateway.
package gateway

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nataliadudina/bike-rental/internal/domain/payment"
	"github.com/nataliadudina/bike-rental/internal/pkg/config"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const checkoutSessionPlaceholder = "{CHECKOUT_SESSION_ID}"

type StripeGateway struct {
	api        *client.API
	currency   string
	successURL string
	cancelURL  string
}

// NewStripeGateway builds a client bound to cfg's secret key. Redirect URLs
// are resolved against baseURL.
func NewStripeGateway(cfg config.PaymentConfig, baseURL string) *StripeGateway {
	return newStripeGateway(cfg, baseURL, client.New(cfg.StripeSecretKey, nil))
}

func newStripeGateway(cfg config.PaymentConfig, baseURL string, api *client.API) *StripeGateway {
	base := strings.TrimRight(baseURL, "/")
	return &StripeGateway{
		api:        api,
		currency:   strings.ToLower(cfg.Currency),
		successURL: base + cfg.SuccessPath + "?session_id=" + checkoutSessionPlaceholder,
		cancelURL:  base + cfg.CancelPath,
	}
}

var _ payment.Gateway = (*StripeGateway)(nil)

// CreateCheckout registers a one-off product and price for the rental and
// opens a card checkout session for it.
func (g *StripeGateway) CreateCheckout(ctx context.Context, req payment.CheckoutRequest) (payment.CheckoutSession, error) {
	cents := req.Amount.Round(2).Shift(2).IntPart()
	if cents <= 0 {
		return payment.CheckoutSession{}, payment.ErrInvalidAmount
	}

	product, err := g.api.Products.New(&stripe.ProductParams{
		Params: stripe.Params{Context: ctx},
		Name:   stripe.String(req.Description),
		Metadata: map[string]string{
			"rental_id": req.RentalID.String(),
		},
	})
	if err != nil {
		return payment.CheckoutSession{}, gatewayErr("create product", err)
	}

	price, err := g.api.Prices.New(&stripe.PriceParams{
		Params:     stripe.Params{Context: ctx},
		Currency:   stripe.String(g.currency),
		Product:    stripe.String(product.ID),
		UnitAmount: stripe.Int64(cents),
	})
	if err != nil {
		return payment.CheckoutSession{}, gatewayErr("create price", err)
	}

	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Price:    stripe.String(price.ID),
			Quantity: stripe.Int64(1),
		}},
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(g.successURL),
		CancelURL:         stripe.String(g.cancelURL),
		ClientReferenceID: stripe.String(req.RentalID.String()),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return payment.CheckoutSession{}, gatewayErr("create checkout session", err)
	}

	slog.Info("checkout session created",
		"rental_id", req.RentalID.String(),
		"session_id", session.ID,
		"amount_cents", cents)

	return payment.CheckoutSession{
		SessionID: session.ID,
		URL:       session.URL,
		ProductID: product.ID,
	}, nil
}

func (g *StripeGateway) SessionStatus(ctx context.Context, sessionID string) (payment.Status, error) {
	session, err := g.api.CheckoutSessions.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return "", gatewayErr("retrieve checkout session", err)
	}
	return sessionStatus(session), nil
}

func sessionStatus(s *stripe.CheckoutSession) payment.Status {
	switch {
	case s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		s.PaymentStatus == stripe.CheckoutSessionPaymentStatusNoPaymentRequired:
		return payment.StatusPaid
	case s.Status == stripe.CheckoutSessionStatusExpired:
		return payment.StatusExpired
	case s.Status == stripe.CheckoutSessionStatusOpen:
		return payment.StatusPending
	default:
		// Completed but unpaid: an asynchronous method is still settling.
		return payment.StatusUnpaid
	}
}

func gatewayErr(op string, err error) error {
	var stripeErr *stripe.Error
	if errs.As(err, &stripeErr) {
		slog.Error("stripe request failed",
			"op", op,
			"type", string(stripeErr.Type),
			"code", string(stripeErr.Code),
			"status", stripeErr.HTTPStatusCode,
			"request_id", stripeErr.RequestID)
	} else {
		slog.Error("stripe request failed", "op", op, "error", err.Error())
	}
	return errs.WithCause(payment.ErrGatewayFailure, errs.Wrap(err, op))
}
