package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutRequest struct {
	RentalID      uuid.UUID
	Amount        decimal.Decimal
	Description   string
	CustomerEmail string
}

type CheckoutSession struct {
	SessionID string
	URL       string
	ProductID string
}

// Gateway turns a rental cost into a payable session and reports its outcome.
//
//go:generate mockgen -source=gateway.go -destination=../../mock/paymentmock/gateway.go -package=paymentmock
type Gateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
	SessionStatus(ctx context.Context, sessionID string) (Status, error)
}
