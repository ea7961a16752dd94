package response

import (
	"time"

	"github.com/nataliadudina/bike-rental/internal/domain/payment"
	"github.com/nataliadudina/bike-rental/internal/usecase/commands"
	"github.com/nataliadudina/bike-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	RentalID    *uuid.UUID `json:"rental_id,omitempty"`
	Amount      string     `json:"amount"`
	Method      string     `json:"method"`
	Status      string     `json:"status"`
	SessionID   *string    `json:"session_id,omitempty"`
	PaymentLink *string    `json:"payment_link,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

func FromPayment(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:          p.ID(),
		UserID:      p.UserID(),
		RentalID:    p.RentalID(),
		Amount:      money(p.Amount()),
		Method:      p.Method().String(),
		Status:      p.Status().String(),
		SessionID:   p.SessionID(),
		PaymentLink: p.PaymentLink(),
		CreatedAt:   p.CreatedAt(),
		PaidAt:      p.PaidAt(),
	}
}

func FromPaymentPage(page *queries.Page[queries.PaymentView]) (*ListResponse[PaymentResponse], error) {
	items, err := convertAll[PaymentResponse](page.Items)
	if err != nil {
		return nil, err
	}
	return &ListResponse[PaymentResponse]{Items: items, Meta: page.Meta}, nil
}

type PaymentStatusResponse struct {
	SessionID    string `json:"session_id"`
	Status       string `json:"status"`
	RentalClosed bool   `json:"rental_closed"`
}

func FromConfirmResult(sessionID string, r *commands.ConfirmResult) *PaymentStatusResponse {
	return &PaymentStatusResponse{
		SessionID:    sessionID,
		Status:       r.Payment.Status().String(),
		RentalClosed: r.RentalClosed,
	}
}
