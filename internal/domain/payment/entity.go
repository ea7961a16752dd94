package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Payment struct {
	id          uuid.UUID
	userID      *uuid.UUID
	rentalID    *uuid.UUID
	amount      decimal.Decimal
	method      Method
	status      Status
	sessionID   *string
	paymentLink *string
	productID   *string
	createdAt   time.Time
	paidAt      *time.Time
}

// NewTransferPayment records a pending gateway checkout for a rental.
func NewTransferPayment(rentalID, userID uuid.UUID, amount decimal.Decimal, session CheckoutSession, now time.Time) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	p := &Payment{
		id:        uuid.New(),
		userID:    &userID,
		rentalID:  &rentalID,
		amount:    amount,
		method:    MethodTransfer,
		status:    StatusPending,
		createdAt: now,
	}
	if session.SessionID != "" {
		p.sessionID = &session.SessionID
	}
	if session.URL != "" {
		p.paymentLink = &session.URL
	}
	if session.ProductID != "" {
		p.productID = &session.ProductID
	}
	return p, nil
}

// NewCashPayment records money handed over at the counter; it is paid on creation.
func NewCashPayment(rentalID uuid.UUID, userID *uuid.UUID, amount decimal.Decimal, now time.Time) (*Payment, error) {
	if amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	return &Payment{
		id:        uuid.New(),
		userID:    userID,
		rentalID:  &rentalID,
		amount:    amount,
		method:    MethodCash,
		status:    StatusPaid,
		createdAt: now,
		paidAt:    &now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	userID, rentalID *uuid.UUID,
	amount decimal.Decimal,
	method Method,
	status Status,
	sessionID, paymentLink, productID *string,
	createdAt time.Time,
	paidAt *time.Time,
) *Payment {
	return &Payment{
		id:          id,
		userID:      userID,
		rentalID:    rentalID,
		amount:      amount,
		method:      method,
		status:      status,
		sessionID:   sessionID,
		paymentLink: paymentLink,
		productID:   productID,
		createdAt:   createdAt,
		paidAt:      paidAt,
	}
}

// ApplyStatus stores the status reported by the gateway and reports whether
// anything changed. Final states are sticky.
func (p *Payment) ApplyStatus(status Status, now time.Time) (bool, error) {
	if !status.IsValid() {
		return false, ErrInvalidStatus
	}
	if p.status == status {
		return false, nil
	}
	if p.status.IsFinal() {
		return false, ErrStatusRegress
	}
	p.status = status
	if status == StatusPaid {
		p.paidAt = &now
	}
	return true, nil
}

// FlagRefund records that a paid checkout cannot settle its rental any more.
func (p *Payment) FlagRefund() error {
	if p.status != StatusPaid {
		return ErrStatusRegress
	}
	p.status = StatusRefundDue
	return nil
}

func (p *Payment) IsPaid() bool      { return p.status == StatusPaid }
func (p *Payment) IsRefundDue() bool { return p.status == StatusRefundDue }

func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) UserID() *uuid.UUID      { return p.userID }
func (p *Payment) RentalID() *uuid.UUID    { return p.rentalID }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Method() Method          { return p.method }
func (p *Payment) Status() Status          { return p.status }
func (p *Payment) SessionID() *string      { return p.sessionID }
func (p *Payment) PaymentLink() *string    { return p.paymentLink }
func (p *Payment) ProductID() *string      { return p.productID }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
func (p *Payment) PaidAt() *time.Time      { return p.paidAt }
