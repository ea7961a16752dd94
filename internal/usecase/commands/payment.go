package commands

import (
	"context"
	"log/slog"

	"github.com/nataliadudina/bike-rental/internal/domain/payment"
	"github.com/nataliadudina/bike-rental/internal/domain/rental"
	"github.com/nataliadudina/bike-rental/internal/pkg/clock"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type ConfirmResult struct {
	Payment      *payment.Payment
	RentalClosed bool
}

// errCheckoutRaced aborts the store step when another checkout opened while
// the gateway call was in flight.
var errCheckoutRaced = errs.New("checkout opened concurrently")

//go:generate mockgen -source=payment.go -destination=../../mock/commandsmock/payment.go -package=commandsmock
type PaymentCommands interface {
	// CreatePayment opens a gateway checkout for a returned rental, or hands
	// back the checkout that is still open (pending or unpaid) for it.
	CreatePayment(ctx context.Context, rentalID uuid.UUID, actor shared.Actor) (*payment.Payment, error)
	// ConfirmSession pulls the session status from the gateway and closes the
	// rental once it is paid. Confirming a paid session again changes nothing.
	// A session paid after its rental was settled is flagged for refund and
	// reported as payment.ErrRefundDue.
	ConfirmSession(ctx context.Context, sessionID string) (*ConfirmResult, error)
	SettleCash(ctx context.Context, rentalID uuid.UUID, actor shared.Actor) (*payment.Payment, error)
}

type paymentCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway payment.Gateway
	clock   clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, gateway payment.Gateway, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{
		uow:     uow,
		gateway: gateway,
		clock:   clk,
	}
}

func (uc *paymentCommandsImpl) CreatePayment(ctx context.Context, rentalID uuid.UUID, actor shared.Actor) (*payment.Payment, error) {
	var (
		req      payment.CheckoutRequest
		existing *payment.Payment
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := uc.payableRental(ctx, tx, rentalID, actor)
		if err != nil {
			return err
		}

		existing, err = tx.Payments().FindOpenByRental(ctx, rentalID)
		if err != nil || existing != nil {
			return err
		}

		renter, err := tx.Users().FindByID(ctx, actor.UserID)
		if err != nil {
			return err
		}
		req = payment.CheckoutRequest{
			RentalID:      r.ID(),
			Amount:        *r.Cost(),
			Description:   "Bicycle rental " + r.ID().String(),
			CustomerEmail: renter.Email().Value(),
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "create payment")
	}
	if existing != nil {
		return existing, nil
	}

	// No transaction is open across the gateway call.
	session, err := uc.gateway.CreateCheckout(ctx, req)
	if err != nil {
		slog.Error("checkout session creation failed", "rental_id", rentalID, "error", err.Error())
		return nil, errs.WithCause(payment.ErrGatewayFailure, err)
	}

	p, err := payment.NewTransferPayment(rentalID, actor.UserID, req.Amount, session, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Rentals().FindByIDForUpdate(ctx, rentalID); err != nil {
			return err
		}
		if _, err := uc.payableRental(ctx, tx, rentalID, actor); err != nil {
			return err
		}
		open, err := tx.Payments().FindOpenByRental(ctx, rentalID)
		if err != nil {
			return err
		}
		if open != nil {
			existing = open
			return errCheckoutRaced
		}
		return tx.Payments().Create(ctx, p)
	})
	if errs.Is(err, errCheckoutRaced) {
		slog.Warn("discarding checkout opened concurrently",
			"rental_id", rentalID,
			"session_id", session.SessionID,
			"kept_payment_id", existing.ID())
		return existing, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "store payment")
	}

	slog.Info("checkout session created",
		"payment_id", p.ID(),
		"rental_id", rentalID,
		"amount", p.Amount().StringFixed(2))
	return p, nil
}

func (uc *paymentCommandsImpl) payableRental(ctx context.Context, tx shared.Tx, rentalID uuid.UUID, actor shared.Actor) (*rental.Rental, error) {
	r, err := tx.Rentals().FindByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if !r.IsRentedBy(actor.UserID) {
		return nil, rental.ErrNotAuthorized
	}
	if !r.IsAwaitingPayment() {
		return nil, rental.ErrNotAwaitingPayment
	}
	if r.Cost() == nil || !r.Cost().IsPositive() {
		return nil, payment.ErrNothingToPay
	}
	return r, nil
}

func (uc *paymentCommandsImpl) ConfirmSession(ctx context.Context, sessionID string) (*ConfirmResult, error) {
	var current *payment.Payment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		current, err = tx.Payments().FindBySessionID(ctx, sessionID)
		return err
	})
	if err != nil {
		return nil, errs.Wrap(err, "confirm payment")
	}
	if current.IsPaid() {
		return &ConfirmResult{Payment: current}, nil
	}
	if current.IsRefundDue() {
		return nil, payment.ErrRefundDue
	}

	status, err := uc.gateway.SessionStatus(ctx, sessionID)
	if err != nil {
		slog.Error("checkout session lookup failed", "session_id", sessionID, "error", err.Error())
		return nil, errs.WithCause(payment.ErrGatewayFailure, err)
	}

	result := &ConfirmResult{}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Payments().FindBySessionID(ctx, sessionID)
		if err != nil {
			return err
		}
		result.Payment = p
		result.RentalClosed = false

		changed, err := p.ApplyStatus(status, uc.clock.Now())
		if err != nil || !changed {
			return err
		}
		if err := tx.Payments().UpdateStatus(ctx, p); err != nil {
			return err
		}
		if !p.IsPaid() || p.RentalID() == nil {
			return nil
		}

		_, err = tx.Rentals().Close(ctx, *p.RentalID())
		switch {
		case err == nil:
			result.RentalClosed = true
			return nil
		case errs.Is(err, rental.ErrNotAwaitingPayment):
			// The rental was settled by another payment; this money goes back.
			if err := p.FlagRefund(); err != nil {
				return err
			}
			return tx.Payments().UpdateStatus(ctx, p)
		case errs.Is(err, rental.ErrNotFound):
			slog.Warn("paid session for a rental that no longer exists",
				"session_id", sessionID,
				"rental_id", *p.RentalID())
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, errs.Wrap(err, "confirm payment")
	}
	if result.Payment.IsRefundDue() {
		slog.Error("checkout paid for an already settled rental, refund required",
			"session_id", sessionID,
			"payment_id", result.Payment.ID(),
			"rental_id", *result.Payment.RentalID(),
			"amount", result.Payment.Amount().StringFixed(2))
		return nil, payment.ErrRefundDue
	}

	slog.Info("payment session confirmed",
		"session_id", sessionID,
		"status", result.Payment.Status().String(),
		"rental_closed", result.RentalClosed)
	return result, nil
}

func (uc *paymentCommandsImpl) SettleCash(ctx context.Context, rentalID uuid.UUID, actor shared.Actor) (*payment.Payment, error) {
	if err := actor.RequireModerator(); err != nil {
		return nil, err
	}

	var settled *payment.Payment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rentals().FindByIDForUpdate(ctx, rentalID)
		if err != nil {
			return err
		}
		if !r.IsAwaitingPayment() || r.Cost() == nil {
			return rental.ErrNotAwaitingPayment
		}

		p, err := payment.NewCashPayment(r.ID(), r.RenterID(), *r.Cost(), uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Payments().Create(ctx, p); err != nil {
			return err
		}
		if _, err := tx.Rentals().Close(ctx, r.ID()); err != nil {
			return err
		}
		settled = p
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "settle cash payment")
	}

	slog.Info("cash payment recorded",
		"payment_id", settled.ID(),
		"rental_id", rentalID,
		"moderator_id", actor.UserID)
	return settled, nil
}
