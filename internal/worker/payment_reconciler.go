// Package worker runs background jobs on a cron schedule.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/nataliadudina/bike-rental/internal/pkg/clock"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/usecase/commands"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"
)

// Sessions younger than this are still likely to be redirected back by the gateway.
const reconcileMinAge = time.Minute

// PaymentReconciler confirms checkout sessions whose success redirect never
// reached the service, so paid rentals still get closed.
type PaymentReconciler struct {
	uow       shared.UnitOfWork
	payments  commands.PaymentCommands
	clock     clock.Clock
	batchSize int
}

func NewPaymentReconciler(uow shared.UnitOfWork, payments commands.PaymentCommands, clk clock.Clock, batchSize int) *PaymentReconciler {
	if batchSize <= 0 {
		batchSize = 50
	}
	return &PaymentReconciler{
		uow:       uow,
		payments:  payments,
		clock:     clk,
		batchSize: batchSize,
	}
}

// RunOnce checks one batch of open sessions and reports how many rentals it closed.
// A failing session is logged and skipped.
func (r *PaymentReconciler) RunOnce(ctx context.Context) (int, error) {
	var sessions []string
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		sessions, err = tx.Payments().ListPendingSessions(ctx, r.clock.Now().Add(-reconcileMinAge), r.batchSize)
		return err
	})
	if err != nil {
		return 0, errs.Wrap(err, "list pending sessions")
	}

	closed := 0
	for _, sessionID := range sessions {
		if ctx.Err() != nil {
			return closed, ctx.Err()
		}
		res, err := r.payments.ConfirmSession(ctx, sessionID)
		if err != nil {
			slog.Warn("payment reconciliation failed",
				"session_id", sessionID,
				"error", err.Error())
			continue
		}
		if res.RentalClosed {
			closed++
		}
	}

	if len(sessions) > 0 {
		slog.Info("payment reconciliation finished",
			"checked", len(sessions),
			"rentals_closed", closed)
	}
	return closed, nil
}
