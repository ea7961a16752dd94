package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/nataliadudina/bike-rental/internal/pkg/clock"
	"github.com/nataliadudina/bike-rental/internal/pkg/config"
	"github.com/nataliadudina/bike-rental/internal/usecase/commands"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"
	"github.com/nataliadudina/bike-rental/internal/worker"

	"go.uber.org/fx"
)

const reconcileRunTimeout = 2 * time.Minute

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewPaymentReconciler,
	),
	fx.Invoke(StartScheduler),
)

func NewPaymentReconciler(cfg config.Config, uow shared.UnitOfWork, payments commands.PaymentCommands, clk clock.Clock) *worker.PaymentReconciler {
	return worker.NewPaymentReconciler(uow, payments, clk, cfg.Scheduler.BatchSize)
}

func StartScheduler(lc fx.Lifecycle, cfg config.Config, reconciler *worker.PaymentReconciler) error {
	if !cfg.Scheduler.Enabled {
		slog.Info("payment reconciliation is disabled")
		return nil
	}

	scheduler, err := worker.NewScheduler(cfg.Scheduler.ReconcileSpec, reconciler, reconcileRunTimeout)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			slog.Info("payment reconciliation scheduled", "spec", cfg.Scheduler.ReconcileSpec)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Stop(ctx)
		},
	})
	return nil
}
