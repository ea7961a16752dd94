package bootstrap

import (
	"context"
	"log/slog"

	"github.com/nataliadudina/bike-rental/internal/infra/db"
	"github.com/nataliadudina/bike-rental/internal/infra/memstore"
	"github.com/nataliadudina/bike-rental/internal/infra/query"
	"github.com/nataliadudina/bike-rental/internal/infra/readstore"
	"github.com/nataliadudina/bike-rental/internal/infra/uow"
	"github.com/nataliadudina/bike-rental/internal/pkg/clock"
	"github.com/nataliadudina/bike-rental/internal/pkg/config"
	"github.com/nataliadudina/bike-rental/internal/usecase/queries"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewPersistence,
	),
)

// Persistence is the write and read side of whichever storage driver is configured.
type Persistence struct {
	fx.Out

	UoW      shared.UnitOfWork
	Bicycles queries.BicycleReadStore
	Rentals  queries.RentalReadStore
	Payments queries.PaymentReadStore
	Users    queries.UserReadStore
}

func NewPersistence(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (Persistence, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		slog.Warn("using in-memory storage; data is lost on restart")
		store := memstore.New(clk)
		return Persistence{
			UoW:      store,
			Bicycles: memstore.NewBicycleReadStore(store),
			Rentals:  memstore.NewRentalReadStore(store),
			Payments: memstore.NewPaymentReadStore(store),
			Users:    memstore.NewUserReadStore(store),
		}, nil
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return Persistence{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	q := query.New()
	return Persistence{
		UoW:      uow.NewPostgresUoW(pool, q, clk),
		Bicycles: readstore.NewBicycleReadStore(q, pool),
		Rentals:  readstore.NewRentalReadStore(q, pool),
		Payments: readstore.NewPaymentReadStore(q, pool),
		Users:    readstore.NewUserReadStore(q, pool),
	}, nil
}
