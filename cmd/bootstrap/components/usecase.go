package components

import (
	"github.com/nataliadudina/bike-rental/internal/domain/rental"
	"github.com/nataliadudina/bike-rental/internal/pkg/clock"
	"github.com/nataliadudina/bike-rental/internal/pkg/config"
	"github.com/nataliadudina/bike-rental/internal/pkg/password"
	"github.com/nataliadudina/bike-rental/internal/usecase"
	"github.com/nataliadudina/bike-rental/internal/usecase/commands"
	"github.com/nataliadudina/bike-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		rental.NewTieredCostComputer,
		fx.As(new(rental.CostComputer)),
	),
	func() *password.Hasher {
		return password.NewHasher(password.DefaultCost)
	},
	func(cfg config.Config) commands.RentalOptions {
		return commands.RentalOptions{CostTimeout: cfg.Billing.ComputeTimeout}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBicycleCommands,
		commands.NewRentalCommands,
		commands.NewPaymentCommands,
		commands.NewUserCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBicycleQueries,
		queries.NewRentalQueries,
		queries.NewPaymentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
