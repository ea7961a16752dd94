package bootstrap

import (
	"github.com/nataliadudina/bike-rental/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
