package components

import (
	"github.com/nataliadudina/bike-rental/internal/handler"
	"github.com/nataliadudina/bike-rental/internal/handler/api"
	"github.com/nataliadudina/bike-rental/internal/handler/middleware"
	"github.com/nataliadudina/bike-rental/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBicycleHandler,
		api.NewRentalHandler,
		api.NewPaymentHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(registerRoutes),
)

type routeDeps struct {
	fx.In

	Engine  *gin.Engine
	Config  config.Config
	Logger  *middleware.Logger
	AuthMw  *middleware.AuthMiddleware
	Auth    *api.AuthHandler
	Bicycle *api.BicycleHandler
	Rental  *api.RentalHandler
	Payment *api.PaymentHandler
	User    *api.UserHandler
}

func registerRoutes(d routeDeps) {
	handler.NewRouter(d.Engine, d.Config, handler.Handlers{
		Auth:    d.Auth,
		Bicycle: d.Bicycle,
		Rental:  d.Rental,
		Payment: d.Payment,
		User:    d.User,
		AuthMw:  d.AuthMw,
		Logger:  d.Logger,
	})
}
