package handler

import (
	"net/http"

	"github.com/nataliadudina/bike-rental/internal/handler/api"
	"github.com/nataliadudina/bike-rental/internal/handler/middleware"
	"github.com/nataliadudina/bike-rental/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Bicycle *api.BicycleHandler
	Rental  *api.RentalHandler
	Payment *api.PaymentHandler
	User    *api.UserHandler
	AuthMw  *middleware.AuthMiddleware
	Logger  *middleware.Logger
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg, h.Logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Outermost, so panics in any later middleware are caught.
	engine.Use(logger.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/payment-status", h.Payment.PaymentStatus)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := h.AuthMw.RequireAuth()
	moderatorOnly := []gin.HandlerFunc{requireAuth, h.AuthMw.RequireModerator()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/available-bikes", Handler: h.Bicycle.ListAvailable},
		})

		bikes := apiGroup.Group("/bikes")
		{
			addRoutes(bikes, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Bicycle.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Bicycle.Create, Mw: moderatorOnly},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Bicycle.Update, Mw: moderatorOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Bicycle.Delete, Mw: moderatorOnly},
			})
		}

		renting := apiGroup.Group("")
		renting.Use(requireAuth)
		{
			addRoutes(renting, []route{
				{Method: http.MethodPost, Path: "/rent/:bikeId", Handler: h.Rental.Reserve},
				{Method: http.MethodPatch, Path: "/returns/:rentalId", Handler: h.Rental.Return},
			})
		}

		rentals := apiGroup.Group("/rentals")
		rentals.Use(requireAuth)
		{
			addRoutes(rentals, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Rental.ListAll, Mw: []gin.HandlerFunc{h.AuthMw.RequireModerator()}},
				{Method: http.MethodGet, Path: "/history", Handler: h.Rental.History},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Rental.Get},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(requireAuth)
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: h.User.List, Mw: []gin.HandlerFunc{h.AuthMw.RequireModerator()}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.User.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.User.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.User.Delete},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(requireAuth)
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Payment.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Payment.List},
				{Method: http.MethodPost, Path: "/cash/:rentalId", Handler: h.Payment.SettleCash, Mw: []gin.HandlerFunc{h.AuthMw.RequireModerator()}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
