//go:build unit

package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/nataliadudina/bike-rental/internal/domain/bicycle"
	"github.com/nataliadudina/bike-rental/internal/domain/rental"
	"github.com/nataliadudina/bike-rental/internal/handler"
	"github.com/nataliadudina/bike-rental/internal/handler/api"
	"github.com/nataliadudina/bike-rental/internal/handler/middleware"
	"github.com/nataliadudina/bike-rental/internal/infra/gateway"
	"github.com/nataliadudina/bike-rental/internal/infra/idempotency"
	"github.com/nataliadudina/bike-rental/internal/infra/memstore"
	"github.com/nataliadudina/bike-rental/internal/pkg/clock"
	"github.com/nataliadudina/bike-rental/internal/pkg/config"
	"github.com/nataliadudina/bike-rental/internal/pkg/jwt"
	"github.com/nataliadudina/bike-rental/internal/pkg/password"
	"github.com/nataliadudina/bike-rental/internal/testutil"
	"github.com/nataliadudina/bike-rental/internal/usecase"
	"github.com/nataliadudina/bike-rental/internal/usecase/commands"
	"github.com/nataliadudina/bike-rental/internal/usecase/queries"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newMemoryRouter wires the full route table over the in-memory store.
func newMemoryRouter(t *testing.T) (*gin.Engine, *memstore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	clk := clock.NewRealClock()
	store := memstore.New(clk)
	jwtSvc := jwt.NewService("router-test-secret-with-length", time.Hour, 24*time.Hour, cfg.JWT.Issuer, clk)

	engine := gin.New()
	handler.NewRouter(engine, cfg, handler.Handlers{
		Auth: api.NewAuthHandler(
			commands.NewAuthCommands(store, password.NewHasher(bcrypt.MinCost), jwtSvc, clk),
			queries.NewUserQueries(memstore.NewUserReadStore(store)),
		),
		Bicycle: api.NewBicycleHandler(
			commands.NewBicycleCommands(store, clk),
			queries.NewBicycleQueries(memstore.NewBicycleReadStore(store)),
		),
		Rental: api.NewRentalHandler(
			commands.NewRentalCommands(store, rental.NewTieredCostComputer(),
				idempotency.NewMemoryStore(clk, cfg.Redis.IdempotencyTTL), clk,
				commands.RentalOptions{CostTimeout: cfg.Billing.ComputeTimeout}),
			queries.NewRentalQueries(memstore.NewRentalReadStore(store)),
		),
		Payment: api.NewPaymentHandler(
			commands.NewPaymentCommands(store, gateway.Unconfigured{}, clk),
			queries.NewPaymentQueries(memstore.NewPaymentReadStore(store)),
		),
		User: api.NewUserHandler(
			commands.NewUserCommands(store, password.NewHasher(bcrypt.MinCost)),
			queries.NewUserQueries(memstore.NewUserReadStore(store)),
		),
		AuthMw: middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtSvc)),
		Logger: middleware.NewLogger(cfg.Log),
	})
	return engine, store
}

func TestRouter_PublicAndProtectedRoutes(t *testing.T) {
	r, _ := newMemoryRouter(t)

	rec := testutil.PerformRequest(t, r, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = testutil.PerformRequest(t, r, http.MethodGet, "/api/available-bikes", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	protected := []struct{ method, path string }{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/bikes"},
		{http.MethodPost, "/api/rent/0b6f7c1e-8d0a-4a43-9a55-0d6f3e5c1a01"},
		{http.MethodPatch, "/api/returns/0b6f7c1e-8d0a-4a43-9a55-0d6f3e5c1a01"},
		{http.MethodGet, "/api/rentals"},
		{http.MethodGet, "/api/rentals/history"},
		{http.MethodGet, "/api/payments"},
		{http.MethodPost, "/api/payments/cash/0b6f7c1e-8d0a-4a43-9a55-0d6f3e5c1a01"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/users/0b6f7c1e-8d0a-4a43-9a55-0d6f3e5c1a01"},
		{http.MethodPatch, "/api/users/0b6f7c1e-8d0a-4a43-9a55-0d6f3e5c1a01"},
		{http.MethodDelete, "/api/users/0b6f7c1e-8d0a-4a43-9a55-0d6f3e5c1a01"},
	}
	for _, tc := range protected {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := testutil.PerformRequest(t, r, tc.method, tc.path, nil, "")
			testutil.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
		})
	}
}

func TestRouter_RentAndReturnFlow(t *testing.T) {
	r, store := newMemoryRouter(t)

	rates, err := bicycle.NewRates(decimal.RequireFromString("5"), decimal.RequireFromString("25"))
	require.NoError(t, err)
	bike, err := bicycle.NewBicycle(bicycle.Spec{
		Brand:     "Stels",
		Condition: bicycle.ConditionGood,
		Kind:      bicycle.KindAdult,
		Gears:     21,
		Frame:     bicycle.FrameUrban,
		WheelSize: 28,
		Rates:     rates,
	}, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Bicycles().Create(ctx, bike)
	}))

	creds := map[string]any{"email": "rider@example.com", "password": "password123"}
	register := map[string]any{"email": "rider@example.com", "password": "password123", "first_name": "Ivan", "last_name": "Petrov"}
	rec := testutil.PerformRequest(t, r, http.MethodPost, "/api/auth/register", register, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var login struct {
		AccessToken string `json:"access_token"`
	}
	rec = testutil.PerformRequest(t, r, http.MethodPost, "/api/auth/login", creds, "")
	testutil.AssertSuccessResponse(t, rec, http.StatusOK, &login)
	require.NotEmpty(t, login.AccessToken)

	var rented struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	rec = testutil.PerformRequest(t, r, http.MethodPost, "/api/rent/"+bike.ID().String(), nil, login.AccessToken)
	testutil.AssertSuccessResponse(t, rec, http.StatusCreated, &rented)
	assert.Equal(t, "active", rented.Status)

	rec = testutil.PerformRequest(t, r, http.MethodPost, "/api/rent/"+bike.ID().String(), nil, login.AccessToken)
	testutil.AssertErrorResponse(t, rec, http.StatusConflict, "")

	var page struct {
		Items []map[string]any `json:"items"`
	}
	rec = testutil.PerformRequest(t, r, http.MethodGet, "/api/available-bikes", nil, "")
	testutil.AssertSuccessResponse(t, rec, http.StatusOK, &page)
	assert.Empty(t, page.Items)

	var returned struct {
		Status string  `json:"status"`
		Cost   *string `json:"cost"`
	}
	rec = testutil.PerformRequest(t, r, http.MethodPatch, "/api/returns/"+rented.ID, nil, login.AccessToken)
	testutil.AssertSuccessResponse(t, rec, http.StatusOK, &returned)
	assert.Equal(t, "awaiting_payment", returned.Status)
	require.NotNil(t, returned.Cost)

	rec = testutil.PerformRequest(t, r, http.MethodPatch, "/api/returns/"+rented.ID, nil, login.AccessToken)
	testutil.AssertErrorResponse(t, rec, http.StatusConflict, "rental is not active")

	rec = testutil.PerformRequest(t, r, http.MethodGet, "/api/rentals", nil, login.AccessToken)
	testutil.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")

	rec = testutil.PerformRequest(t, r, http.MethodGet, "/api/rentals/history", nil, login.AccessToken)
	testutil.AssertSuccessResponse(t, rec, http.StatusOK, &page)
	assert.Len(t, page.Items, 1)
}

func TestRouter_AccountLifecycle(t *testing.T) {
	r, _ := newMemoryRouter(t)

	register := map[string]any{"email": "rider@example.com", "password": "password123", "first_name": "Ivan", "last_name": "Petrov"}
	var created struct {
		ID string `json:"id"`
	}
	rec := testutil.PerformRequest(t, r, http.MethodPost, "/api/auth/register", register, "")
	testutil.AssertSuccessResponse(t, rec, http.StatusCreated, &created)

	type tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	var login tokens
	rec = testutil.PerformRequest(t, r, http.MethodPost, "/api/auth/login",
		map[string]any{"email": "rider@example.com", "password": "password123"}, "")
	testutil.AssertSuccessResponse(t, rec, http.StatusOK, &login)
	require.NotEmpty(t, login.RefreshToken)

	rec = testutil.PerformRequest(t, r, http.MethodGet, "/api/auth/me", nil, login.RefreshToken)
	testutil.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")

	var refreshed tokens
	rec = testutil.PerformRequest(t, r, http.MethodPost, "/api/auth/refresh",
		map[string]any{"refresh_token": login.RefreshToken}, "")
	testutil.AssertSuccessResponse(t, rec, http.StatusOK, &refreshed)
	require.NotEmpty(t, refreshed.AccessToken)

	rec = testutil.PerformRequest(t, r, http.MethodPost, "/api/auth/refresh",
		map[string]any{"refresh_token": login.AccessToken}, "")
	testutil.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired refresh token")

	self := "/api/users/" + created.ID
	var profile struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	rec = testutil.PerformRequest(t, r, http.MethodPatch, self, map[string]any{"first_name": "Ivana"}, refreshed.AccessToken)
	testutil.AssertSuccessResponse(t, rec, http.StatusOK, &profile)
	assert.Equal(t, "Ivana", profile.FirstName)
	assert.Equal(t, "Petrov", profile.LastName)

	rec = testutil.PerformRequest(t, r, http.MethodGet, self, nil, refreshed.AccessToken)
	testutil.AssertSuccessResponse(t, rec, http.StatusOK, &profile)
	assert.Equal(t, "Ivana", profile.FirstName)

	rec = testutil.PerformRequest(t, r, http.MethodGet, "/api/users", nil, refreshed.AccessToken)
	testutil.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")

	rec = testutil.PerformRequest(t, r, http.MethodGet, "/api/users/0b6f7c1e-8d0a-4a43-9a55-0d6f3e5c1a01", nil, refreshed.AccessToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = testutil.PerformRequest(t, r, http.MethodDelete, self, nil, refreshed.AccessToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = testutil.PerformRequest(t, r, http.MethodPost, "/api/auth/refresh",
		map[string]any{"refresh_token": refreshed.RefreshToken}, "")
	testutil.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired refresh token")
}
