//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nataliadudina/bike-rental/internal/handler/httperr"
	"github.com/nataliadudina/bike-rental/internal/handler/middleware"
	"github.com/nataliadudina/bike-rental/internal/pkg/config"
	"github.com/nataliadudina/bike-rental/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newPipeline() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	r := gin.New()
	r.Use(logger.CustomRecovery(), logger.LoggingMiddleware(), middleware.ErrorHandler())
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	r.GET("/conflict", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("taken"), "Bicycle is not available", nil)
	})
	r.GET("/silent", func(c *gin.Context) {
		_ = c.Error(errors.New("unreported"))
	})
	return r
}

func TestCustomRecovery(t *testing.T) {
	rec := testutil.PerformRequest(t, newPipeline(), http.MethodGet, "/panic", nil, "")
	testutil.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestErrorHandler(t *testing.T) {
	r := newPipeline()

	t.Run("public error keeps its status and message", func(t *testing.T) {
		rec := testutil.PerformRequest(t, r, http.MethodGet, "/conflict", nil, "")
		testutil.AssertErrorResponse(t, rec, http.StatusConflict, "Bicycle is not available")
	})

	t.Run("unwritten private error becomes 500", func(t *testing.T) {
		rec := testutil.PerformRequest(t, r, http.MethodGet, "/silent", nil, "")
		testutil.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}

func TestCORSMiddleware_AddsRentalHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:  []string{"http://localhost:3000"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        time.Hour,
	}))
	r.POST("/api/rent/:bikeId", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodOptions, "/api/rent/1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "idempotency-key")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Idempotency-Key")

	req = httptest.NewRequest(http.MethodPost, "/api/rent/1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	exposed := rec.Header().Get("Access-Control-Expose-Headers")
	assert.Contains(t, exposed, "Location")
	assert.Contains(t, exposed, "Idempotent-Replayed")
}
