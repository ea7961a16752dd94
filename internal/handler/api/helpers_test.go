//go:build unit

package api_test

import (
	"net/http"
	"time"

	"github.com/nataliadudina/bike-rental/internal/domain/user"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userToken      = "user-token"
	moderatorToken = "moderator-token"
)

var (
	testUser      = shared.Actor{UserID: uuid.MustParse("0b6f7c1e-8d0a-4a43-9a55-0d6f3e5c1a01"), Role: user.RoleUser}
	testModerator = shared.Actor{UserID: uuid.MustParse("0b6f7c1e-8d0a-4a43-9a55-0d6f3e5c1a02"), Role: user.RoleModerator}

	fixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
)

// fakeAuth stands in for the JWT middleware: the bearer token names the actor.
func fakeAuth(c *gin.Context) {
	var actor shared.Actor
	switch c.GetHeader("Authorization") {
	case "Bearer " + userToken:
		actor = testUser
	case "Bearer " + moderatorToken:
		actor = testModerator
	default:
		c.Next()
		return
	}
	c.Set("user_id", actor.UserID)
	c.Set("user_role", actor.Role)
	c.Next()
}

func requireModerator(c *gin.Context) {
	role, ok := c.Get("user_role")
	if !ok || !role.(user.Role).CanModerate() {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": gin.H{"message": "Insufficient permissions"}})
		return
	}
	c.Next()
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(fakeAuth)
	return r
}
