package api

import (
	"errors"
	"net/http"

	"github.com/nataliadudina/bike-rental/internal/handler/httperr"
	"github.com/nataliadudina/bike-rental/internal/handler/middleware"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errNotAuthenticated      = errors.New("user not authenticated")
	errIdempotencyKeyTooLong = errors.New("idempotency key is too long")
)

func statusFor(err error) int {
	switch errs.CategoryOf(err) {
	case errs.CategoryNotFound:
		return http.StatusNotFound
	case errs.CategoryConflict:
		return http.StatusConflict
	case errs.CategoryUnauthorized:
		return http.StatusForbidden
	case errs.CategoryValidation:
		return http.StatusBadRequest
	case errs.CategoryUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// abortWithUseCaseError answers with the sentinel's own message; anything
// uncategorised is hidden behind a generic 500.
func abortWithUseCaseError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := "Internal server error"
	if status != http.StatusInternalServerError {
		if public, ok := errs.PublicMessage(err); ok {
			msg = public
		}
	}
	httperr.AbortWithError(c, status, err, msg, nil)
}

func abortInvalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "User not authenticated", nil)
		return shared.Actor{}, false
	}
	return actor, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
