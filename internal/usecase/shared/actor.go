package shared

import (
	"github.com/nataliadudina/bike-rental/internal/domain/user"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsModerator() bool {
	return a.Role.CanModerate()
}

var ErrModeratorOnly = errs.Sentinel("moderator role required", errs.ErrUnauthorized)

// RequireModerator fails with ErrModeratorOnly for regular users.
func (a Actor) RequireModerator() error {
	if !a.IsModerator() {
		return ErrModeratorOnly
	}
	return nil
}
