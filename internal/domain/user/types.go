package user

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator:
		return true
	default:
		return false
	}
}

// CanModerate covers catalog management, rental oversight and cash settlement.
func (r Role) CanModerate() bool {
	return r == RoleModerator
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
