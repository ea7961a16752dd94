package response

import (
	"time"

	"github.com/nataliadudina/bike-rental/internal/domain/user"
	"github.com/nataliadudina/bike-rental/internal/usecase/commands"
	"github.com/nataliadudina/bike-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type LoginResponse struct {
	TokenPairResponse
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

func FromTokenPair(p *commands.TokenPair) *TokenPairResponse {
	return &TokenPairResponse{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    p.ExpiresIn,
	}
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		TokenPairResponse: *FromTokenPair(r.TokenPair),
		UserID:            r.UserID,
		Role:              r.Role.String(),
	}
}

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromUserView(v *queries.UserView) (*UserResponse, error) {
	return convert[UserResponse](v)
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		FirstName: u.Name().First(),
		LastName:  u.Name().Last(),
		Role:      u.Role().String(),
		IsActive:  u.IsActive(),
		LastLogin: u.LastLogin(),
		CreatedAt: u.CreatedAt(),
	}
}

func FromUserPage(page *queries.Page[queries.UserView]) (*ListResponse[UserResponse], error) {
	items, err := convertAll[UserResponse](page.Items)
	if err != nil {
		return nil, err
	}
	return &ListResponse[UserResponse]{Items: items, Meta: page.Meta}, nil
}
