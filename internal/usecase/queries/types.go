package queries

import (
	"time"

	"github.com/nataliadudina/bike-rental/internal/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BicycleView struct {
	ID          uuid.UUID       `json:"id"`
	Brand       string          `json:"brand"`
	Condition   string          `json:"condition"`
	Type        string          `json:"type"`
	Gears       int             `json:"gears"`
	FrameType   string          `json:"frame_type"`
	WheelSize   int             `json:"wheel_size"`
	Color       *string         `json:"color,omitempty"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	DailyRate   decimal.Decimal `json:"daily_rate"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
}

type RentalView struct {
	ID           uuid.UUID        `json:"id"`
	BicycleID    *uuid.UUID       `json:"bicycle_id,omitempty"`
	BicycleBrand *string          `json:"bicycle_brand,omitempty"`
	RenterID     *uuid.UUID       `json:"renter_id,omitempty"`
	RenterEmail  *string          `json:"renter_email,omitempty"`
	Status       string           `json:"status"`
	StartedAt    time.Time        `json:"started_at"`
	EndedAt      *time.Time       `json:"ended_at,omitempty"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
}

type PaymentView struct {
	ID          uuid.UUID       `json:"id"`
	UserID      *uuid.UUID      `json:"user_id,omitempty"`
	RentalID    *uuid.UUID      `json:"rental_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	Status      string          `json:"status"`
	SessionID   *string         `json:"session_id,omitempty"`
	PaymentLink *string         `json:"payment_link,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
}

type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// BicycleFilter fields are ANDed; nil means no constraint.
type BicycleFilter struct {
	Brand         *string
	BrandContains *string
	Condition     *string
	Type          *string
	AvailableOnly bool
}

type RentalFilter struct {
	RenterID *uuid.UUID
}

type PaymentFilter struct {
	UserID *uuid.UUID
}

type Page[T any] struct {
	Items []*T
	Meta  pagination.Meta
}

func newPage[T any](items []*T, p pagination.Params, total int64) *Page[T] {
	if items == nil {
		items = []*T{}
	}
	return &Page[T]{Items: items, Meta: pagination.NewMeta(p, total)}
}
