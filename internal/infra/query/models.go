package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bicycle struct {
	ID          uuid.UUID
	Brand       string
	Condition   string
	Type        string
	Gears       int32
	FrameType   string
	WheelSize   int32
	Color       pgtype.Text
	HourlyRate  pgtype.Numeric
	DailyRate   pgtype.Numeric
	IsAvailable bool
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type Rental struct {
	ID        uuid.UUID
	BicycleID pgtype.UUID
	RenterID  pgtype.UUID
	Status    string
	StartedAt pgtype.Timestamptz
	EndedAt   pgtype.Timestamptz
	Cost      pgtype.Numeric
}

type RentalViewRow struct {
	Rental
	BicycleBrand pgtype.Text
	RenterEmail  pgtype.Text
}

type Payment struct {
	ID              uuid.UUID
	UserID          pgtype.UUID
	RentalID        pgtype.UUID
	Amount          pgtype.Numeric
	Method          string
	Status          string
	SessionID       pgtype.Text
	PaymentLink     pgtype.Text
	StripeProductID pgtype.Text
	CreatedAt       pgtype.Timestamptz
	PaidAt          pgtype.Timestamptz
}

type User struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
}
