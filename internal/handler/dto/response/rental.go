package response

import (
	"time"

	"github.com/nataliadudina/bike-rental/internal/domain/rental"
	"github.com/nataliadudina/bike-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalResponse struct {
	ID           uuid.UUID  `json:"id"`
	BicycleID    *uuid.UUID `json:"bicycle_id"`
	BicycleBrand *string    `json:"bicycle_brand,omitempty"`
	RenterID     *uuid.UUID `json:"renter_id"`
	RenterEmail  *string    `json:"renter_email,omitempty"`
	Status       string     `json:"status"`
	StartedAt    time.Time  `json:"started_at"`
	EndedAt      *time.Time `json:"ended_at"`
	Cost         *string    `json:"cost"`
}

func FromRental(r *rental.Rental) *RentalResponse {
	return &RentalResponse{
		ID:        r.ID(),
		BicycleID: r.BicycleID(),
		RenterID:  r.RenterID(),
		Status:    r.Status().String(),
		StartedAt: r.StartedAt(),
		EndedAt:   r.EndedAt(),
		Cost:      optionalMoney(r.Cost()),
	}
}

func FromRentalView(v *queries.RentalView) (*RentalResponse, error) {
	return convert[RentalResponse](v)
}

func FromRentalPage(page *queries.Page[queries.RentalView]) (*ListResponse[RentalResponse], error) {
	items, err := convertAll[RentalResponse](page.Items)
	if err != nil {
		return nil, err
	}
	return &ListResponse[RentalResponse]{Items: items, Meta: page.Meta}, nil
}
