package response

import (
	"time"

	"github.com/nataliadudina/bike-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type BicycleResponse struct {
	ID          uuid.UUID `json:"id"`
	Brand       string    `json:"brand"`
	Condition   string    `json:"condition"`
	Type        string    `json:"type"`
	Gears       int       `json:"gears"`
	FrameType   string    `json:"frame_type"`
	WheelSize   int       `json:"wheel_size"`
	Color       *string   `json:"color,omitempty"`
	HourlyRate  string    `json:"hourly_rate"`
	DailyRate   string    `json:"daily_rate"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromBicycleView(v *queries.BicycleView) (*BicycleResponse, error) {
	return convert[BicycleResponse](v)
}

func FromBicyclePage(page *queries.Page[queries.BicycleView]) (*ListResponse[BicycleResponse], error) {
	items, err := convertAll[BicycleResponse](page.Items)
	if err != nil {
		return nil, err
	}
	return &ListResponse[BicycleResponse]{Items: items, Meta: page.Meta}, nil
}
