package request

import (
	"github.com/nataliadudina/bike-rental/internal/domain/bicycle"
	"github.com/nataliadudina/bike-rental/internal/pkg/patch"
	"github.com/nataliadudina/bike-rental/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type CreateBicycleRequest struct {
	Brand      string           `json:"brand" binding:"required,max=100"`
	Condition  string           `json:"condition" binding:"required,oneof=excellent good satisfactory"`
	Type       string           `json:"type" binding:"required,oneof=adult junior kids"`
	Gears      int              `json:"gears" binding:"required,min=1,max=50"`
	FrameType  string           `json:"frame_type" binding:"required,oneof=urban mountain road touring"`
	WheelSize  int              `json:"wheel_size" binding:"required,min=1,max=40"`
	Color      *string          `json:"color" binding:"omitempty,max=30"`
	HourlyRate *decimal.Decimal `json:"hourly_rate" binding:"required"`
	DailyRate  *decimal.Decimal `json:"daily_rate" binding:"required"`
}

func (r *CreateBicycleRequest) ToSpec() (bicycle.Spec, error) {
	return buildSpec(r.Brand, r.Condition, r.Type, r.Gears, r.FrameType, r.WheelSize, r.Color, *r.HourlyRate, *r.DailyRate)
}

// UpdateBicycleRequest changes only the fields present in the body.
type UpdateBicycleRequest struct {
	Brand      *string          `json:"brand" binding:"omitempty,max=100"`
	Condition  *string          `json:"condition" binding:"omitempty,oneof=excellent good satisfactory"`
	Type       *string          `json:"type" binding:"omitempty,oneof=adult junior kids"`
	Gears      *int             `json:"gears" binding:"omitempty,min=1,max=50"`
	FrameType  *string          `json:"frame_type" binding:"omitempty,oneof=urban mountain road touring"`
	WheelSize  *int             `json:"wheel_size" binding:"omitempty,min=1,max=40"`
	Color      *string          `json:"color" binding:"omitempty,max=30"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
	DailyRate  *decimal.Decimal `json:"daily_rate"`
}

func (r *UpdateBicycleRequest) ToSpec(existing *queries.BicycleView) (bicycle.Spec, error) {
	return buildSpec(
		patch.Value(r.Brand, existing.Brand),
		patch.Value(r.Condition, existing.Condition),
		patch.Value(r.Type, existing.Type),
		patch.Value(r.Gears, existing.Gears),
		patch.Value(r.FrameType, existing.FrameType),
		patch.Value(r.WheelSize, existing.WheelSize),
		patch.Optional(r.Color, existing.Color),
		patch.Value(r.HourlyRate, existing.HourlyRate),
		patch.Value(r.DailyRate, existing.DailyRate),
	)
}

func buildSpec(brand, condition, kind string, gears int, frame string, wheelSize int, color *string, hourly, daily decimal.Decimal) (bicycle.Spec, error) {
	cond, err := bicycle.NewCondition(condition)
	if err != nil {
		return bicycle.Spec{}, err
	}
	k, err := bicycle.NewKind(kind)
	if err != nil {
		return bicycle.Spec{}, err
	}
	f, err := bicycle.NewFrameType(frame)
	if err != nil {
		return bicycle.Spec{}, err
	}
	rates, err := bicycle.NewRates(hourly, daily)
	if err != nil {
		return bicycle.Spec{}, err
	}
	return bicycle.Spec{
		Brand:     brand,
		Condition: cond,
		Kind:      k,
		Gears:     gears,
		Frame:     f,
		WheelSize: wheelSize,
		Color:     color,
		Rates:     rates,
	}, nil
}

type BicycleListQuery struct {
	Brand         *string `form:"brand"`
	BrandContains *string `form:"brand_contains"`
	Condition     *string `form:"condition"`
	Type          *string `form:"type"`
	Page          string  `form:"page"`
	PageSize      string  `form:"page_size"`
}

func (q *BicycleListQuery) ToFilter() queries.BicycleFilter {
	return queries.BicycleFilter{
		Brand:         q.Brand,
		BrandContains: q.BrandContains,
		Condition:     q.Condition,
		Type:          q.Type,
	}
}
