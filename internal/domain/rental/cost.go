package rental

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const hoursPerDay = 24

// BilledHours rounds the elapsed time up to whole hours. Any started hour counts.
func BilledHours(start, end time.Time) (int64, error) {
	elapsed := end.Sub(start)
	if elapsed < 0 {
		return 0, ErrInvalidInterval
	}
	hours := int64(elapsed / time.Hour)
	if elapsed%time.Hour != 0 {
		hours++
	}
	return hours, nil
}

// ComputeCost bills every full 24 hour block at the daily rate and the
// remaining hours at the hourly rate, rounded half-up to cents.
func ComputeCost(start, end time.Time, hourlyRate, dailyRate decimal.Decimal) (decimal.Decimal, error) {
	if hourlyRate.IsNegative() || dailyRate.IsNegative() {
		return decimal.Zero, ErrNegativeRate
	}
	hours, err := BilledHours(start, end)
	if err != nil {
		return decimal.Zero, err
	}

	var cost decimal.Decimal
	if hours >= hoursPerDay {
		days := hours / hoursPerDay
		rem := hours % hoursPerDay
		cost = dailyRate.Mul(decimal.NewFromInt(days)).Add(hourlyRate.Mul(decimal.NewFromInt(rem)))
	} else {
		cost = hourlyRate.Mul(decimal.NewFromInt(hours))
	}
	return cost.Round(2), nil
}

// Quote is everything needed to price one rental.
type Quote struct {
	RentalID   string
	Start      time.Time
	End        time.Time
	HourlyRate decimal.Decimal
	DailyRate  decimal.Decimal
}

// CostComputer prices a finished rental. Callers treat it as a blocking call
// that may fail or outlive its context.
type CostComputer interface {
	Compute(ctx context.Context, q Quote) (decimal.Decimal, error)
}

type TieredCostComputer struct{}

func NewTieredCostComputer() *TieredCostComputer {
	return &TieredCostComputer{}
}

func (TieredCostComputer) Compute(ctx context.Context, q Quote) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	return ComputeCost(q.Start, q.End, q.HourlyRate, q.DailyRate)
}
