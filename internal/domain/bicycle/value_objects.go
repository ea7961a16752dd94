package bicycle

import (
	"github.com/shopspring/decimal"
)

// RateScale is the number of fractional digits kept for money.
const RateScale = 2

// Rates holds the hourly and daily price of a bicycle.
type Rates struct {
	hourly decimal.Decimal
	daily  decimal.Decimal
}

func NewRates(hourly, daily decimal.Decimal) (Rates, error) {
	if hourly.IsNegative() || daily.IsNegative() {
		return Rates{}, ErrNegativeRate
	}
	if !hasMoneyScale(hourly) || !hasMoneyScale(daily) {
		return Rates{}, ErrRatePrecision
	}
	return Rates{hourly: hourly, daily: daily}, nil
}

func (r Rates) Hourly() decimal.Decimal { return r.hourly }
func (r Rates) Daily() decimal.Decimal  { return r.daily }

func hasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(RateScale))
}
