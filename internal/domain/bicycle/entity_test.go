//go:build unit

package bicycle_test

import (
	"testing"
	"time"

	"github.com/nataliadudina/bike-rental/internal/domain/bicycle"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func validSpec(t *testing.T) bicycle.Spec {
	t.Helper()
	rates, err := bicycle.NewRates(decimal.RequireFromString("10.00"), decimal.RequireFromString("52.00"))
	require.NoError(t, err)
	return bicycle.Spec{
		Brand:     "Trek",
		Condition: bicycle.ConditionGood,
		Kind:      bicycle.KindAdult,
		Gears:     21,
		Frame:     bicycle.FrameMountain,
		WheelSize: 29,
		Rates:     rates,
	}
}

func TestNewBicycle(t *testing.T) {
	b, err := bicycle.NewBicycle(validSpec(t), now)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.True(t, b.IsAvailable())
	assert.Equal(t, "Trek", b.Brand())
	assert.Equal(t, now, b.CreatedAt())
}

func TestNewBicycle_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *bicycle.Spec)
		errIs  error
	}{
		{name: "blank brand", mutate: func(s *bicycle.Spec) { s.Brand = "  " }, errIs: bicycle.ErrInvalidBrand},
		{name: "unknown condition", mutate: func(s *bicycle.Spec) { s.Condition = "broken" }, errIs: bicycle.ErrInvalidCondition},
		{name: "unknown type", mutate: func(s *bicycle.Spec) { s.Kind = "tandem" }, errIs: bicycle.ErrInvalidKind},
		{name: "unknown frame", mutate: func(s *bicycle.Spec) { s.Frame = "bmx" }, errIs: bicycle.ErrInvalidFrameType},
		{name: "zero gears", mutate: func(s *bicycle.Spec) { s.Gears = 0 }, errIs: bicycle.ErrInvalidGears},
		{name: "zero wheel", mutate: func(s *bicycle.Spec) { s.WheelSize = 0 }, errIs: bicycle.ErrInvalidWheelSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec(t)
			tt.mutate(&spec)

			b, err := bicycle.NewBicycle(spec, now)

			assert.Nil(t, b)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestNewRates(t *testing.T) {
	tests := []struct {
		name   string
		hourly string
		daily  string
		errIs  error
	}{
		{name: "ok", hourly: "10.00", daily: "52.00"},
		{name: "zero", hourly: "0", daily: "0"},
		{name: "negative hourly", hourly: "-0.01", daily: "52", errIs: bicycle.ErrNegativeRate},
		{name: "negative daily", hourly: "1", daily: "-52", errIs: bicycle.ErrNegativeRate},
		{name: "three places", hourly: "1.005", daily: "52", errIs: bicycle.ErrRatePrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bicycle.NewRates(decimal.RequireFromString(tt.hourly), decimal.RequireFromString(tt.daily))
			if tt.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestBicycle_ReviseKeepsAvailability(t *testing.T) {
	b, err := bicycle.NewBicycle(validSpec(t), now)
	require.NoError(t, err)
	b.SetAvailable(false, now)

	spec := validSpec(t)
	spec.Brand = " Giant "
	spec.Condition = bicycle.ConditionExcellent
	later := now.Add(time.Hour)
	require.NoError(t, b.Revise(spec, later))

	spec.Brand = "Giant"
	if diff := cmp.Diff(spec, b.Spec(), cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }), cmp.AllowUnexported(bicycle.Rates{})); diff != "" {
		t.Errorf("Spec mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, b.IsAvailable())
	assert.Equal(t, later, b.UpdatedAt())
}

func TestEnumParsing(t *testing.T) {
	c, err := bicycle.NewCondition("satisfactory")
	require.NoError(t, err)
	assert.Equal(t, bicycle.ConditionSatisfactory, c)

	k, err := bicycle.NewKind("kids")
	require.NoError(t, err)
	assert.Equal(t, bicycle.KindKids, k)

	f, err := bicycle.NewFrameType("touring")
	require.NoError(t, err)
	assert.Equal(t, bicycle.FrameTouring, f)

	_, err = bicycle.NewKind("Adult")
	assert.ErrorIs(t, err, bicycle.ErrInvalidKind)
}
