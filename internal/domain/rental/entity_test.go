//go:build unit

package rental_test

import (
	"testing"
	"time"

	"github.com/nataliadudina/bike-rental/internal/domain/rental"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRental(t *testing.T) {
	bikeID, renterID := uuid.New(), uuid.New()

	r := rental.NewRental(bikeID, renterID, start)

	assert.NotEqual(t, uuid.Nil, r.ID())
	assert.Equal(t, rental.StatusActive, r.Status())
	assert.Equal(t, start, r.StartedAt())
	assert.Nil(t, r.EndedAt())
	assert.Nil(t, r.Cost())
	assert.True(t, r.IsRentedBy(renterID))
	assert.False(t, r.IsRentedBy(uuid.New()))
}

func TestRental_CheckReturnable(t *testing.T) {
	renterID := uuid.New()
	bikeID := uuid.New()
	end := start.Add(time.Hour)
	cost := decimal.RequireFromString("10.00")

	tests := []struct {
		name   string
		rental *rental.Rental
		caller uuid.UUID
		errIs  error
	}{
		{
			name:   "renter returns active rental",
			rental: rental.NewRental(bikeID, renterID, start),
			caller: renterID,
		},
		{
			name:   "bicycle deleted",
			rental: rental.Reconstruct(uuid.New(), nil, &renterID, rental.StatusActive, start, nil, nil),
			caller: renterID,
			errIs:  rental.ErrBikeMissing,
		},
		{
			name:   "someone else",
			rental: rental.NewRental(bikeID, renterID, start),
			caller: uuid.New(),
			errIs:  rental.ErrNotAuthorized,
		},
		{
			name:   "renter deleted",
			rental: rental.Reconstruct(uuid.New(), &bikeID, nil, rental.StatusActive, start, nil, nil),
			caller: renterID,
			errIs:  rental.ErrNotAuthorized,
		},
		{
			name:   "already returned",
			rental: rental.Reconstruct(uuid.New(), &bikeID, &renterID, rental.StatusAwaitingPayment, start, &end, &cost),
			caller: renterID,
			errIs:  rental.ErrAlreadyClosed,
		},
		{
			name:   "missing bicycle wins over ownership",
			rental: rental.Reconstruct(uuid.New(), nil, &renterID, rental.StatusClosed, start, &end, &cost),
			caller: uuid.New(),
			errIs:  rental.ErrBikeMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rental.CheckReturnable(tt.caller)
			if tt.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestRental_Lifecycle(t *testing.T) {
	r := rental.NewRental(uuid.New(), uuid.New(), start)
	end := start.Add(26 * time.Hour)

	require.NoError(t, r.Finalize(end, decimal.RequireFromString("72")))
	assert.Equal(t, rental.StatusAwaitingPayment, r.Status())
	require.NotNil(t, r.EndedAt())
	assert.Equal(t, end, *r.EndedAt())
	assert.Equal(t, "72.00", r.Cost().StringFixed(2))

	assert.ErrorIs(t, r.Finalize(end.Add(time.Hour), decimal.RequireFromString("99")), rental.ErrAlreadyClosed)
	assert.Equal(t, "72.00", r.Cost().StringFixed(2))

	require.NoError(t, r.Close())
	assert.Equal(t, rental.StatusClosed, r.Status())
	assert.ErrorIs(t, r.Close(), rental.ErrNotAwaitingPayment)
}

func TestRental_FinalizeRejectsEndBeforeStart(t *testing.T) {
	r := rental.NewRental(uuid.New(), uuid.New(), start)

	err := r.Finalize(start.Add(-time.Minute), decimal.Zero)

	assert.ErrorIs(t, err, rental.ErrInvalidInterval)
	assert.True(t, r.IsActive())
	assert.Nil(t, r.EndedAt())
}

func TestRental_CloseRequiresReturn(t *testing.T) {
	r := rental.NewRental(uuid.New(), uuid.New(), start)
	assert.ErrorIs(t, r.Close(), rental.ErrNotAwaitingPayment)
}

func TestNewStatus(t *testing.T) {
	s, err := rental.NewStatus("awaiting_payment")
	require.NoError(t, err)
	assert.Equal(t, rental.StatusAwaitingPayment, s)

	_, err = rental.NewStatus("pending")
	assert.ErrorIs(t, err, rental.ErrInvalidStatus)
}
