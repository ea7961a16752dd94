//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/nataliadudina/bike-rental/internal/domain/bicycle"
	"github.com/nataliadudina/bike-rental/internal/domain/rental"
	"github.com/nataliadudina/bike-rental/internal/domain/user"
	"github.com/nataliadudina/bike-rental/internal/infra/memstore"
	"github.com/nataliadudina/bike-rental/internal/pkg/clock"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var startTime = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	clock *clock.MockClock
	store *memstore.Store
}

func newFixture() *fixture {
	clk := clock.NewMockClock(startTime)
	return &fixture{clock: clk, store: memstore.New(clk)}
}

func (f *fixture) addBicycle(t *testing.T, hourly, daily string) *bicycle.Bicycle {
	t.Helper()
	rates, err := bicycle.NewRates(decimal.RequireFromString(hourly), decimal.RequireFromString(daily))
	require.NoError(t, err)
	b, err := bicycle.NewBicycle(bicycle.Spec{
		Brand:     "Stels",
		Condition: bicycle.ConditionGood,
		Kind:      bicycle.KindAdult,
		Gears:     21,
		Frame:     bicycle.FrameMountain,
		WheelSize: 27,
		Rates:     rates,
	}, f.clock.Now())
	require.NoError(t, err)
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bicycles().Create(ctx, b)
	})
	return b
}

func (f *fixture) addUser(t *testing.T, email string, role user.Role) *user.User {
	t.Helper()
	addr, err := user.NewEmail(email)
	require.NoError(t, err)
	name, err := user.NewFullName("Test", "Rider")
	require.NoError(t, err)
	u := user.NewUser(addr, name, "hash", role, f.clock.Now())
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	return u
}

func (f *fixture) addRental(t *testing.T, r *rental.Rental) {
	t.Helper()
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rentals().Create(ctx, r)
	})
}

func (f *fixture) bicycle(t *testing.T, id uuid.UUID) *bicycle.Bicycle {
	t.Helper()
	var b *bicycle.Bicycle
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		var err error
		b, err = tx.Bicycles().FindByID(ctx, id)
		return err
	})
	return b
}

func (f *fixture) rental(t *testing.T, id uuid.UUID) *rental.Rental {
	t.Helper()
	var r *rental.Rental
	f.within(t, func(ctx context.Context, tx shared.Tx) error {
		var err error
		r, err = tx.Rentals().FindByID(ctx, id)
		return err
	})
	return r
}

func (f *fixture) within(t *testing.T, fn func(ctx context.Context, tx shared.Tx) error) {
	t.Helper()
	require.NoError(t, f.store.Within(context.Background(), fn))
}

func renter() shared.Actor {
	return shared.Actor{UserID: uuid.New(), Role: user.RoleUser}
}

func moderator() shared.Actor {
	return shared.Actor{UserID: uuid.New(), Role: user.RoleModerator}
}
