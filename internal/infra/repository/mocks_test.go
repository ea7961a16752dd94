//go:build unit

package repository_test

import (
	"context"

	"github.com/nataliadudina/bike-rental/internal/infra/query"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"
)

// stubDB is only passed through to the mocked queries.
type stubDB struct {
	query.DBTX
}

type mockBicycleQueries struct {
	mock.Mock
}

func (m *mockBicycleQueries) GetBicycle(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Bicycle, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Bicycle), args.Error(1)
}

func (m *mockBicycleQueries) InsertBicycle(ctx context.Context, db query.DBTX, arg query.InsertBicycleParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *mockBicycleQueries) UpdateBicycleSpec(ctx context.Context, db query.DBTX, arg query.UpdateBicycleSpecParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBicycleQueries) SetBicycleAvailability(ctx context.Context, db query.DBTX, id uuid.UUID, available bool, at pgtype.Timestamptz) (query.Bicycle, error) {
	args := m.Called(ctx, db, id, available, at)
	return args.Get(0).(query.Bicycle), args.Error(1)
}

func (m *mockBicycleQueries) ReserveBicycle(ctx context.Context, db query.DBTX, id uuid.UUID, at pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, id, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBicycleQueries) DeleteIdleBicycle(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockRentalQueries struct {
	mock.Mock
}

func (m *mockRentalQueries) InsertRental(ctx context.Context, db query.DBTX, arg query.InsertRentalParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *mockRentalQueries) GetRental(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Rental, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Rental), args.Error(1)
}

func (m *mockRentalQueries) GetRentalForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Rental, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Rental), args.Error(1)
}

func (m *mockRentalQueries) GetActiveRentalByRenter(ctx context.Context, db query.DBTX, renterID uuid.UUID) (query.Rental, error) {
	args := m.Called(ctx, db, renterID)
	return args.Get(0).(query.Rental), args.Error(1)
}

func (m *mockRentalQueries) ExistsActiveRentalForBicycle(ctx context.Context, db query.DBTX, bicycleID uuid.UUID) (bool, error) {
	args := m.Called(ctx, db, bicycleID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRentalQueries) ExistsOpenRentalForRenter(ctx context.Context, db query.DBTX, renterID uuid.UUID) (bool, error) {
	args := m.Called(ctx, db, renterID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRentalQueries) FinalizeRental(ctx context.Context, db query.DBTX, arg query.FinalizeRentalParams) (query.Rental, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(query.Rental), args.Error(1)
}

func (m *mockRentalQueries) CloseRental(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Rental, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Rental), args.Error(1)
}

type mockUserQueries struct {
	mock.Mock
}

func (m *mockUserQueries) InsertUser(ctx context.Context, db query.DBTX, arg query.InsertUserParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *mockUserQueries) GetUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.User, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.User), args.Error(1)
}

func (m *mockUserQueries) GetUserByEmail(ctx context.Context, db query.DBTX, email string) (query.User, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(query.User), args.Error(1)
}

func (m *mockUserQueries) UpdateUserLastLogin(ctx context.Context, db query.DBTX, id uuid.UUID, at pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, id, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserQueries) UpdateUser(ctx context.Context, db query.DBTX, arg query.UpdateUserParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserQueries) DeleteUser(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}
