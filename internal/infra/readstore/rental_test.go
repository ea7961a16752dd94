//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"github.com/nataliadudina/bike-rental/internal/infra"
	"github.com/nataliadudina/bike-rental/internal/infra/query"
	"github.com/nataliadudina/bike-rental/internal/pkg/pagination"
	"github.com/nataliadudina/bike-rental/internal/pkg/pgconv"
	"github.com/nataliadudina/bike-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRentalReadQueries struct {
	mock.Mock
}

func (m *MockRentalReadQueries) GetRentalView(ctx context.Context, db query.DBTX, id uuid.UUID) (query.RentalViewRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.RentalViewRow), args.Error(1)
}

func (m *MockRentalReadQueries) ListRentalViews(ctx context.Context, db query.DBTX, renterID pgtype.UUID, limit, offset int32) ([]query.RentalViewRow, error) {
	args := m.Called(ctx, db, renterID, limit, offset)
	return args.Get(0).([]query.RentalViewRow), args.Error(1)
}

func (m *MockRentalReadQueries) CountRentals(ctx context.Context, db query.DBTX, renterID pgtype.UUID) (int64, error) {
	args := m.Called(ctx, db, renterID)
	return args.Get(0).(int64), args.Error(1)
}

func TestRentalReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	email := "rider@example.com"

	t.Run("success: detached bicycle keeps nil reference", func(t *testing.T) {
		q := new(MockRentalReadQueries)
		db := &stubDB{}
		q.On("GetRentalView", ctx, db, id).Return(query.RentalViewRow{
			Rental: query.Rental{
				ID:        id,
				RenterID:  pgconv.UUIDToPgtype(uuid.New()),
				Status:    "awaiting_payment",
				StartedAt: pgconv.TimeToPgtype(start),
				EndedAt:   pgconv.TimeToPgtype(start.Add(3 * time.Hour)),
				Cost:      pgconv.DecimalToNumeric(decimal.RequireFromString("30.00")),
			},
			BicycleBrand: pgconv.StringPtrToPgtype(nil),
			RenterEmail:  pgconv.StringPtrToPgtype(&email),
		}, nil)

		view, err := NewRentalReadStore(q, db).FindByID(ctx, id)

		require.NoError(t, err)
		assert.Nil(t, view.BicycleID)
		assert.Nil(t, view.BicycleBrand)
		require.NotNil(t, view.Cost)
		assert.True(t, view.Cost.Equal(decimal.NewFromInt(30)))
		require.NotNil(t, view.EndedAt)
	})

	t.Run("not found", func(t *testing.T) {
		q := new(MockRentalReadQueries)
		db := &stubDB{}
		q.On("GetRentalView", ctx, db, id).Return(query.RentalViewRow{}, pgx.ErrNoRows)

		_, err := NewRentalReadStore(q, db).FindByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestRentalReadStore_List_FiltersByRenter(t *testing.T) {
	ctx := context.Background()
	renterID := uuid.New()
	renter := pgconv.UUIDToPgtype(renterID)

	q := new(MockRentalReadQueries)
	db := &stubDB{}
	q.On("CountRentals", ctx, db, renter).Return(int64(1), nil)
	q.On("ListRentalViews", ctx, db, renter, int32(8), int32(0)).Return([]query.RentalViewRow{{
		Rental: query.Rental{ID: uuid.New(), RenterID: renter, Status: "active"},
	}}, nil)

	views, total, err := NewRentalReadStore(q, db).List(ctx, queries.RentalFilter{RenterID: &renterID}, pagination.Params{Page: 1, PageSize: 8})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Cost)
	q.AssertExpectations(t)
}
