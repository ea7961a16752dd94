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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubDB struct {
	query.DBTX
}

type MockBicycleReadQueries struct {
	mock.Mock
}

func (m *MockBicycleReadQueries) GetBicycle(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Bicycle, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Bicycle), args.Error(1)
}

func (m *MockBicycleReadQueries) ListBicycles(ctx context.Context, db query.DBTX, f query.BicycleFilterParams, limit, offset int32) ([]query.Bicycle, error) {
	args := m.Called(ctx, db, f, limit, offset)
	return args.Get(0).([]query.Bicycle), args.Error(1)
}

func (m *MockBicycleReadQueries) CountBicycles(ctx context.Context, db query.DBTX, f query.BicycleFilterParams) (int64, error) {
	args := m.Called(ctx, db, f)
	return args.Get(0).(int64), args.Error(1)
}

func sampleBicycle(brand string) query.Bicycle {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return query.Bicycle{
		ID:          uuid.New(),
		Brand:       brand,
		Condition:   "excellent",
		Type:        "junior",
		Gears:       7,
		FrameType:   "urban",
		WheelSize:   24,
		HourlyRate:  pgconv.DecimalToNumeric(decimal.RequireFromString("4.50")),
		DailyRate:   pgconv.DecimalToNumeric(decimal.RequireFromString("20.00")),
		IsAvailable: true,
		CreatedAt:   pgconv.TimeToPgtype(now),
		UpdatedAt:   pgconv.TimeToPgtype(now),
	}
}

func TestBicycleReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	row := sampleBicycle("Giant")

	tests := []struct {
		name      string
		mockRow   query.Bicycle
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", mockRow: row},
		{name: "not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockBicycleReadQueries)
			db := &stubDB{}
			q.On("GetBicycle", ctx, db, row.ID).Return(tt.mockRow, tt.mockError)

			view, err := NewBicycleReadStore(q, db).FindByID(ctx, row.ID)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Giant", view.Brand)
			assert.Equal(t, "4.5", view.HourlyRate.String())
			assert.Nil(t, view.Color)
		})
	}
}

func TestBicycleReadStore_List(t *testing.T) {
	ctx := context.Background()
	contains := "100%_bike"
	condition := "excellent"
	filter := queries.BicycleFilter{BrandContains: &contains, Condition: &condition, AvailableOnly: true}
	page := pagination.Params{Page: 2, PageSize: 5}

	matchesFilter := mock.MatchedBy(func(f query.BicycleFilterParams) bool {
		return f.BrandContains.Valid && f.BrandContains.String == `100\%\_bike` &&
			f.Condition.String == "excellent" && !f.Brand.Valid && f.AvailableOnly
	})

	t.Run("success: escapes pattern and pages", func(t *testing.T) {
		q := new(MockBicycleReadQueries)
		db := &stubDB{}
		q.On("CountBicycles", ctx, db, matchesFilter).Return(int64(6), nil)
		q.On("ListBicycles", ctx, db, matchesFilter, int32(5), int32(5)).Return([]query.Bicycle{sampleBicycle("100%_bike")}, nil)

		views, total, err := NewBicycleReadStore(q, db).List(ctx, filter, page)

		require.NoError(t, err)
		assert.Equal(t, int64(6), total)
		require.Len(t, views, 1)
		assert.Equal(t, "100%_bike", views[0].Brand)
		q.AssertExpectations(t)
	})

	t.Run("success: empty result skips list query", func(t *testing.T) {
		q := new(MockBicycleReadQueries)
		db := &stubDB{}
		q.On("CountBicycles", ctx, db, matchesFilter).Return(int64(0), nil)

		views, total, err := NewBicycleReadStore(q, db).List(ctx, filter, page)

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, views)
		q.AssertNotCalled(t, "ListBicycles", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
