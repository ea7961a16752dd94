//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nataliadudina/bike-rental/internal/domain/bicycle"
	"github.com/nataliadudina/bike-rental/internal/domain/rental"
	"github.com/nataliadudina/bike-rental/internal/infra"
	"github.com/nataliadudina/bike-rental/internal/infra/query"
	"github.com/nataliadudina/bike-rental/internal/infra/repository"
	"github.com/nataliadudina/bike-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func rentalRow(id uuid.UUID, status rental.Status) query.Rental {
	row := query.Rental{
		ID:        id,
		BicycleID: pgconv.UUIDToPgtype(uuid.New()),
		RenterID:  pgconv.UUIDToPgtype(uuid.New()),
		Status:    status.String(),
		StartedAt: pgconv.TimeToPgtype(fixedNow),
	}
	if status != rental.StatusActive {
		row.EndedAt = pgconv.TimeToPgtype(fixedNow.Add(90 * time.Minute))
		row.Cost = pgconv.DecimalToNumeric(decimal.RequireFromString("20.00"))
	}
	return row
}

func TestRentalRepository_Create(t *testing.T) {
	ctx := context.Background()
	r := rental.NewRental(uuid.New(), uuid.New(), fixedNow)

	testCases := []struct {
		name     string
		queryErr error
		wantErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success: rental inserted"},
		{
			name:     "error: renter already has an active rental",
			queryErr: &pgconn.PgError{Code: "23505", ConstraintName: "rentals_one_active_per_renter"},
			wantErr:  rental.ErrRenterHasActiveRental,
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "error: bicycle already rented",
			queryErr: &pgconn.PgError{Code: "23505", ConstraintName: "rentals_one_active_per_bicycle"},
			wantErr:  bicycle.ErrUnavailable,
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "error: bicycle deleted meanwhile",
			queryErr: &pgconn.PgError{Code: "23503"},
			wantErr:  bicycle.ErrNotFound,
			wantKind: infra.KindForeignKeyViolated,
		},
		{
			name:     "error: database failure",
			queryErr: errors.New("connection reset"),
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := new(mockRentalQueries)
			db := &stubDB{}
			q.On("InsertRental", ctx, db, mock.MatchedBy(func(p query.InsertRentalParams) bool {
				return p.ID == r.ID() && p.Status == "active" && p.BicycleID.Valid && p.RenterID.Valid
			})).Return(tc.queryErr)

			err := repository.NewRentalRepository(q, db).Create(ctx, r)

			if tc.wantKind == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.wantKind), "got %v", err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestRentalRepository_FindActiveByRenter(t *testing.T) {
	ctx := context.Background()
	renterID := uuid.New()

	t.Run("success: none active", func(t *testing.T) {
		q := new(mockRentalQueries)
		db := &stubDB{}
		q.On("GetActiveRentalByRenter", ctx, db, renterID).Return(query.Rental{}, pgx.ErrNoRows)

		got, err := repository.NewRentalRepository(q, db).FindActiveByRenter(ctx, renterID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("success: active rental decoded", func(t *testing.T) {
		id := uuid.New()
		q := new(mockRentalQueries)
		db := &stubDB{}
		q.On("GetActiveRentalByRenter", ctx, db, renterID).Return(rentalRow(id, rental.StatusActive), nil)

		got, err := repository.NewRentalRepository(q, db).FindActiveByRenter(ctx, renterID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, id, got.ID())
		assert.True(t, got.IsActive())
		assert.Nil(t, got.Cost())
	})
}

func TestRentalRepository_HasOpenForRenter(t *testing.T) {
	ctx := context.Background()
	renterID := uuid.New()

	t.Run("success: reports the flag", func(t *testing.T) {
		q := new(mockRentalQueries)
		db := &stubDB{}
		q.On("ExistsOpenRentalForRenter", ctx, db, renterID).Return(true, nil)

		open, err := repository.NewRentalRepository(q, db).HasOpenForRenter(ctx, renterID)
		require.NoError(t, err)
		assert.True(t, open)
	})

	t.Run("error: query failure is wrapped", func(t *testing.T) {
		q := new(mockRentalQueries)
		db := &stubDB{}
		q.On("ExistsOpenRentalForRenter", ctx, db, renterID).Return(false, errors.New("connection reset"))

		_, err := repository.NewRentalRepository(q, db).HasOpenForRenter(ctx, renterID)
		assert.ErrorContains(t, err, "failed to check open rentals")
	})
}

func TestRentalRepository_Finalize(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	end := fixedNow.Add(2 * time.Hour)
	cost := decimal.RequireFromString("20.00")

	testCases := []struct {
		name      string
		setupMock func(q *mockRentalQueries, db query.DBTX)
		wantErr   error
	}{
		{
			name: "success: active rental finalized",
			setupMock: func(q *mockRentalQueries, db query.DBTX) {
				q.On("FinalizeRental", ctx, db, mock.Anything).Return(rentalRow(id, rental.StatusAwaitingPayment), nil)
			},
		},
		{
			name: "error: rental no longer active",
			setupMock: func(q *mockRentalQueries, db query.DBTX) {
				q.On("FinalizeRental", ctx, db, mock.Anything).Return(query.Rental{}, pgx.ErrNoRows)
				q.On("GetRental", ctx, db, id).Return(rentalRow(id, rental.StatusClosed), nil)
			},
			wantErr: rental.ErrAlreadyClosed,
		},
		{
			name: "error: rental missing",
			setupMock: func(q *mockRentalQueries, db query.DBTX) {
				q.On("FinalizeRental", ctx, db, mock.Anything).Return(query.Rental{}, pgx.ErrNoRows)
				q.On("GetRental", ctx, db, id).Return(query.Rental{}, pgx.ErrNoRows)
			},
			wantErr: rental.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := new(mockRentalQueries)
			db := &stubDB{}
			tc.setupMock(q, db)

			got, err := repository.NewRentalRepository(q, db).Finalize(ctx, id, end, cost)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.True(t, got.IsAwaitingPayment())
			}
			q.AssertExpectations(t)
		})
	}
}

func TestRentalRepository_Close(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	q := new(mockRentalQueries)
	db := &stubDB{}
	q.On("CloseRental", ctx, db, id).Return(query.Rental{}, pgx.ErrNoRows)
	q.On("GetRental", ctx, db, id).Return(rentalRow(id, rental.StatusActive), nil)

	_, err := repository.NewRentalRepository(q, db).Close(ctx, id)
	assert.ErrorIs(t, err, rental.ErrNotAwaitingPayment)
}
