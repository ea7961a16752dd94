package repository

import (
	"context"

	"github.com/nataliadudina/bike-rental/internal/domain/bicycle"
	"github.com/nataliadudina/bike-rental/internal/infra"
	"github.com/nataliadudina/bike-rental/internal/infra/query"
	"github.com/nataliadudina/bike-rental/internal/pkg/clock"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BicycleQueries interface {
	GetBicycle(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Bicycle, error)
	InsertBicycle(ctx context.Context, db query.DBTX, arg query.InsertBicycleParams) error
	UpdateBicycleSpec(ctx context.Context, db query.DBTX, arg query.UpdateBicycleSpecParams) (int64, error)
	SetBicycleAvailability(ctx context.Context, db query.DBTX, id uuid.UUID, available bool, at pgtype.Timestamptz) (query.Bicycle, error)
	ReserveBicycle(ctx context.Context, db query.DBTX, id uuid.UUID, at pgtype.Timestamptz) (int64, error)
	DeleteIdleBicycle(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type BicycleRepository struct {
	queries BicycleQueries
	db      query.DBTX
	clock   clock.Clock
}

func NewBicycleRepository(queries BicycleQueries, db query.DBTX, clk clock.Clock) *BicycleRepository {
	return &BicycleRepository{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

func (r *BicycleRepository) FindByID(ctx context.Context, id uuid.UUID) (*bicycle.Bicycle, error) {
	row, err := r.queries.GetBicycle(ctx, r.db, id)
	if err != nil {
		return nil, bicycleLookupErr(err)
	}
	b, err := toBicycle(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode bicycle", err)
	}
	return b, nil
}

func (r *BicycleRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*bicycle.Bicycle, error) {
	row, err := r.queries.SetBicycleAvailability(ctx, r.db, id, available, pgconv.TimeToPgtype(r.clock.Now()))
	if err != nil {
		return nil, bicycleLookupErr(err)
	}
	b, err := toBicycle(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode bicycle", err)
	}
	return b, nil
}

func (r *BicycleRepository) TryReserve(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.queries.ReserveBicycle(ctx, r.db, id, pgconv.TimeToPgtype(r.clock.Now()))
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve bicycle", err)
	}
	return n == 1, nil
}

func (r *BicycleRepository) Create(ctx context.Context, b *bicycle.Bicycle) error {
	rates := b.Rates()
	err := r.queries.InsertBicycle(ctx, r.db, query.InsertBicycleParams{
		ID:          b.ID(),
		Brand:       b.Brand(),
		Condition:   b.Condition().String(),
		Type:        b.Kind().String(),
		Gears:       int32(b.Gears()),
		FrameType:   b.Frame().String(),
		WheelSize:   int32(b.WheelSize()),
		Color:       pgconv.StringPtrToPgtype(b.Color()),
		HourlyRate:  pgconv.DecimalToNumeric(rates.Hourly()),
		DailyRate:   pgconv.DecimalToNumeric(rates.Daily()),
		IsAvailable: b.IsAvailable(),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		if _, dup := pgconv.UniqueViolation(err); dup {
			return infra.WrapRepoErr("bicycle already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create bicycle", err)
	}
	return nil
}

func (r *BicycleRepository) Update(ctx context.Context, b *bicycle.Bicycle) error {
	rates := b.Rates()
	n, err := r.queries.UpdateBicycleSpec(ctx, r.db, query.UpdateBicycleSpecParams{
		ID:         b.ID(),
		Brand:      b.Brand(),
		Condition:  b.Condition().String(),
		Type:       b.Kind().String(),
		Gears:      int32(b.Gears()),
		FrameType:  b.Frame().String(),
		WheelSize:  int32(b.WheelSize()),
		Color:      pgconv.StringPtrToPgtype(b.Color()),
		HourlyRate: pgconv.DecimalToNumeric(rates.Hourly()),
		DailyRate:  pgconv.DecimalToNumeric(rates.Daily()),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update bicycle", err)
	}
	if n == 0 {
		return bicycle.ErrNotFound
	}
	return nil
}

// Delete only removes idle bicycles; a rented one yields bicycle.ErrInUse.
func (r *BicycleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteIdleBicycle(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete bicycle", err)
	}
	if n == 1 {
		return nil
	}
	if _, err := r.queries.GetBicycle(ctx, r.db, id); err != nil {
		return bicycleLookupErr(err)
	}
	return bicycle.ErrInUse
}

func bicycleLookupErr(err error) error {
	if pgconv.IsNoRows(err) {
		return errs.WithCause(bicycle.ErrNotFound, infra.WrapRepoErr("bicycle not found", err, infra.KindNotFound))
	}
	return infra.WrapRepoErr("failed to load bicycle", err)
}
