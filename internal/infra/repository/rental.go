package repository

import (
	"context"
	"time"

	"github.com/nataliadudina/bike-rental/internal/domain/bicycle"
	"github.com/nataliadudina/bike-rental/internal/domain/rental"
	"github.com/nataliadudina/bike-rental/internal/infra"
	"github.com/nataliadudina/bike-rental/internal/infra/query"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	constraintOneActivePerRenter  = "rentals_one_active_per_renter"
	constraintOneActivePerBicycle = "rentals_one_active_per_bicycle"
)

type RentalQueries interface {
	InsertRental(ctx context.Context, db query.DBTX, arg query.InsertRentalParams) error
	GetRental(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Rental, error)
	GetRentalForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Rental, error)
	GetActiveRentalByRenter(ctx context.Context, db query.DBTX, renterID uuid.UUID) (query.Rental, error)
	ExistsActiveRentalForBicycle(ctx context.Context, db query.DBTX, bicycleID uuid.UUID) (bool, error)
	ExistsOpenRentalForRenter(ctx context.Context, db query.DBTX, renterID uuid.UUID) (bool, error)
	FinalizeRental(ctx context.Context, db query.DBTX, arg query.FinalizeRentalParams) (query.Rental, error)
	CloseRental(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Rental, error)
}

type RentalRepository struct {
	queries RentalQueries
	db      query.DBTX
}

func NewRentalRepository(queries RentalQueries, db query.DBTX) *RentalRepository {
	return &RentalRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RentalRepository) Create(ctx context.Context, rt *rental.Rental) error {
	err := r.queries.InsertRental(ctx, r.db, query.InsertRentalParams{
		ID:        rt.ID(),
		BicycleID: pgconv.UUIDPtrToPgtype(rt.BicycleID()),
		RenterID:  pgconv.UUIDPtrToPgtype(rt.RenterID()),
		Status:    rt.Status().String(),
		StartedAt: pgconv.TimeToPgtype(rt.StartedAt()),
	})
	if err == nil {
		return nil
	}

	if constraint, dup := pgconv.UniqueViolation(err); dup {
		cause := infra.WrapRepoErr("active rental already exists", err, infra.KindDuplicateKey)
		switch constraint {
		case constraintOneActivePerRenter:
			return errs.WithCause(rental.ErrRenterHasActiveRental, cause)
		case constraintOneActivePerBicycle:
			return errs.WithCause(bicycle.ErrUnavailable, cause)
		}
		return cause
	}
	if pgconv.IsForeignKeyViolation(err) {
		return errs.WithCause(bicycle.ErrNotFound, infra.WrapRepoErr("rental references missing row", err, infra.KindForeignKeyViolated))
	}
	return infra.WrapRepoErr("failed to create rental", err)
}

func (r *RentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*rental.Rental, error) {
	row, err := r.queries.GetRental(ctx, r.db, id)
	return r.decode(row, err)
}

func (r *RentalRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*rental.Rental, error) {
	row, err := r.queries.GetRentalForUpdate(ctx, r.db, id)
	return r.decode(row, err)
}

func (r *RentalRepository) FindActiveByRenter(ctx context.Context, renterID uuid.UUID) (*rental.Rental, error) {
	row, err := r.queries.GetActiveRentalByRenter(ctx, r.db, renterID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find active rental", err)
	}
	return r.decode(row, nil)
}

func (r *RentalRepository) HasActiveForBicycle(ctx context.Context, bicycleID uuid.UUID) (bool, error) {
	exists, err := r.queries.ExistsActiveRentalForBicycle(ctx, r.db, bicycleID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active rentals", err)
	}
	return exists, nil
}

func (r *RentalRepository) HasOpenForRenter(ctx context.Context, renterID uuid.UUID) (bool, error) {
	exists, err := r.queries.ExistsOpenRentalForRenter(ctx, r.db, renterID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check open rentals", err)
	}
	return exists, nil
}

func (r *RentalRepository) Finalize(ctx context.Context, id uuid.UUID, endedAt time.Time, cost decimal.Decimal) (*rental.Rental, error) {
	row, err := r.queries.FinalizeRental(ctx, r.db, query.FinalizeRentalParams{
		ID:      id,
		EndedAt: pgconv.TimeToPgtype(endedAt),
		Cost:    pgconv.DecimalToNumeric(cost),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, r.transitionErr(ctx, id, rental.ErrAlreadyClosed)
		}
		return nil, infra.WrapRepoErr("failed to finalize rental", err)
	}
	return r.decode(row, nil)
}

func (r *RentalRepository) Close(ctx context.Context, id uuid.UUID) (*rental.Rental, error) {
	row, err := r.queries.CloseRental(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, r.transitionErr(ctx, id, rental.ErrNotAwaitingPayment)
		}
		return nil, infra.WrapRepoErr("failed to close rental", err)
	}
	return r.decode(row, nil)
}

// transitionErr tells a missing rental apart from one in the wrong state.
func (r *RentalRepository) transitionErr(ctx context.Context, id uuid.UUID, wrongState error) error {
	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}
	return wrongState
}

func (r *RentalRepository) decode(row query.Rental, err error) (*rental.Rental, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.WithCause(rental.ErrNotFound, infra.WrapRepoErr("rental not found", err, infra.KindNotFound))
		}
		return nil, infra.WrapRepoErr("failed to load rental", err)
	}
	rt, err := toRental(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode rental", err)
	}
	return rt, nil
}
