package readstore

import (
	"context"

	"github.com/nataliadudina/bike-rental/internal/infra"
	"github.com/nataliadudina/bike-rental/internal/infra/query"
	"github.com/nataliadudina/bike-rental/internal/pkg/pagination"
	"github.com/nataliadudina/bike-rental/internal/pkg/pgconv"
	"github.com/nataliadudina/bike-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RentalReadQueries interface {
	GetRentalView(ctx context.Context, db query.DBTX, id uuid.UUID) (query.RentalViewRow, error)
	ListRentalViews(ctx context.Context, db query.DBTX, renterID pgtype.UUID, limit, offset int32) ([]query.RentalViewRow, error)
	CountRentals(ctx context.Context, db query.DBTX, renterID pgtype.UUID) (int64, error)
}

type RentalReadStore struct {
	queries RentalReadQueries
	db      query.DBTX
}

func NewRentalReadStore(queries RentalReadQueries, db query.DBTX) *RentalReadStore {
	return &RentalReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *RentalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	row, err := s.queries.GetRentalView(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental", err)
	}
	return toRentalView(row)
}

// List orders rentals newest first.
func (s *RentalReadStore) List(ctx context.Context, f queries.RentalFilter, p pagination.Params) ([]*queries.RentalView, int64, error) {
	renter := pgconv.UUIDPtrToPgtype(f.RenterID)

	total, err := s.queries.CountRentals(ctx, s.db, renter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count rentals", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	rows, err := s.queries.ListRentalViews(ctx, s.db, renter, int32(p.Limit()), int32(p.Offset()))
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list rentals", err)
	}

	views := make([]*queries.RentalView, 0, len(rows))
	for _, row := range rows {
		v, err := toRentalView(row)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, v)
	}
	return views, total, nil
}

func toRentalView(row query.RentalViewRow) (*queries.RentalView, error) {
	cost, err := pgconv.DecimalPtrFromNumeric(row.Cost)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid rental cost", err)
	}
	return &queries.RentalView{
		ID:           row.ID,
		BicycleID:    pgconv.UUIDPtrFromPgtype(row.BicycleID),
		BicycleBrand: pgconv.StringPtrFromPgtype(row.BicycleBrand),
		RenterID:     pgconv.UUIDPtrFromPgtype(row.RenterID),
		RenterEmail:  pgconv.StringPtrFromPgtype(row.RenterEmail),
		Status:       row.Status,
		StartedAt:    pgconv.TimeFromPgtype(row.StartedAt),
		EndedAt:      pgconv.TimePtrFromPgtype(row.EndedAt),
		Cost:         cost,
	}, nil
}
