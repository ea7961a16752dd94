package readstore

import (
	"context"

	"github.com/nataliadudina/bike-rental/internal/infra"
	"github.com/nataliadudina/bike-rental/internal/infra/query"
	"github.com/nataliadudina/bike-rental/internal/pkg/pagination"
	"github.com/nataliadudina/bike-rental/internal/pkg/pgconv"
	"github.com/nataliadudina/bike-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type BicycleReadQueries interface {
	GetBicycle(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Bicycle, error)
	ListBicycles(ctx context.Context, db query.DBTX, f query.BicycleFilterParams, limit, offset int32) ([]query.Bicycle, error)
	CountBicycles(ctx context.Context, db query.DBTX, f query.BicycleFilterParams) (int64, error)
}

type BicycleReadStore struct {
	queries BicycleReadQueries
	db      query.DBTX
}

func NewBicycleReadStore(queries BicycleReadQueries, db query.DBTX) *BicycleReadStore {
	return &BicycleReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *BicycleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BicycleView, error) {
	row, err := s.queries.GetBicycle(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bicycle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find bicycle", err)
	}
	return toBicycleView(row)
}

func (s *BicycleReadStore) List(ctx context.Context, f queries.BicycleFilter, p pagination.Params) ([]*queries.BicycleView, int64, error) {
	params := query.BicycleFilterParams{
		Brand:         pgconv.StringPtrToPgtype(f.Brand),
		Condition:     pgconv.StringPtrToPgtype(f.Condition),
		Type:          pgconv.StringPtrToPgtype(f.Type),
		AvailableOnly: f.AvailableOnly,
	}
	if f.BrandContains != nil {
		escaped := query.EscapeLike(*f.BrandContains)
		params.BrandContains = pgconv.StringPtrToPgtype(&escaped)
	}

	total, err := s.queries.CountBicycles(ctx, s.db, params)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count bicycles", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	rows, err := s.queries.ListBicycles(ctx, s.db, params, int32(p.Limit()), int32(p.Offset()))
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list bicycles", err)
	}

	views := make([]*queries.BicycleView, 0, len(rows))
	for _, row := range rows {
		v, err := toBicycleView(row)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, v)
	}
	return views, total, nil
}

func toBicycleView(row query.Bicycle) (*queries.BicycleView, error) {
	hourly, err := pgconv.DecimalFromNumeric(row.HourlyRate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid hourly rate", err)
	}
	daily, err := pgconv.DecimalFromNumeric(row.DailyRate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid daily rate", err)
	}
	return &queries.BicycleView{
		ID:          row.ID,
		Brand:       row.Brand,
		Condition:   row.Condition,
		Type:        row.Type,
		Gears:       int(row.Gears),
		FrameType:   row.FrameType,
		WheelSize:   int(row.WheelSize),
		Color:       pgconv.StringPtrFromPgtype(row.Color),
		HourlyRate:  hourly,
		DailyRate:   daily,
		IsAvailable: row.IsAvailable,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
