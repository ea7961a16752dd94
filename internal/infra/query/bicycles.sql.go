package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bicycleColumns = `id, brand, condition, type, gears, frame_type, wheel_size, color,
	hourly_rate, daily_rate, is_available, created_at, updated_at`

func scanBicycle(row pgx.Row) (Bicycle, error) {
	var b Bicycle
	err := row.Scan(
		&b.ID,
		&b.Brand,
		&b.Condition,
		&b.Type,
		&b.Gears,
		&b.FrameType,
		&b.WheelSize,
		&b.Color,
		&b.HourlyRate,
		&b.DailyRate,
		&b.IsAvailable,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

const getBicycle = `SELECT ` + bicycleColumns + ` FROM bicycles WHERE id = $1`

func (q *Queries) GetBicycle(ctx context.Context, db DBTX, id uuid.UUID) (Bicycle, error) {
	return scanBicycle(db.QueryRow(ctx, getBicycle, id))
}

const insertBicycle = `INSERT INTO bicycles (
	id, brand, condition, type, gears, frame_type, wheel_size, color,
	hourly_rate, daily_rate, is_available, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

type InsertBicycleParams struct {
	ID          uuid.UUID
	Brand       string
	Condition   string
	Type        string
	Gears       int32
	FrameType   string
	WheelSize   int32
	Color       pgtype.Text
	HourlyRate  pgtype.Numeric
	DailyRate   pgtype.Numeric
	IsAvailable bool
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

func (q *Queries) InsertBicycle(ctx context.Context, db DBTX, arg InsertBicycleParams) error {
	_, err := db.Exec(ctx, insertBicycle,
		arg.ID,
		arg.Brand,
		arg.Condition,
		arg.Type,
		arg.Gears,
		arg.FrameType,
		arg.WheelSize,
		arg.Color,
		arg.HourlyRate,
		arg.DailyRate,
		arg.IsAvailable,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateBicycleSpec = `UPDATE bicycles SET
	brand = $2, condition = $3, type = $4, gears = $5, frame_type = $6,
	wheel_size = $7, color = $8, hourly_rate = $9, daily_rate = $10, updated_at = $11
WHERE id = $1`

type UpdateBicycleSpecParams struct {
	ID         uuid.UUID
	Brand      string
	Condition  string
	Type       string
	Gears      int32
	FrameType  string
	WheelSize  int32
	Color      pgtype.Text
	HourlyRate pgtype.Numeric
	DailyRate  pgtype.Numeric
	UpdatedAt  pgtype.Timestamptz
}

func (q *Queries) UpdateBicycleSpec(ctx context.Context, db DBTX, arg UpdateBicycleSpecParams) (int64, error) {
	tag, err := db.Exec(ctx, updateBicycleSpec,
		arg.ID,
		arg.Brand,
		arg.Condition,
		arg.Type,
		arg.Gears,
		arg.FrameType,
		arg.WheelSize,
		arg.Color,
		arg.HourlyRate,
		arg.DailyRate,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const setBicycleAvailability = `UPDATE bicycles SET is_available = $2, updated_at = $3
WHERE id = $1
RETURNING ` + bicycleColumns

func (q *Queries) SetBicycleAvailability(ctx context.Context, db DBTX, id uuid.UUID, available bool, at pgtype.Timestamptz) (Bicycle, error) {
	return scanBicycle(db.QueryRow(ctx, setBicycleAvailability, id, available, at))
}

// reserveBicycle only matches while the flag is still set, so concurrent
// callers serialize on the row and at most one sees a change.
const reserveBicycle = `UPDATE bicycles SET is_available = FALSE, updated_at = $2
WHERE id = $1 AND is_available`

func (q *Queries) ReserveBicycle(ctx context.Context, db DBTX, id uuid.UUID, at pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, reserveBicycle, id, at)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteIdleBicycle = `DELETE FROM bicycles WHERE id = $1 AND is_available`

func (q *Queries) DeleteIdleBicycle(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteIdleBicycle, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const bicycleFilter = `
WHERE ($1::text IS NULL OR brand = $1)
  AND ($2::text IS NULL OR brand ILIKE '%' || $2 || '%')
  AND ($3::text IS NULL OR condition = $3)
  AND ($4::text IS NULL OR type = $4)
  AND (NOT $5::boolean OR is_available)`

type BicycleFilterParams struct {
	Brand         pgtype.Text
	BrandContains pgtype.Text
	Condition     pgtype.Text
	Type          pgtype.Text
	AvailableOnly bool
}

const listBicycles = `SELECT ` + bicycleColumns + ` FROM bicycles` + bicycleFilter + `
ORDER BY brand, id
LIMIT $6 OFFSET $7`

func (q *Queries) ListBicycles(ctx context.Context, db DBTX, f BicycleFilterParams, limit, offset int32) ([]Bicycle, error) {
	rows, err := db.Query(ctx, listBicycles,
		f.Brand,
		f.BrandContains,
		f.Condition,
		f.Type,
		f.AvailableOnly,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Bicycle
	for rows.Next() {
		b, err := scanBicycle(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

const countBicycles = `SELECT count(*) FROM bicycles` + bicycleFilter

func (q *Queries) CountBicycles(ctx context.Context, db DBTX, f BicycleFilterParams) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countBicycles,
		f.Brand,
		f.BrandContains,
		f.Condition,
		f.Type,
		f.AvailableOnly,
	).Scan(&n)
	return n, err
}
