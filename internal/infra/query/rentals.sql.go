package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const rentalColumns = `id, bicycle_id, renter_id, status, started_at, ended_at, cost`

func scanRental(row pgx.Row) (Rental, error) {
	var r Rental
	err := row.Scan(
		&r.ID,
		&r.BicycleID,
		&r.RenterID,
		&r.Status,
		&r.StartedAt,
		&r.EndedAt,
		&r.Cost,
	)
	return r, err
}

const insertRental = `INSERT INTO rentals (id, bicycle_id, renter_id, status, started_at)
VALUES ($1, $2, $3, $4, $5)`

type InsertRentalParams struct {
	ID        uuid.UUID
	BicycleID pgtype.UUID
	RenterID  pgtype.UUID
	Status    string
	StartedAt pgtype.Timestamptz
}

func (q *Queries) InsertRental(ctx context.Context, db DBTX, arg InsertRentalParams) error {
	_, err := db.Exec(ctx, insertRental,
		arg.ID,
		arg.BicycleID,
		arg.RenterID,
		arg.Status,
		arg.StartedAt,
	)
	return err
}

const getRental = `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`

func (q *Queries) GetRental(ctx context.Context, db DBTX, id uuid.UUID) (Rental, error) {
	return scanRental(db.QueryRow(ctx, getRental, id))
}

const getRentalForUpdate = getRental + ` FOR UPDATE`

func (q *Queries) GetRentalForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Rental, error) {
	return scanRental(db.QueryRow(ctx, getRentalForUpdate, id))
}

const getActiveRentalByRenter = `SELECT ` + rentalColumns + ` FROM rentals
WHERE renter_id = $1 AND status = 'active'`

func (q *Queries) GetActiveRentalByRenter(ctx context.Context, db DBTX, renterID uuid.UUID) (Rental, error) {
	return scanRental(db.QueryRow(ctx, getActiveRentalByRenter, renterID))
}

const existsActiveRentalForBicycle = `SELECT EXISTS (
	SELECT 1 FROM rentals WHERE bicycle_id = $1 AND status = 'active'
)`

func (q *Queries) ExistsActiveRentalForBicycle(ctx context.Context, db DBTX, bicycleID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, existsActiveRentalForBicycle, bicycleID).Scan(&exists)
	return exists, err
}

const existsOpenRentalForRenter = `SELECT EXISTS (
	SELECT 1 FROM rentals WHERE renter_id = $1 AND status IN ('active', 'awaiting_payment')
)`

func (q *Queries) ExistsOpenRentalForRenter(ctx context.Context, db DBTX, renterID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, existsOpenRentalForRenter, renterID).Scan(&exists)
	return exists, err
}

const finalizeRental = `UPDATE rentals SET status = 'awaiting_payment', ended_at = $2, cost = $3
WHERE id = $1 AND status = 'active'
RETURNING ` + rentalColumns

type FinalizeRentalParams struct {
	ID      uuid.UUID
	EndedAt pgtype.Timestamptz
	Cost    pgtype.Numeric
}

func (q *Queries) FinalizeRental(ctx context.Context, db DBTX, arg FinalizeRentalParams) (Rental, error) {
	return scanRental(db.QueryRow(ctx, finalizeRental, arg.ID, arg.EndedAt, arg.Cost))
}

const closeRental = `UPDATE rentals SET status = 'closed'
WHERE id = $1 AND status = 'awaiting_payment'
RETURNING ` + rentalColumns

func (q *Queries) CloseRental(ctx context.Context, db DBTX, id uuid.UUID) (Rental, error) {
	return scanRental(db.QueryRow(ctx, closeRental, id))
}

const rentalViewSelect = `SELECT r.id, r.bicycle_id, r.renter_id, r.status, r.started_at, r.ended_at, r.cost,
	b.brand, u.email
FROM rentals r
LEFT JOIN bicycles b ON b.id = r.bicycle_id
LEFT JOIN users u ON u.id = r.renter_id`

func scanRentalView(row pgx.Row) (RentalViewRow, error) {
	var r RentalViewRow
	err := row.Scan(
		&r.ID,
		&r.BicycleID,
		&r.RenterID,
		&r.Status,
		&r.StartedAt,
		&r.EndedAt,
		&r.Cost,
		&r.BicycleBrand,
		&r.RenterEmail,
	)
	return r, err
}

const getRentalView = rentalViewSelect + ` WHERE r.id = $1`

func (q *Queries) GetRentalView(ctx context.Context, db DBTX, id uuid.UUID) (RentalViewRow, error) {
	return scanRentalView(db.QueryRow(ctx, getRentalView, id))
}

const listRentalViews = rentalViewSelect + `
WHERE ($1::uuid IS NULL OR r.renter_id = $1)
ORDER BY r.started_at DESC, r.id
LIMIT $2 OFFSET $3`

func (q *Queries) ListRentalViews(ctx context.Context, db DBTX, renterID pgtype.UUID, limit, offset int32) ([]RentalViewRow, error) {
	rows, err := db.Query(ctx, listRentalViews, renterID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []RentalViewRow
	for rows.Next() {
		r, err := scanRentalView(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const countRentals = `SELECT count(*) FROM rentals WHERE ($1::uuid IS NULL OR renter_id = $1)`

func (q *Queries) CountRentals(ctx context.Context, db DBTX, renterID pgtype.UUID) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countRentals, renterID).Scan(&n)
	return n, err
}
