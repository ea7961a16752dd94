package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const paymentColumns = `id, user_id, rental_id, amount, method, status, session_id,
	payment_link, stripe_product_id, created_at, paid_at`

func scanPayment(row pgx.Row) (Payment, error) {
	var p Payment
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.RentalID,
		&p.Amount,
		&p.Method,
		&p.Status,
		&p.SessionID,
		&p.PaymentLink,
		&p.StripeProductID,
		&p.CreatedAt,
		&p.PaidAt,
	)
	return p, err
}

func collectPayments(rows pgx.Rows) ([]Payment, error) {
	defer rows.Close()

	var items []Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const insertPayment = `INSERT INTO payments (` + paymentColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

type InsertPaymentParams struct {
	ID              uuid.UUID
	UserID          pgtype.UUID
	RentalID        pgtype.UUID
	Amount          pgtype.Numeric
	Method          string
	Status          string
	SessionID       pgtype.Text
	PaymentLink     pgtype.Text
	StripeProductID pgtype.Text
	CreatedAt       pgtype.Timestamptz
	PaidAt          pgtype.Timestamptz
}

func (q *Queries) InsertPayment(ctx context.Context, db DBTX, arg InsertPaymentParams) error {
	_, err := db.Exec(ctx, insertPayment,
		arg.ID,
		arg.UserID,
		arg.RentalID,
		arg.Amount,
		arg.Method,
		arg.Status,
		arg.SessionID,
		arg.PaymentLink,
		arg.StripeProductID,
		arg.CreatedAt,
		arg.PaidAt,
	)
	return err
}

const getPaymentBySession = `SELECT ` + paymentColumns + ` FROM payments WHERE session_id = $1`

func (q *Queries) GetPaymentBySession(ctx context.Context, db DBTX, sessionID string) (Payment, error) {
	return scanPayment(db.QueryRow(ctx, getPaymentBySession, sessionID))
}

const getOpenPaymentByRental = `SELECT ` + paymentColumns + ` FROM payments
WHERE rental_id = $1 AND status IN ('pending', 'unpaid')
ORDER BY created_at DESC
LIMIT 1`

func (q *Queries) GetOpenPaymentByRental(ctx context.Context, db DBTX, rentalID uuid.UUID) (Payment, error) {
	return scanPayment(db.QueryRow(ctx, getOpenPaymentByRental, rentalID))
}

const updatePaymentStatus = `UPDATE payments SET status = $2, paid_at = $3 WHERE id = $1`

func (q *Queries) UpdatePaymentStatus(ctx context.Context, db DBTX, id uuid.UUID, status string, paidAt pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, updatePaymentStatus, id, status, paidAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listPendingSessionIDs = `SELECT session_id FROM payments
WHERE status IN ('pending', 'unpaid') AND session_id IS NOT NULL AND created_at < $1
ORDER BY created_at
LIMIT $2`

func (q *Queries) ListPendingSessionIDs(ctx context.Context, db DBTX, olderThan pgtype.Timestamptz, limit int32) ([]string, error) {
	rows, err := db.Query(ctx, listPendingSessionIDs, olderThan, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

const listPayments = `SELECT ` + paymentColumns + ` FROM payments
WHERE ($1::uuid IS NULL OR user_id = $1)
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`

func (q *Queries) ListPayments(ctx context.Context, db DBTX, userID pgtype.UUID, limit, offset int32) ([]Payment, error) {
	rows, err := db.Query(ctx, listPayments, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectPayments(rows)
}

const countPayments = `SELECT count(*) FROM payments WHERE ($1::uuid IS NULL OR user_id = $1)`

func (q *Queries) CountPayments(ctx context.Context, db DBTX, userID pgtype.UUID) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countPayments, userID).Scan(&n)
	return n, err
}
