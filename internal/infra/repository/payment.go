package repository

import (
	"context"
	"time"

	"github.com/nataliadudina/bike-rental/internal/domain/payment"
	"github.com/nataliadudina/bike-rental/internal/infra"
	"github.com/nataliadudina/bike-rental/internal/infra/query"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentQueries interface {
	InsertPayment(ctx context.Context, db query.DBTX, arg query.InsertPaymentParams) error
	GetPaymentBySession(ctx context.Context, db query.DBTX, sessionID string) (query.Payment, error)
	GetOpenPaymentByRental(ctx context.Context, db query.DBTX, rentalID uuid.UUID) (query.Payment, error)
	UpdatePaymentStatus(ctx context.Context, db query.DBTX, id uuid.UUID, status string, paidAt pgtype.Timestamptz) (int64, error)
	ListPendingSessionIDs(ctx context.Context, db query.DBTX, olderThan pgtype.Timestamptz, limit int32) ([]string, error)
}

type PaymentRepository struct {
	queries PaymentQueries
	db      query.DBTX
}

func NewPaymentRepository(queries PaymentQueries, db query.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	err := r.queries.InsertPayment(ctx, r.db, query.InsertPaymentParams{
		ID:              p.ID(),
		UserID:          pgconv.UUIDPtrToPgtype(p.UserID()),
		RentalID:        pgconv.UUIDPtrToPgtype(p.RentalID()),
		Amount:          pgconv.DecimalToNumeric(p.Amount()),
		Method:          p.Method().String(),
		Status:          p.Status().String(),
		SessionID:       pgconv.StringPtrToPgtype(p.SessionID()),
		PaymentLink:     pgconv.StringPtrToPgtype(p.PaymentLink()),
		StripeProductID: pgconv.StringPtrToPgtype(p.ProductID()),
		CreatedAt:       pgconv.TimeToPgtype(p.CreatedAt()),
		PaidAt:          pgconv.TimePtrToPgtype(p.PaidAt()),
	})
	if err != nil {
		if _, dup := pgconv.UniqueViolation(err); dup {
			return infra.WrapRepoErr("payment session already recorded", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindBySessionID(ctx context.Context, sessionID string) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentBySession(ctx, r.db, sessionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.WithCause(payment.ErrNotFound, infra.WrapRepoErr("payment not found", err, infra.KindNotFound))
		}
		return nil, infra.WrapRepoErr("failed to find payment by session", err)
	}
	return decodePayment(row)
}

func (r *PaymentRepository) FindOpenByRental(ctx context.Context, rentalID uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.GetOpenPaymentByRental(ctx, r.db, rentalID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find open payment", err)
	}
	return decodePayment(row)
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, p *payment.Payment) error {
	n, err := r.queries.UpdatePaymentStatus(ctx, r.db, p.ID(), p.Status().String(), pgconv.TimePtrToPgtype(p.PaidAt()))
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if n == 0 {
		return payment.ErrNotFound
	}
	return nil
}

func (r *PaymentRepository) ListPendingSessions(ctx context.Context, olderThan time.Time, limit int) ([]string, error) {
	ids, err := r.queries.ListPendingSessionIDs(ctx, r.db, pgconv.TimeToPgtype(olderThan), int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending sessions", err)
	}
	return ids, nil
}

func decodePayment(row query.Payment) (*payment.Payment, error) {
	p, err := toPayment(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode payment", err)
	}
	return p, nil
}
