package readstore

import (
	"context"

	"github.com/nataliadudina/bike-rental/internal/infra"
	"github.com/nataliadudina/bike-rental/internal/infra/query"
	"github.com/nataliadudina/bike-rental/internal/pkg/pagination"
	"github.com/nataliadudina/bike-rental/internal/pkg/pgconv"
	"github.com/nataliadudina/bike-rental/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentReadQueries interface {
	ListPayments(ctx context.Context, db query.DBTX, userID pgtype.UUID, limit, offset int32) ([]query.Payment, error)
	CountPayments(ctx context.Context, db query.DBTX, userID pgtype.UUID) (int64, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      query.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db query.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *PaymentReadStore) List(ctx context.Context, f queries.PaymentFilter, p pagination.Params) ([]*queries.PaymentView, int64, error) {
	owner := pgconv.UUIDPtrToPgtype(f.UserID)

	total, err := s.queries.CountPayments(ctx, s.db, owner)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count payments", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	rows, err := s.queries.ListPayments(ctx, s.db, owner, int32(p.Limit()), int32(p.Offset()))
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list payments", err)
	}

	views := make([]*queries.PaymentView, 0, len(rows))
	for _, row := range rows {
		amount, err := pgconv.DecimalFromNumeric(row.Amount)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("invalid payment amount", err)
		}
		views = append(views, &queries.PaymentView{
			ID:          row.ID,
			UserID:      pgconv.UUIDPtrFromPgtype(row.UserID),
			RentalID:    pgconv.UUIDPtrFromPgtype(row.RentalID),
			Amount:      amount,
			Method:      row.Method,
			Status:      row.Status,
			SessionID:   pgconv.StringPtrFromPgtype(row.SessionID),
			PaymentLink: pgconv.StringPtrFromPgtype(row.PaymentLink),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			PaidAt:      pgconv.TimePtrFromPgtype(row.PaidAt),
		})
	}
	return views, total, nil
}
