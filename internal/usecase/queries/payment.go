package queries

import (
	"context"

	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/pkg/pagination"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"
)

//go:generate mockgen -source=payment.go -destination=../../mock/queriesmock/payment.go -package=queriesmock
type PaymentQueries interface {
	// List shows moderators every payment and other users their own.
	List(ctx context.Context, actor shared.Actor, p pagination.Params) (*Page[PaymentView], error)
}

type PaymentReadStore interface {
	List(ctx context.Context, f PaymentFilter, p pagination.Params) ([]*PaymentView, int64, error)
}

type paymentQueriesImpl struct {
	readStore PaymentReadStore
}

func NewPaymentQueries(readStore PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{readStore: readStore}
}

func (q *paymentQueriesImpl) List(ctx context.Context, actor shared.Actor, p pagination.Params) (*Page[PaymentView], error) {
	var f PaymentFilter
	if !actor.IsModerator() {
		userID := actor.UserID
		f.UserID = &userID
	}

	items, total, err := q.readStore.List(ctx, f, p)
	if err != nil {
		return nil, errs.Wrap(err, "list payments")
	}
	return newPage(items, p, total), nil
}
