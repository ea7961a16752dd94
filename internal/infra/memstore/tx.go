package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/nataliadudina/bike-rental/internal/domain/bicycle"
	"github.com/nataliadudina/bike-rental/internal/domain/payment"
	"github.com/nataliadudina/bike-rental/internal/domain/rental"
	"github.com/nataliadudina/bike-rental/internal/domain/user"
	"github.com/nataliadudina/bike-rental/internal/infra"
	"github.com/nataliadudina/bike-rental/internal/pkg/clock"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type memTx struct {
	st    *state
	clock clock.Clock
}

func (t *memTx) Bicycles() shared.BicycleRepository { return bicycleRepo{t} }
func (t *memTx) Rentals() shared.RentalRepository   { return rentalRepo{t} }
func (t *memTx) Payments() shared.PaymentRepository { return paymentRepo{t} }
func (t *memTx) Users() shared.UserRepository       { return userRepo{t} }

type bicycleRepo struct{ tx *memTx }

func (r bicycleRepo) FindByID(_ context.Context, id uuid.UUID) (*bicycle.Bicycle, error) {
	b, ok := r.tx.st.bicycles[id]
	if !ok {
		return nil, bicycle.ErrNotFound
	}
	return &b, nil
}

func (r bicycleRepo) SetAvailability(_ context.Context, id uuid.UUID, available bool) (*bicycle.Bicycle, error) {
	b, ok := r.tx.st.bicycles[id]
	if !ok {
		return nil, bicycle.ErrNotFound
	}
	b.SetAvailable(available, r.tx.clock.Now())
	r.tx.st.bicycles[id] = b
	return &b, nil
}

func (r bicycleRepo) TryReserve(_ context.Context, id uuid.UUID) (bool, error) {
	b, ok := r.tx.st.bicycles[id]
	if !ok || !b.IsAvailable() {
		return false, nil
	}
	b.SetAvailable(false, r.tx.clock.Now())
	r.tx.st.bicycles[id] = b
	return true, nil
}

func (r bicycleRepo) Create(_ context.Context, b *bicycle.Bicycle) error {
	if _, exists := r.tx.st.bicycles[b.ID()]; exists {
		return infra.WrapRepoErr("bicycle already exists", nil, infra.KindDuplicateKey)
	}
	r.tx.st.bicycles[b.ID()] = *b
	return nil
}

func (r bicycleRepo) Update(_ context.Context, b *bicycle.Bicycle) error {
	if _, exists := r.tx.st.bicycles[b.ID()]; !exists {
		return bicycle.ErrNotFound
	}
	r.tx.st.bicycles[b.ID()] = *b
	return nil
}

// Delete detaches historic rentals from the removed bicycle.
func (r bicycleRepo) Delete(_ context.Context, id uuid.UUID) error {
	b, ok := r.tx.st.bicycles[id]
	if !ok {
		return bicycle.ErrNotFound
	}
	if !b.IsAvailable() {
		return bicycle.ErrInUse
	}
	delete(r.tx.st.bicycles, id)

	for rid, rt := range r.tx.st.rentals {
		if ref := rt.BicycleID(); ref != nil && *ref == id {
			r.tx.st.rentals[rid] = *rental.Reconstruct(rt.ID(), nil, rt.RenterID(), rt.Status(), rt.StartedAt(), rt.EndedAt(), rt.Cost())
		}
	}
	return nil
}

type rentalRepo struct{ tx *memTx }

func (r rentalRepo) Create(_ context.Context, rt *rental.Rental) error {
	if ref := rt.BicycleID(); ref != nil {
		if _, ok := r.tx.st.bicycles[*ref]; !ok {
			return bicycle.ErrNotFound
		}
	}
	for _, existing := range r.tx.st.rentals {
		if !existing.IsActive() || !rt.IsActive() {
			continue
		}
		if sameRef(existing.RenterID(), rt.RenterID()) {
			return rental.ErrRenterHasActiveRental
		}
		if sameRef(existing.BicycleID(), rt.BicycleID()) {
			return bicycle.ErrUnavailable
		}
	}
	r.tx.st.rentals[rt.ID()] = *rt
	return nil
}

func (r rentalRepo) FindByID(_ context.Context, id uuid.UUID) (*rental.Rental, error) {
	rt, ok := r.tx.st.rentals[id]
	if !ok {
		return nil, rental.ErrNotFound
	}
	return &rt, nil
}

// FindByIDForUpdate needs no extra locking: the store runs one unit of work at a time.
func (r rentalRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*rental.Rental, error) {
	return r.FindByID(ctx, id)
}

func (r rentalRepo) FindActiveByRenter(_ context.Context, renterID uuid.UUID) (*rental.Rental, error) {
	for _, rt := range r.tx.st.rentals {
		if rt.IsActive() && sameRef(rt.RenterID(), &renterID) {
			return &rt, nil
		}
	}
	return nil, nil
}

func (r rentalRepo) HasActiveForBicycle(_ context.Context, bicycleID uuid.UUID) (bool, error) {
	for _, rt := range r.tx.st.rentals {
		if rt.IsActive() && sameRef(rt.BicycleID(), &bicycleID) {
			return true, nil
		}
	}
	return false, nil
}

func (r rentalRepo) HasOpenForRenter(_ context.Context, renterID uuid.UUID) (bool, error) {
	for _, rt := range r.tx.st.rentals {
		if (rt.IsActive() || rt.IsAwaitingPayment()) && sameRef(rt.RenterID(), &renterID) {
			return true, nil
		}
	}
	return false, nil
}

func (r rentalRepo) Finalize(_ context.Context, id uuid.UUID, endedAt time.Time, cost decimal.Decimal) (*rental.Rental, error) {
	rt, ok := r.tx.st.rentals[id]
	if !ok {
		return nil, rental.ErrNotFound
	}
	if err := rt.Finalize(endedAt, cost); err != nil {
		return nil, err
	}
	r.tx.st.rentals[id] = rt
	return &rt, nil
}

func (r rentalRepo) Close(_ context.Context, id uuid.UUID) (*rental.Rental, error) {
	rt, ok := r.tx.st.rentals[id]
	if !ok {
		return nil, rental.ErrNotFound
	}
	if err := rt.Close(); err != nil {
		return nil, err
	}
	r.tx.st.rentals[id] = rt
	return &rt, nil
}

type paymentRepo struct{ tx *memTx }

func (r paymentRepo) Create(_ context.Context, p *payment.Payment) error {
	if sid := p.SessionID(); sid != nil {
		for _, existing := range r.tx.st.payments {
			if other := existing.SessionID(); other != nil && *other == *sid {
				return infra.WrapRepoErr("payment session already recorded", nil, infra.KindDuplicateKey)
			}
		}
	}
	r.tx.st.payments[p.ID()] = *p
	return nil
}

func (r paymentRepo) FindBySessionID(_ context.Context, sessionID string) (*payment.Payment, error) {
	for _, p := range r.tx.st.payments {
		if sid := p.SessionID(); sid != nil && *sid == sessionID {
			return &p, nil
		}
	}
	return nil, payment.ErrNotFound
}

func (r paymentRepo) FindOpenByRental(_ context.Context, rentalID uuid.UUID) (*payment.Payment, error) {
	var found *payment.Payment
	for _, p := range r.tx.st.payments {
		if !p.Status().IsOpen() || !sameRef(p.RentalID(), &rentalID) {
			continue
		}
		if found == nil || p.CreatedAt().After(found.CreatedAt()) {
			found = &p
		}
	}
	return found, nil
}

func (r paymentRepo) UpdateStatus(_ context.Context, p *payment.Payment) error {
	if _, ok := r.tx.st.payments[p.ID()]; !ok {
		return payment.ErrNotFound
	}
	r.tx.st.payments[p.ID()] = *p
	return nil
}

func (r paymentRepo) ListPendingSessions(_ context.Context, olderThan time.Time, limit int) ([]string, error) {
	var open []payment.Payment
	for _, p := range r.tx.st.payments {
		if p.SessionID() == nil || !p.CreatedAt().Before(olderThan) {
			continue
		}
		if p.Status().IsOpen() {
			open = append(open, p)
		}
	}
	sort.Slice(open, func(i, j int) bool { return open[i].CreatedAt().Before(open[j].CreatedAt()) })

	ids := make([]string, 0, min(limit, len(open)))
	for _, p := range open {
		if len(ids) == limit {
			break
		}
		ids = append(ids, *p.SessionID())
	}
	return ids, nil
}

type userRepo struct{ tx *memTx }

func (r userRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.tx.st.users {
		if existing.Email() == u.Email() {
			return user.ErrEmailTaken
		}
	}
	r.tx.st.users[u.ID()] = *u
	return nil
}

func (r userRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.tx.st.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &u, nil
}

func (r userRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.tx.st.users {
		if u.Email().Value() == email {
			return &u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r userRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	u, ok := r.tx.st.users[id]
	if !ok {
		return user.ErrNotFound
	}
	r.tx.st.users[id] = *user.Reconstruct(u.ID(), u.Email(), u.Name(), u.PasswordHash(), u.Role(), &at, u.IsActive(), u.CreatedAt())
	return nil
}

func (r userRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := r.tx.st.users[u.ID()]; !ok {
		return user.ErrNotFound
	}
	for id, existing := range r.tx.st.users {
		if id != u.ID() && existing.Email() == u.Email() {
			return user.ErrEmailTaken
		}
	}
	r.tx.st.users[u.ID()] = *u
	return nil
}

// Delete detaches rentals and payments the way the schema's ON DELETE SET NULL does.
func (r userRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tx.st.users[id]; !ok {
		return user.ErrNotFound
	}
	delete(r.tx.st.users, id)

	for rid, rt := range r.tx.st.rentals {
		if sameRef(rt.RenterID(), &id) {
			r.tx.st.rentals[rid] = *rental.Reconstruct(rt.ID(), rt.BicycleID(), nil, rt.Status(), rt.StartedAt(), rt.EndedAt(), rt.Cost())
		}
	}
	for pid, pm := range r.tx.st.payments {
		if sameRef(pm.UserID(), &id) {
			r.tx.st.payments[pid] = *payment.Reconstruct(pm.ID(), nil, pm.RentalID(), pm.Amount(), pm.Method(), pm.Status(),
				pm.SessionID(), pm.PaymentLink(), pm.ProductID(), pm.CreatedAt(), pm.PaidAt())
		}
	}
	return nil
}

func sameRef(a, b *uuid.UUID) bool {
	return a != nil && b != nil && *a == *b
}
