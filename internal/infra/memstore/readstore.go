package memstore

import (
	"context"
	"sort"
	"strings"

	"github.com/nataliadudina/bike-rental/internal/domain/bicycle"
	"github.com/nataliadudina/bike-rental/internal/domain/payment"
	"github.com/nataliadudina/bike-rental/internal/domain/rental"
	"github.com/nataliadudina/bike-rental/internal/domain/user"
	"github.com/nataliadudina/bike-rental/internal/infra"
	"github.com/nataliadudina/bike-rental/internal/pkg/pagination"
	"github.com/nataliadudina/bike-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type BicycleReadStore struct{ store *Store }

func NewBicycleReadStore(s *Store) *BicycleReadStore { return &BicycleReadStore{store: s} }

func (r *BicycleReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BicycleView, error) {
	var view *queries.BicycleView
	r.store.read(func(st *state) {
		if b, ok := st.bicycles[id]; ok {
			view = bicycleView(&b)
		}
	})
	if view == nil {
		return nil, infra.WrapRepoErr("bicycle not found", nil, infra.KindNotFound)
	}
	return view, nil
}

func (r *BicycleReadStore) List(_ context.Context, f queries.BicycleFilter, p pagination.Params) ([]*queries.BicycleView, int64, error) {
	var matched []*queries.BicycleView
	r.store.read(func(st *state) {
		for _, b := range st.bicycles {
			if matchesBicycle(&b, f) {
				matched = append(matched, bicycleView(&b))
			}
		}
	})
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Brand != matched[j].Brand {
			return matched[i].Brand < matched[j].Brand
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})
	return window(matched, p), int64(len(matched)), nil
}

func matchesBicycle(b *bicycle.Bicycle, f queries.BicycleFilter) bool {
	switch {
	case f.AvailableOnly && !b.IsAvailable():
		return false
	case f.Brand != nil && b.Brand() != *f.Brand:
		return false
	case f.BrandContains != nil && !strings.Contains(strings.ToLower(b.Brand()), strings.ToLower(*f.BrandContains)):
		return false
	case f.Condition != nil && b.Condition().String() != *f.Condition:
		return false
	case f.Type != nil && b.Kind().String() != *f.Type:
		return false
	}
	return true
}

func bicycleView(b *bicycle.Bicycle) *queries.BicycleView {
	return &queries.BicycleView{
		ID:          b.ID(),
		Brand:       b.Brand(),
		Condition:   b.Condition().String(),
		Type:        b.Kind().String(),
		Gears:       b.Gears(),
		FrameType:   b.Frame().String(),
		WheelSize:   b.WheelSize(),
		Color:       b.Color(),
		HourlyRate:  b.Rates().Hourly(),
		DailyRate:   b.Rates().Daily(),
		IsAvailable: b.IsAvailable(),
		CreatedAt:   b.CreatedAt(),
	}
}

type RentalReadStore struct{ store *Store }

func NewRentalReadStore(s *Store) *RentalReadStore { return &RentalReadStore{store: s} }

func (r *RentalReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.RentalView, error) {
	var view *queries.RentalView
	r.store.read(func(st *state) {
		if rt, ok := st.rentals[id]; ok {
			view = rentalView(st, &rt)
		}
	})
	if view == nil {
		return nil, infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	return view, nil
}

func (r *RentalReadStore) List(_ context.Context, f queries.RentalFilter, p pagination.Params) ([]*queries.RentalView, int64, error) {
	var matched []*queries.RentalView
	r.store.read(func(st *state) {
		for _, rt := range st.rentals {
			if f.RenterID != nil && !sameRef(rt.RenterID(), f.RenterID) {
				continue
			}
			matched = append(matched, rentalView(st, &rt))
		}
	})
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].StartedAt.Equal(matched[j].StartedAt) {
			return matched[i].StartedAt.After(matched[j].StartedAt)
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})
	return window(matched, p), int64(len(matched)), nil
}

func rentalView(st *state, rt *rental.Rental) *queries.RentalView {
	v := &queries.RentalView{
		ID:        rt.ID(),
		BicycleID: rt.BicycleID(),
		RenterID:  rt.RenterID(),
		Status:    rt.Status().String(),
		StartedAt: rt.StartedAt(),
		EndedAt:   rt.EndedAt(),
		Cost:      rt.Cost(),
	}
	if ref := rt.BicycleID(); ref != nil {
		if b, ok := st.bicycles[*ref]; ok {
			brand := b.Brand()
			v.BicycleBrand = &brand
		}
	}
	if ref := rt.RenterID(); ref != nil {
		if u, ok := st.users[*ref]; ok {
			email := u.Email().Value()
			v.RenterEmail = &email
		}
	}
	return v
}

type PaymentReadStore struct{ store *Store }

func NewPaymentReadStore(s *Store) *PaymentReadStore { return &PaymentReadStore{store: s} }

func (r *PaymentReadStore) List(_ context.Context, f queries.PaymentFilter, p pagination.Params) ([]*queries.PaymentView, int64, error) {
	var matched []*queries.PaymentView
	r.store.read(func(st *state) {
		for _, pm := range st.payments {
			if f.UserID != nil && !sameRef(pm.UserID(), f.UserID) {
				continue
			}
			matched = append(matched, paymentView(&pm))
		}
	})
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})
	return window(matched, p), int64(len(matched)), nil
}

func paymentView(p *payment.Payment) *queries.PaymentView {
	return &queries.PaymentView{
		ID:          p.ID(),
		UserID:      p.UserID(),
		RentalID:    p.RentalID(),
		Amount:      p.Amount(),
		Method:      p.Method().String(),
		Status:      p.Status().String(),
		SessionID:   p.SessionID(),
		PaymentLink: p.PaymentLink(),
		CreatedAt:   p.CreatedAt(),
		PaidAt:      p.PaidAt(),
	}
}

type UserReadStore struct{ store *Store }

func NewUserReadStore(s *Store) *UserReadStore { return &UserReadStore{store: s} }

func (r *UserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.UserView, error) {
	var view *queries.UserView
	r.store.read(func(st *state) {
		if u, ok := st.users[id]; ok {
			view = userView(&u)
		}
	})
	if view == nil {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return view, nil
}

// List orders accounts by signup time, oldest first.
func (r *UserReadStore) List(_ context.Context, p pagination.Params) ([]*queries.UserView, int64, error) {
	var matched []*queries.UserView
	r.store.read(func(st *state) {
		for _, u := range st.users {
			matched = append(matched, userView(&u))
		}
	})
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})
	return window(matched, p), int64(len(matched)), nil
}

func userView(u *user.User) *queries.UserView {
	return &queries.UserView{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		FirstName: u.Name().First(),
		LastName:  u.Name().Last(),
		Role:      u.Role().String(),
		IsActive:  u.IsActive(),
		LastLogin: u.LastLogin(),
		CreatedAt: u.CreatedAt(),
	}
}

func window[T any](items []*T, p pagination.Params) []*T {
	start := min(p.Offset(), len(items))
	end := min(start+p.Limit(), len(items))
	return items[start:end]
}
