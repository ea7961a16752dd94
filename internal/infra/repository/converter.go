package repository

import (
	"github.com/nataliadudina/bike-rental/internal/domain/bicycle"
	"github.com/nataliadudina/bike-rental/internal/domain/payment"
	"github.com/nataliadudina/bike-rental/internal/domain/rental"
	"github.com/nataliadudina/bike-rental/internal/domain/user"
	"github.com/nataliadudina/bike-rental/internal/infra/query"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/pkg/pgconv"
)

func toBicycle(row query.Bicycle) (*bicycle.Bicycle, error) {
	hourly, err := pgconv.DecimalFromNumeric(row.HourlyRate)
	if err != nil {
		return nil, errs.Wrap(err, "hourly_rate")
	}
	daily, err := pgconv.DecimalFromNumeric(row.DailyRate)
	if err != nil {
		return nil, errs.Wrap(err, "daily_rate")
	}
	rates, err := bicycle.NewRates(hourly, daily)
	if err != nil {
		return nil, err
	}

	spec := bicycle.Spec{
		Brand:     row.Brand,
		Condition: bicycle.Condition(row.Condition),
		Kind:      bicycle.Kind(row.Type),
		Gears:     int(row.Gears),
		Frame:     bicycle.FrameType(row.FrameType),
		WheelSize: int(row.WheelSize),
		Color:     pgconv.StringPtrFromPgtype(row.Color),
		Rates:     rates,
	}
	return bicycle.Reconstruct(
		row.ID,
		spec,
		row.IsAvailable,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func toRental(row query.Rental) (*rental.Rental, error) {
	status, err := rental.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	cost, err := pgconv.DecimalPtrFromNumeric(row.Cost)
	if err != nil {
		return nil, errs.Wrap(err, "cost")
	}
	return rental.Reconstruct(
		row.ID,
		pgconv.UUIDPtrFromPgtype(row.BicycleID),
		pgconv.UUIDPtrFromPgtype(row.RenterID),
		status,
		pgconv.TimeFromPgtype(row.StartedAt),
		pgconv.TimePtrFromPgtype(row.EndedAt),
		cost,
	), nil
}

func toPayment(row query.Payment) (*payment.Payment, error) {
	status, err := payment.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, errs.Wrap(err, "amount")
	}
	return payment.Reconstruct(
		row.ID,
		pgconv.UUIDPtrFromPgtype(row.UserID),
		pgconv.UUIDPtrFromPgtype(row.RentalID),
		amount,
		payment.Method(row.Method),
		status,
		pgconv.StringPtrFromPgtype(row.SessionID),
		pgconv.StringPtrFromPgtype(row.PaymentLink),
		pgconv.StringPtrFromPgtype(row.StripeProductID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.PaidAt),
	), nil
}

func toUser(row query.User) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	name, err := user.NewFullName(row.FirstName, row.LastName)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return user.Reconstruct(
		row.ID,
		email,
		name,
		row.PasswordHash,
		role,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
