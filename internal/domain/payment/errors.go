package payment

import "github.com/nataliadudina/bike-rental/internal/pkg/errs"

var (
	ErrNotFound       = errs.Sentinel("payment not found", errs.ErrNotFound)
	ErrNothingToPay   = errs.Sentinel("rental has no cost to pay", errs.ErrValidation)
	ErrInvalidStatus  = errs.Sentinel("invalid payment status", errs.ErrValidation)
	ErrInvalidAmount  = errs.Sentinel("payment amount must be positive", errs.ErrValidation)
	ErrStatusRegress  = errs.Sentinel("payment status cannot leave a final state", errs.ErrConflict)
	ErrGatewayFailure = errs.Sentinel("payment gateway request failed", errs.ErrUpstream)
	ErrRefundDue      = errs.Sentinel("payment received for a rental that is already settled; refund due", errs.ErrConflict)
)
