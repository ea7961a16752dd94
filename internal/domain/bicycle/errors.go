package bicycle

import "github.com/nataliadudina/bike-rental/internal/pkg/errs"

var (
	ErrNotFound    = errs.Sentinel("bicycle not found", errs.ErrNotFound)
	ErrUnavailable = errs.Sentinel("bicycle is not available", errs.ErrConflict)
	ErrInUse       = errs.Sentinel("bicycle is currently rented", errs.ErrConflict)

	ErrNegativeRate     = errs.Sentinel("rates must not be negative", errs.ErrValidation)
	ErrRatePrecision    = errs.Sentinel("rates allow at most two fractional digits", errs.ErrValidation)
	ErrInvalidCondition = errs.Sentinel("invalid bicycle condition", errs.ErrValidation)
	ErrInvalidKind      = errs.Sentinel("invalid bicycle type", errs.ErrValidation)
	ErrInvalidFrameType = errs.Sentinel("invalid frame type", errs.ErrValidation)
	ErrInvalidBrand     = errs.Sentinel("brand is required", errs.ErrValidation)
	ErrInvalidGears     = errs.Sentinel("gear count must be positive", errs.ErrValidation)
	ErrInvalidWheelSize = errs.Sentinel("wheel size must be positive", errs.ErrValidation)
)
