package user

import (
	"regexp"
	"strings"

	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
)

var (
	ErrNotFound        = errs.Sentinel("user not found", errs.ErrNotFound)
	ErrEmailTaken      = errs.Sentinel("email already registered", errs.ErrConflict)
	ErrInactive        = errs.Sentinel("user inactive", errs.ErrUnauthorized)
	ErrNotAuthorized   = errs.Sentinel("not allowed to manage this account", errs.ErrUnauthorized)
	ErrHasOpenRentals  = errs.Sentinel("account has an unfinished rental", errs.ErrConflict)
	ErrInvalidEmail    = errs.Sentinel("invalid email format", errs.ErrValidation)
	ErrInvalidRole     = errs.Sentinel("invalid role", errs.ErrValidation)
	ErrInvalidName     = errs.Sentinel("first and last name are required", errs.ErrValidation)
	ErrPasswordTooWeak = errs.Sentinel("password must be at least 8 characters long", errs.ErrValidation)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail lower-cases the address so uniqueness is case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type FullName struct {
	first string
	last  string
}

func NewFullName(first, last string) (FullName, error) {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if first == "" || last == "" {
		return FullName{}, ErrInvalidName
	}
	return FullName{first: first, last: last}, nil
}

func (n FullName) First() string { return n.first }
func (n FullName) Last() string  { return n.last }
