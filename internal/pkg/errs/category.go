package errs

import "errors"

// Category markers. Every sentinel exposed by the domain and use case layers
// carries exactly one of them so the HTTP layer can branch on cause.
var (
	ErrNotFound     = New("not found")
	ErrConflict     = New("conflict")
	ErrUnauthorized = New("unauthorized")
	ErrValidation   = New("validation failed")
	ErrUpstream     = New("upstream failure")
)

type Category string

const (
	CategoryNotFound     Category = "not_found"
	CategoryConflict     Category = "conflict"
	CategoryUnauthorized Category = "unauthorized"
	CategoryValidation   Category = "validation"
	CategoryUpstream     Category = "upstream"
	CategoryInternal     Category = "internal"
)

type sentinelError struct {
	msg      string
	category error
}

func (e *sentinelError) Error() string { return e.msg }

func (e *sentinelError) Is(target error) bool { return target == e.category }

// Sentinel builds a comparable error that also matches its category marker.
func Sentinel(msg string, category error) error {
	return &sentinelError{msg: msg, category: category}
}

type causedError struct {
	sentinel error
	cause    error
}

func (e *causedError) Error() string { return e.sentinel.Error() + ": " + e.cause.Error() }

func (e *causedError) Unwrap() error { return e.cause }

func (e *causedError) Is(target error) bool { return errors.Is(e.sentinel, target) }

// WithCause reports sentinel while keeping cause reachable through Unwrap.
func WithCause(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return &causedError{sentinel: sentinel, cause: cause}
}

func CategoryOf(err error) Category {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrNotFound):
		return CategoryNotFound
	case Is(err, ErrConflict):
		return CategoryConflict
	case Is(err, ErrUnauthorized):
		return CategoryUnauthorized
	case Is(err, ErrValidation):
		return CategoryValidation
	case Is(err, ErrUpstream):
		return CategoryUpstream
	default:
		return CategoryInternal
	}
}

// PublicMessage returns the text of the first sentinel in err's chain, so
// wrapping context added on the way up stays out of responses.
func PublicMessage(err error) (string, bool) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		switch v := e.(type) {
		case *sentinelError:
			return v.msg, true
		case *causedError:
			return v.sentinel.Error(), true
		}
	}
	return "", false
}
