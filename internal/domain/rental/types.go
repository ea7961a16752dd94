package rental

// Status is the lifecycle state of a rental.
//
//	active -> awaiting_payment -> closed
type Status string

const (
	StatusActive          Status = "active"
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusClosed          Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusAwaitingPayment, StatusClosed:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
