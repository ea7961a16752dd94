package payment

type Method string

const (
	MethodCash     Method = "cash"
	MethodTransfer Method = "transfer"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	return m == MethodCash || m == MethodTransfer
}

// Status mirrors the gateway's view of a checkout session.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusUnpaid  Status = "unpaid"
	StatusExpired Status = "expired"
	// StatusRefundDue marks money taken for a rental that was already settled.
	StatusRefundDue Status = "refund_due"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusUnpaid, StatusExpired, StatusRefundDue:
		return true
	default:
		return false
	}
}

// IsFinal reports whether the session can no longer change.
func (s Status) IsFinal() bool {
	return s == StatusPaid || s == StatusExpired || s == StatusRefundDue
}

// IsOpen reports whether the customer can still complete the checkout.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusUnpaid
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
