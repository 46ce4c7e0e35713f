package domain

// Status is the compliance verdict of a daily or weekly total.
type Status int

const (
	StatusIncomplete Status = iota
	StatusNotMet
	StatusMet
	StatusExceeded
)

func (s Status) String() string {
	switch s {
	case StatusIncomplete:
		return "incomplete"
	case StatusNotMet:
		return "not_met"
	case StatusMet:
		return "met"
	case StatusExceeded:
		return "exceeded"
	default:
		return "unknown"
	}
}

// Compliant is true for met and exceeded totals.
func (s Status) Compliant() bool {
	return s == StatusMet || s == StatusExceeded
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
