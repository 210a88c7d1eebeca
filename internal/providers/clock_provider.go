package providers

import "time"

// ClockInterface supplies the current time, so retention cutoffs are
// testable without sleeping.
type ClockInterface interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func NewClock() ClockInterface {
	return systemClock{}
}
