// Package clock provides an injectable source of the current time.
//
// All date math in the application (task age, days left, overdue days) goes
// through a Clock so tests can pin "today" to a fixed date.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// systemClock is the production Clock backed by time.Now.
type systemClock struct{}

// New returns a Clock backed by the system time.
func New() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a Clock pinned to a single instant, for deterministic tests.
type Fixed struct {
	Time time.Time
}

// NewFixed returns a Clock that always reports the given instant.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{Time: t}
}

func (f *Fixed) Now() time.Time {
	return f.Time
}
