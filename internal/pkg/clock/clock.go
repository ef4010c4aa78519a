// Package clock abstracts timestamp generation so that entity timestamps
// (user and order creation, status-history entries) can be fixed in tests.
package clock

import "time"

// Clock supplies the current time to components that record timestamps.
type Clock interface {
	Now() time.Time
}

// System returns a Clock backed by the wall clock. Timestamps are in UTC.
func System() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed returns a Clock that always reports t. Intended for tests.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}
