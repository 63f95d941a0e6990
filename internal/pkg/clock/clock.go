package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

// Now is UTC truncated to microseconds so values survive a round trip through timestamptz.
func (RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// FixedClock always reports the same instant.
type FixedClock time.Time

func NewFixedClock(t time.Time) FixedClock {
	return FixedClock(t)
}

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
