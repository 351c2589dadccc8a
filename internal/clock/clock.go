package clock

import (
	"time"
)

// Clock lets callers substitute time in tests.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// RealClock implements Clock using the time package
type RealClock struct{}

func (RealClock) Now() time.Time                         { return time.Now() }
func (RealClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// DateWritten formats t the way DATE-WRITTEN paragraphs are written.
func DateWritten(t time.Time) string {
	return t.Format("01/02/2006")
}
