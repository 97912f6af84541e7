package clock

import "time"

// Clock abstracts time so lifecycle and stamping logic stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Millis returns the clock reading as unix milliseconds, the unit used for
// message timestamps and stamped task ids.
func Millis(c Clock) int64 {
	return c.Now().UnixMilli()
}
