package core

import "time"

// Clock is the monotonic millisecond source used by the session system.
// It is sampled once per tick and the value is passed down; core types never
// read a clock themselves.
type Clock interface {
	Now() int64
}

// MonotonicClock reports milliseconds elapsed since it was created, using the
// monotonic reading carried by time.Time.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// elapsed returns now-since, clamped at zero so clock skew never produces a
// negative duration.
func elapsed(now, since int64) int64 {
	if now < since {
		return 0
	}
	return now - since
}
