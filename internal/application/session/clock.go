package session

import "time"

// SystemClock waits on real timers.
type SystemClock struct{}

func (SystemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

func (SystemClock) Now() time.Time { return time.Now() }
