package tzface

import "time"

// Clock is the time source the watchface reads on every tick.
// The process-wide clock is SystemClock; tests substitute fixed clocks.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real system clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
