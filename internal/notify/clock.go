package notify

import "time"

// Clock is the time source for dedup decisions and payload timestamps.
// Tests substitute a fake to simulate window expiry without sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
