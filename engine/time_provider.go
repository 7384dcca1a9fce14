package engine

import "time"

// Clock abstracts the time source so tests can step time manually
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic readings
type TimeProvider struct{}

func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
