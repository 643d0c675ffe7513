// Package clock holds the auction clock policy and the time source used by resolutions.
package clock

import "time"

// Clock is the wall-clock source used by the engine
type Clock interface {
	Now() time.Time
}

// System reads the real clock in UTC
type System struct{}

// Now returns the current UTC time
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always returns the same instant. Tests move it by assigning T.
type Fixed struct {
	T time.Time
}

// Now returns the fixed instant
func (f *Fixed) Now() time.Time {
	return f.T
}

// Advance moves the fixed clock forward by d
func (f *Fixed) Advance(d time.Duration) {
	f.T = f.T.Add(d)
}

// Policy decides whether a near-expiry bid extends a lot's deadline
type Policy struct {
	TriggerMinutes int
	ExtendMinutes  int
}

// ShouldExtend reports whether a bid arriving at now lands inside the trigger window.
// A bid exactly at endAt still qualifies; a bid after endAt does not.
func (p Policy) ShouldExtend(endAt, now time.Time) bool {
	if p.TriggerMinutes <= 0 || p.ExtendMinutes <= 0 {
		return false
	}
	remaining := endAt.Sub(now)
	return remaining >= 0 && remaining <= time.Duration(p.TriggerMinutes)*time.Minute
}

// NewEndAt pushes endAt forward by the configured extension
func (p Policy) NewEndAt(endAt time.Time) time.Time {
	return endAt.Add(time.Duration(p.ExtendMinutes) * time.Minute)
}
