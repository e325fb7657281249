package clock

import (
	"sync"
	"time"
)

// Clock provides the current time to services. The accrual math never reads
// the clock itself; callers read it once and pass Unix seconds down.
type Clock interface {
	// Now returns the current time
	Now() time.Time
}

// Unix returns c.Now() as Unix seconds
func Unix(c Clock) int64 {
	return c.Now().Unix()
}

// RealClock uses the actual system time
type RealClock struct{}

// NewRealClock creates a new RealClock instance
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// SimulatedClock is a manually driven clock for tests and what-if quotes
type SimulatedClock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewSimulatedClock creates a new SimulatedClock starting at the given time
func NewSimulatedClock(start time.Time) *SimulatedClock {
	return &SimulatedClock{current: start}
}

// NewSimulatedClockAt creates a SimulatedClock at the given Unix seconds
func NewSimulatedClockAt(unix int64) *SimulatedClock {
	return NewSimulatedClock(time.Unix(unix, 0).UTC())
}

// Now returns the simulated current time
func (c *SimulatedClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Advance moves the simulated time forward by the given duration
func (c *SimulatedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	c.mu.Unlock()
}

// AdvanceHours moves the simulated time forward by whole hours
func (c *SimulatedClock) AdvanceHours(hours int) {
	c.Advance(time.Duration(hours) * time.Hour)
}

// Set sets the simulated time to a specific value
func (c *SimulatedClock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}
