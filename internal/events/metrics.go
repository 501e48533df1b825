package events

import (
	"sync/atomic"
	"time"
)

// Metrics tracks subject statistics using atomic operations for thread-safety
type Metrics struct {
	Published   atomic.Int64
	Delivered   atomic.Int64
	Coalesced   atomic.Int64
	Subscribers atomic.Int32
	StartTime   time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncPublished increments the published values counter
func (m *Metrics) IncPublished() {
	m.Published.Add(1)
}

// IncDelivered increments the delivered values counter
func (m *Metrics) IncDelivered() {
	m.Delivered.Add(1)
}

// IncCoalesced increments the counter of values replaced before a subscriber read them
func (m *Metrics) IncCoalesced() {
	m.Coalesced.Add(1)
}

// SetSubscribers sets the current subscriber count
func (m *Metrics) SetSubscribers(count int32) {
	m.Subscribers.Store(count)
}

// GetPublished returns the total values published
func (m *Metrics) GetPublished() int64 {
	return m.Published.Load()
}

// GetDelivered returns the total values handed to subscribers
func (m *Metrics) GetDelivered() int64 {
	return m.Delivered.Load()
}

// GetCoalesced returns the total values dropped in favour of a newer one
func (m *Metrics) GetCoalesced() int64 {
	return m.Coalesced.Load()
}

// GetSubscribers returns the current subscriber count
func (m *Metrics) GetSubscribers() int32 {
	return m.Subscribers.Load()
}

// Uptime returns how long the subject has existed
func (m *Metrics) Uptime() time.Duration {
	return time.Since(m.StartTime)
}
