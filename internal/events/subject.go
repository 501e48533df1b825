// Package events provides the in-process publish/subscribe primitive used to
// push live snapshots from the store to its observers.
package events

import (
	"context"
	"sync"
)

// Subject holds a current value and broadcasts every new value to all
// active subscribers.
//
// Each subscriber has a single-slot buffer. When a subscriber falls behind,
// the pending value is replaced by the newer one, so slow readers always
// see the latest state but may miss intermediate ones.
type Subject[T any] struct {
	mu       sync.Mutex
	value    T
	hasValue bool
	subs     map[chan T]struct{}
	closed   bool
	done     chan struct{}
	metrics  *Metrics
}

// NewSubject creates a subject with no current value
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{
		subs:    make(map[chan T]struct{}),
		done:    make(chan struct{}),
		metrics: NewMetrics(),
	}
}

// NewSubjectWithValue creates a subject seeded with an initial value
func NewSubjectWithValue[T any](v T) *Subject[T] {
	s := NewSubject[T]()
	s.value = v
	s.hasValue = true
	return s
}

// Publish stores v as the current value and delivers it to every subscriber.
// It never blocks. Publishing on a closed subject is a no-op.
func (s *Subject[T]) Publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.value = v
	s.hasValue = true
	s.metrics.IncPublished()

	for ch := range s.subs {
		s.deliver(ch, v)
	}
}

// deliver replaces any pending value in ch with v. Must hold s.mu.
func (s *Subject[T]) deliver(ch chan T, v T) {
	select {
	case ch <- v:
		s.metrics.IncDelivered()
		return
	default:
	}

	// Slot is full: drop the stale value. Only Publish sends, and it holds
	// the lock, so the slot is free after the drain.
	select {
	case <-ch:
		s.metrics.IncCoalesced()
	default:
	}
	ch <- v
	s.metrics.IncDelivered()
}

// Subscribe returns a channel that first yields the current value (if any)
// and then every published value. The channel is closed when ctx is done or
// the subject is closed.
func (s *Subject[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch
	}
	if s.hasValue {
		ch <- s.value
		s.metrics.IncDelivered()
	}
	s.subs[ch] = struct{}{}
	s.metrics.SetSubscribers(int32(len(s.subs)))
	s.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			s.unsubscribe(ch)
		case <-s.done:
		}
	}()

	return ch
}

func (s *Subject[T]) unsubscribe(ch chan T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subs[ch]; !ok {
		return
	}
	delete(s.subs, ch)
	close(ch)
	s.metrics.SetSubscribers(int32(len(s.subs)))
}

// Value returns the current value and whether one has been published
func (s *Subject[T]) Value() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.hasValue
}

// SubscriberCount returns the number of active subscribers
func (s *Subject[T]) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Metrics returns the delivery counters for this subject
func (s *Subject[T]) Metrics() *Metrics {
	return s.metrics
}

// Close closes every subscriber channel. Later Subscribe calls return a
// closed channel and later Publish calls are ignored. Safe to call twice.
func (s *Subject[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.done)

	for ch := range s.subs {
		close(ch)
	}
	clear(s.subs)
	s.metrics.SetSubscribers(0)
}
