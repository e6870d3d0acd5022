package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
	TypeCacheInvalidated = "cache.invalidated"
)

// Event is the envelope carried on every event transport.
type Event struct {
	Type    string          `json:"type"`
	Key     string          `json:"key,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
	At      time.Time       `json:"at"`
}

// New marshals payload into an Event stamped with the current time.
func New(typ, key string, payload any) (Event, error) {
	ev := Event{Type: typ, Key: key, At: time.Now().UTC()}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return Event{}, err
		}
		ev.Payload = raw
	}
	return ev, nil
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Recorder keeps published events in memory. A non-nil Err fails every publish.
type Recorder struct {
	Err error

	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, ev Event) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	return nil
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func (r *Recorder) Close() error { return nil }
