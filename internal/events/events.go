// Package events defines the change notifications the named ID registry
// publishes and a synchronous fan-out dispatcher for them.
package events

import (
	"sync"

	"github.com/amterp/nids/internal/model"
)

// Kind identifies a notification shape.
type Kind string

const (
	// KindCreated is emitted when a name is bound to an ID, including
	// renames and ID updates of an existing name.
	KindCreated Kind = "named_id_created"
	// KindRemoved is emitted when a binding is deleted.
	KindRemoved Kind = "named_id_removed"
)

// Event is a single registry change.
type Event struct {
	Kind     Kind           `json:"kind"`
	Category model.Category `json:"category"`
	Name     string         `json:"name"`
	ID       int16          `json:"id"`
}

// Created builds a KindCreated event.
func Created(c model.Category, name string, id int16) Event {
	return Event{Kind: KindCreated, Category: c, Name: name, ID: id}
}

// Removed builds a KindRemoved event.
func Removed(c model.Category, name string, id int16) Event {
	return Event{Kind: KindRemoved, Category: c, Name: name, ID: id}
}

// Notifier receives registry change notifications. Notify runs on the
// caller's stack, inside the mutating registry call.
type Notifier interface {
	Notify(e Event)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(e Event)

func (f NotifierFunc) Notify(e Event) { f(e) }

// Discard drops every event.
var Discard Notifier = NotifierFunc(func(Event) {})

// Dispatcher fans events out to its subscribers in subscription order.
type Dispatcher struct {
	mu          sync.RWMutex
	subscribers []Notifier
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe adds a subscriber to receive notifications.
func (d *Dispatcher) Subscribe(sub Notifier) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subscribers = append(d.subscribers, sub)
}

// SubscribeFunc is Subscribe for a plain function.
func (d *Dispatcher) SubscribeFunc(fn func(Event)) {
	d.Subscribe(NotifierFunc(fn))
}

// Notify implements Notifier. Subscribers are snapshotted first so a
// subscriber may (un)subscribe without deadlocking.
func (d *Dispatcher) Notify(e Event) {
	d.mu.RLock()
	subs := make([]Notifier, len(d.subscribers))
	copy(subs, d.subscribers)
	d.mu.RUnlock()

	for _, sub := range subs {
		sub.Notify(e)
	}
}

// Recorder collects events, for tests and batch consumers.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Notify appends e.
func (r *Recorder) Notify(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Reset forgets recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
