// Package event decouples mutating handlers from their notification side
// effects: handlers publish domain events and subscribed consumers run
// inside the same transaction as the triggering write.
package event

import (
	"sync"

	"gorm.io/gorm"

	"github.com/deveshjagdale07/ConnectHire/internal/model"
)

// Event is a fact about a completed domain state transition.
type Event interface {
	Name() string
}

// RequestSent fires when a company sends a job request to a seeker.
type RequestSent struct {
	Request model.JobRequest
}

// Name implements Event.
func (RequestSent) Name() string { return "request.sent" }

// RequestAccepted fires when the targeted seeker accepts a job request.
type RequestAccepted struct {
	Request model.JobRequest
}

// Name implements Event.
func (RequestAccepted) Name() string { return "request.accepted" }

// RequestRejected fires when the targeted seeker rejects a job request.
type RequestRejected struct {
	Request model.JobRequest
}

// Name implements Event.
func (RequestRejected) Name() string { return "request.rejected" }

// ApplicationSubmitted fires when a seeker applies to a listing.
type ApplicationSubmitted struct {
	Application model.Application
}

// Name implements Event.
func (ApplicationSubmitted) Name() string { return "application.submitted" }

// Handler consumes one event. The tx is the transaction of the triggering
// write; returning an error rolls the whole mutation back.
type Handler func(tx *gorm.DB, e Event) error

// Dispatcher routes events to subscribed handlers synchronously.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for the named event.
func (d *Dispatcher) Subscribe(name string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = append(d.handlers[name], h)
}

// Dispatch delivers the event to every subscribed handler in registration
// order. The first handler error aborts delivery and is returned.
func (d *Dispatcher) Dispatch(tx *gorm.DB, e Event) error {
	d.mu.RLock()
	handlers := d.handlers[e.Name()]
	d.mu.RUnlock()

	for _, h := range handlers {
		if err := h(tx, e); err != nil {
			return err
		}
	}
	return nil
}
