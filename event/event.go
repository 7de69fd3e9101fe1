// Package event dispatches events through signals until a handler claims
// them. Embed Event in an event type, connect handlers to a
// signals.Void1[*MyEvent] and emit with Dispatch: handlers run in priority
// order until one calls SetHandled(true).
package event

import "github.com/delaneyj/slotparty/signals"

type Handler interface {
	IsHandled() bool
}

// Event is meant to be embedded in concrete event types.
type Event struct {
	handled bool
}

func (e *Event) SetHandled(handled bool) {
	e.handled = handled
}

func (e *Event) IsHandled() bool {
	return e.handled
}

// Collector stops an emission once its event has been handled.
type Collector[E Handler] struct {
	event E
}

func NewCollector[E Handler](event E) *Collector[E] {
	return &Collector[E]{event: event}
}

func (c *Collector[E]) Collect(signals.Void) bool {
	return !c.event.IsHandled()
}

// Result reports whether a handler claimed the event.
func (c *Collector[E]) Result() bool {
	return c.event.IsHandled()
}

// Dispatch emits ev on sig and reports whether a handler claimed it.
// Handlers after the claiming one are not invoked.
func Dispatch[E Handler](sig *signals.Void1[E], ev E) bool {
	c := NewCollector(ev)
	sig.EmitCollect(c, ev)
	return c.Result()
}
