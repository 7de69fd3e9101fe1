package event_test

import (
	"testing"

	"github.com/delaneyj/slotparty/event"
	"github.com/delaneyj/slotparty/signals"
	"github.com/stretchr/testify/assert"
)

type testEvent struct {
	event.Event
	x, y int
}

func TestCollectorEvent(t *testing.T) {
	var sig signals.Void1[*testEvent]
	var check1, check2, check3 bool

	sig.Connect(func(ev *testEvent) { check1 = true })
	sig.Connect(func(ev *testEvent) {
		check2 = true
		ev.SetHandled(true)
	})
	sig.Connect(func(ev *testEvent) { check3 = true })

	ev := &testEvent{}
	c := event.NewCollector(ev)
	sig.EmitCollect(c, ev)

	assert.True(t, check1)
	assert.True(t, check2)
	assert.False(t, check3)
	assert.True(t, c.Result())
}

func TestCollectorEventWithPriorities(t *testing.T) {
	var sig signals.Void1[*testEvent]
	var check1, check2 bool

	sig.Connect(func(ev *testEvent) {
		check1 = true
		ev.SetHandled(true)
	})
	sig.ConnectPriority(-1, func(ev *testEvent) { check2 = true })

	ev := &testEvent{}
	sig.EmitCollect(event.NewCollector(ev), ev)

	assert.True(t, check1)
	assert.False(t, check2)
}

func TestDispatch(t *testing.T) {
	var sig signals.Void1[*testEvent]
	seen := []string{}

	sig.ConnectPriority(1, func(ev *testEvent) { seen = append(seen, "overlay") })
	sig.Connect(func(ev *testEvent) {
		seen = append(seen, "button")
		if ev.x > 10 {
			ev.SetHandled(true)
		}
	})
	sig.ConnectPriority(-1, func(ev *testEvent) { seen = append(seen, "background") })

	assert.False(t, event.Dispatch(&sig, &testEvent{x: 1}))
	assert.Equal(t, []string{"overlay", "button", "background"}, seen)

	seen = seen[:0]
	assert.True(t, event.Dispatch(&sig, &testEvent{x: 20, y: 5}))
	assert.Equal(t, []string{"overlay", "button"}, seen)
}

func TestSetHandledCanBeUndone(t *testing.T) {
	var ev event.Event
	assert.False(t, ev.IsHandled())
	ev.SetHandled(true)
	assert.True(t, ev.IsHandled())
	ev.SetHandled(false)
	assert.False(t, ev.IsHandled())
}
