// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"gioui.org/x/swipe/f32"
	"gioui.org/x/swipe/io/event"
	"gioui.org/x/swipe/io/pointer"
)

// Router collects pointer events and collapses them into the
// device state of a frame.
type Router struct {
	// pending is the list of events queued since the most recent
	// call to Frame, plus events deferred from earlier frames.
	pending []event.Event
	touches []Touch
	mouse   struct {
		pos     f32.Point
		buttons pointer.Buttons
		// pressed and released track the button edges of the
		// current frame.
		pressed  pointer.Buttons
		released pointer.Buttons
	}
	width float32
}

// Queue events to be applied at the next frame.
func (q *Router) Queue(events ...event.Event) {
	for _, e := range events {
		if _, ok := e.(pointer.Event); !ok {
			panic("unknown event type")
		}
		q.pending = append(q.pending, e)
	}
}

// Frame advances the device state to a new frame of the given
// surface width. Events queued since the previous frame are
// applied in order until an event would conflict with an earlier
// event of the same frame, such as the release of a pointer pressed
// during the frame or any event for a touch that ended during the
// frame. The conflicting event and every event after it are deferred
// to the next frame.
func (q *Router) Frame(width float32) {
	q.width = width
	q.mouse.pressed, q.mouse.released = 0, 0
	n := 0
	for _, t := range q.touches {
		if t.Phase == PhaseEnded || t.Phase == PhaseCanceled {
			continue
		}
		t.Phase = PhaseStationary
		q.touches[n] = t
		n++
	}
	q.touches = q.touches[:n]
	events := q.pending
	q.pending = nil
	for i, e := range events {
		pe := e.(pointer.Event)
		if q.conflicts(pe) {
			q.pending = append(q.pending, events[i:]...)
			break
		}
		q.processEvent(pe)
	}
}

// Pending reports the number of events waiting for a frame.
func (q *Router) Pending() int {
	return len(q.pending)
}

// Width returns the horizontal resolution of the rendering surface.
func (q *Router) Width() float32 {
	return q.width
}

func (q *Router) conflicts(e pointer.Event) bool {
	switch e.Source {
	case pointer.Touch:
		idx := q.touchIndex(e.PointerID)
		if idx == -1 {
			return false
		}
		ph := q.touches[idx].Phase
		if ph == PhaseEnded || ph == PhaseCanceled {
			// The touch is gone once the frame is over.
			return true
		}
		switch e.Kind {
		case pointer.Release, pointer.Cancel:
			return ph == PhaseBegan
		}
	case pointer.Mouse:
		switch e.Kind {
		case pointer.Release:
			return q.mouse.pressed&(q.mouse.buttons&^e.Buttons) != 0
		case pointer.Press:
			return q.mouse.released&(e.Buttons&^q.mouse.buttons) != 0
		}
	}
	return false
}

func (q *Router) processEvent(e pointer.Event) {
	switch e.Source {
	case pointer.Touch:
		q.touchEvent(e)
	case pointer.Mouse:
		q.mouseEvent(e)
	}
}
