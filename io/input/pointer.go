// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"gioui.org/x/swipe/f32"
	"gioui.org/x/swipe/io/pointer"
)

// Touch is the state of a touch point during a frame.
type Touch struct {
	ID       pointer.ID
	Phase    Phase
	Position f32.Point
}

// Phase describes what happened to a touch during a frame.
type Phase uint8

const (
	// PhaseBegan is reported in the frame a touch is pressed.
	PhaseBegan Phase = iota
	// PhaseMoved is reported when a touch moved during the frame.
	PhaseMoved
	// PhaseStationary is reported for a touch that did not change.
	PhaseStationary
	// PhaseEnded is reported in the frame a touch is released.
	PhaseEnded
	// PhaseCanceled is reported when the system cancelled the touch.
	PhaseCanceled
)

// TouchCount returns the number of touches of the current frame,
// including touches that ended during the frame.
func (q *Router) TouchCount() int {
	return len(q.touches)
}

// Touch returns the i'th touch of the current frame, ordered by
// press time. Touch panics if i is out of range.
func (q *Router) Touch(i int) Touch {
	return q.touches[i]
}

// ButtonPressed reports whether all of the buttons went down during
// the current frame.
func (q *Router) ButtonPressed(b pointer.Buttons) bool {
	return q.mouse.pressed.Contain(b)
}

// ButtonReleased reports whether all of the buttons went up during
// the current frame.
func (q *Router) ButtonReleased(b pointer.Buttons) bool {
	return q.mouse.released.Contain(b)
}

// Position returns the most recent mouse position.
func (q *Router) Position() f32.Point {
	return q.mouse.pos
}

func (q *Router) touchIndex(id pointer.ID) int {
	for i, t := range q.touches {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (q *Router) touchEvent(e pointer.Event) {
	idx := q.touchIndex(e.PointerID)
	if e.Kind == pointer.Press {
		if idx != -1 {
			// A lost release; restart the touch.
			q.touches = append(q.touches[:idx], q.touches[idx+1:]...)
		}
		q.touches = append(q.touches, Touch{ID: e.PointerID, Phase: PhaseBegan, Position: e.Position})
		return
	}
	if idx == -1 {
		return
	}
	t := &q.touches[idx]
	switch e.Kind {
	case pointer.Move:
		if t.Phase != PhaseBegan {
			t.Phase = PhaseMoved
		}
		t.Position = e.Position
	case pointer.Release:
		t.Phase = PhaseEnded
		t.Position = e.Position
	case pointer.Cancel:
		t.Phase = PhaseCanceled
	}
}

func (q *Router) mouseEvent(e pointer.Event) {
	switch e.Kind {
	case pointer.Press:
		q.mouse.pressed |= e.Buttons &^ q.mouse.buttons
		q.mouse.buttons = e.Buttons
	case pointer.Release:
		q.mouse.released |= q.mouse.buttons &^ e.Buttons
		q.mouse.buttons = e.Buttons
	case pointer.Cancel:
		q.mouse.buttons = 0
		return
	}
	q.mouse.pos = e.Position
}

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "PhaseBegan"
	case PhaseMoved:
		return "PhaseMoved"
	case PhaseStationary:
		return "PhaseStationary"
	case PhaseEnded:
		return "PhaseEnded"
	case PhaseCanceled:
		return "PhaseCanceled"
	default:
		panic("invalid Phase")
	}
}
