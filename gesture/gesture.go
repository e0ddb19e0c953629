// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements directional swipe gestures.

A Listener samples the pointer device state of a window once per
frame and detects a swipe from the frame the primary touch or mouse
button goes down to the frame it goes up. Swipes that complete
within the configured duration and cover the configured fraction of
the surface width are published as SwipeEvents to every subscriber.
Bounds restricts swipes to a screen region.
*/
package gesture

import (
	"github.com/samber/mo"

	"gioui.org/x/swipe/f32"
	"gioui.org/x/swipe/io/input"
	"gioui.org/x/swipe/io/pointer"
	"gioui.org/x/swipe/option"
)

// Device is the pointer device state of a frame.
// [gioui.org/x/swipe/io/input.Router] implements Device.
type Device interface {
	// TouchCount returns the number of touches in the frame.
	TouchCount() int
	// Touch returns the i'th touch of the frame.
	Touch(i int) input.Touch
	// ButtonPressed reports whether the buttons went down during
	// the frame.
	ButtonPressed(b pointer.Buttons) bool
	// ButtonReleased reports whether the buttons went up during
	// the frame.
	ButtonReleased(b pointer.Buttons) bool
	// Position is the mouse position.
	Position() f32.Point
	// Width is the horizontal resolution of the surface.
	Width() float32
}

// Direction of a swipe.
type Direction uint8

// SwipeEvent describes a completed swipe.
type SwipeEvent struct {
	Direction Direction
	// Start and End are the screen positions where the
	// swipe began and ended.
	Start, End f32.Point
}

// Transition is a change of the pressed state of the pointer.
type Transition uint8

// PointerTransition is the transition observed in a frame.
type PointerTransition struct {
	Kind     Transition
	Position f32.Point
}

const (
	// Up is a swipe towards the top of the screen.
	Up Direction = iota + 1
	// Down is a swipe towards the bottom of the screen.
	Down
	// Left is a swipe towards the left edge of the screen.
	Left
	// Right is a swipe towards the right edge of the screen.
	Right
)

const (
	// PressBegan is reported in the frame the pointer goes down.
	PressBegan Transition = iota
	// PressEnded is reported in the frame the pointer goes up.
	PressEnded
)

// Sample returns the position of the pointer if it made the
// transition t during the frame. The primary touch is considered
// before the primary mouse button.
func Sample(d Device, t Transition) mo.Option[f32.Point] {
	if d.TouchCount() > 0 {
		touch := d.Touch(0)
		switch {
		case t == PressBegan && touch.Phase == input.PhaseBegan,
			t == PressEnded && touch.Phase == input.PhaseEnded:
			return mo.Some(touch.Position)
		}
	}
	switch {
	case t == PressBegan && d.ButtonPressed(pointer.ButtonPrimary),
		t == PressEnded && d.ButtonReleased(pointer.ButtonPrimary):
		return mo.Some(d.Position())
	}
	return mo.None[f32.Point]()
}

// transition returns the transition of the frame, if any. A frame
// reports at most one transition and PressBegan wins.
func transition(d Device) mo.Option[PointerTransition] {
	if p, ok := Sample(d, PressBegan).Get(); ok {
		return mo.Some(PointerTransition{Kind: PressBegan, Position: p})
	}
	return option.Map(Sample(d, PressEnded), func(p f32.Point) PointerTransition {
		return PointerTransition{Kind: PressEnded, Position: p}
	})
}

func newSwipeEvent(dir Direction, start, end f32.Point) SwipeEvent {
	if dir < Up || dir > Right {
		panic("gesture: swipe without direction")
	}
	return SwipeEvent{Direction: dir, Start: start, End: end}
}

func (SwipeEvent) ImplementsEvent() {}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		panic("invalid Direction")
	}
}

func (t Transition) String() string {
	switch t {
	case PressBegan:
		return "PressBegan"
	case PressEnded:
		return "PressEnded"
	default:
		panic("invalid Transition")
	}
}
