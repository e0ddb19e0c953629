// SPDX-License-Identifier: Unlicense OR MIT

// Package backnav implements back navigation by swiping left
// across a region of the screen.
//
// A Handler arms a swipe input every frame while it is not waiting
// for a command, counts the commands it receives and arms again on
// the frame after each command.
package backnav

import (
	"fmt"
	"time"

	"github.com/samber/mo"
	"github.com/sirupsen/logrus"

	"gioui.org/x/swipe/app"
	"gioui.org/x/swipe/gesture"
	"gioui.org/x/swipe/widget"
)

// Command requests navigation back from the screen shown when the
// counter had the value Counter.
type Command struct {
	Counter int
}

// Input is the swipe input of back navigation.
type Input = widget.SwipeInput[int, Command]

// Handler counts back navigation commands.
type Handler struct {
	w       *app.Window
	input   *Input
	log     logrus.FieldLogger
	detach  func()
	enabled bool
	counter int
	// pending is the future being waited on, if any.
	pending *widget.Future[Command]
	// rearm is set between a command and the next frame.
	rearm    bool
	detected []Command
}

// Data returns the counter the command was built from.
func (c Command) Data() int {
	return c.Counter
}

func (c Command) String() string {
	return fmt.Sprintf("backnav.Command<%d>", c.Counter)
}

// Builder returns a builder that accepts left swipes within b.
func Builder(b *gesture.Bounds) widget.Builder[int, Command] {
	return func(counter int, e gesture.SwipeEvent) mo.Option[Command] {
		if e.Direction != gesture.Left || !b.Contains(e) {
			return mo.None[Command]()
		}
		return mo.Some(Command{Counter: counter})
	}
}

// NewInput returns the back navigation input for the swipes of l
// within b.
func NewInput(l *gesture.Listener, b *gesture.Bounds, options ...widget.SwipeOption) *Input {
	return widget.NewSwipeInput(l, Builder(b), options...)
}

// NewHandler returns an enabled handler running every frame of w.
func NewHandler(w *app.Window, in *Input, log logrus.FieldLogger) *Handler {
	h := &Handler{
		w:       w,
		input:   in,
		log:     log,
		enabled: true,
	}
	h.detach = w.Subscribe(h.step)
	return h
}

// SetEnabled controls whether the handler accepts commands. A
// disabled handler keeps arming its input without waiting on it.
func (h *Handler) SetEnabled(enabled bool) {
	h.enabled = enabled
}

// Counter returns the number of commands received.
func (h *Handler) Counter() int {
	return h.counter
}

// Detected returns the commands received, oldest first.
func (h *Handler) Detected() []Command {
	return h.detected
}

// Close stops the handler.
func (h *Handler) Close() {
	h.detach()
}

func (h *Handler) step(now time.Duration) {
	if h.rearm {
		return
	}
	if h.pending == nil {
		h.listen()
		return
	}
	cmd, ok := h.pending.Poll().Get()
	if !ok {
		return
	}
	h.pending = nil
	h.detected = append(h.detected, cmd)
	h.log.WithField("time", now).Infof("Detected: %v", cmd)
	h.counter++
	h.rearm = true
	h.w.Next(func(time.Duration) {
		h.rearm = false
		h.listen()
	})
}

func (h *Handler) listen() {
	if f, ok := h.input.Arm(h.counter, h.enabled).Get(); ok {
		h.pending = f
	}
}
