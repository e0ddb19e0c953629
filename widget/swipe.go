// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"

	"gioui.org/x/swipe/gesture"
)

// Command is produced by a swipe and carries the data it was
// built from.
type Command[S any] interface {
	Data() S
}

// Builder returns the command for a swipe given the most recent
// data, or None to ignore the swipe.
type Builder[S any, C Command[S]] func(data S, e gesture.SwipeEvent) mo.Option[C]

// SwipeInput turns the swipes of a gesture.Listener into commands.
type SwipeInput[S any, C Command[S]] struct {
	listener *gesture.Listener
	build    Builder[S, C]
	log      logrus.FieldLogger
	data     S
	future   *Future[C]
	// remove is non-nil while the input is enabled.
	remove func()
}

// SwipeOption configures a SwipeInput.
type SwipeOption func(*swipeOptions)

type swipeOptions struct {
	log logrus.FieldLogger
}

// Logger sets the logger of a SwipeInput.
func Logger(l logrus.FieldLogger) SwipeOption {
	return func(o *swipeOptions) {
		o.log = l
	}
}

// NewSwipeInput returns an enabled SwipeInput that applies build
// to the swipes of l.
func NewSwipeInput[S any, C Command[S]](l *gesture.Listener, build Builder[S, C], options ...SwipeOption) *SwipeInput[S, C] {
	o := swipeOptions{log: logrus.StandardLogger()}
	for _, opt := range options {
		opt(&o)
	}
	s := &SwipeInput[S, C]{
		listener: l,
		build:    build,
		log:      o.log,
	}
	s.Enable()
	return s
}

// Arm records data for the next swipe and returns the pending
// future if interactable is true. A pending future is kept until it
// is resolved, so arming again before a command arrives returns the
// same future. When interactable is false Arm returns None, but the
// future is still tracked and may be resolved.
func (s *SwipeInput[S, C]) Arm(data S, interactable bool) mo.Option[*Future[C]] {
	s.data = data
	if s.future == nil || s.future.Resolved() {
		s.future = new(Future[C])
		s.log.Debug("widget: swipe input armed")
	}
	if !interactable {
		return mo.None[*Future[C]]()
	}
	return mo.Some(s.future)
}

// Data returns the data of the most recent Arm.
func (s *SwipeInput[S, C]) Data() S {
	return s.data
}

// Enabled reports whether s observes swipes.
func (s *SwipeInput[S, C]) Enabled() bool {
	return s.remove != nil
}

// Enable starts observing swipes.
func (s *SwipeInput[S, C]) Enable() {
	if s.remove != nil {
		return
	}
	s.remove = s.listener.Subscribe(s.handle)
}

// Disable stops observing swipes. A pending future stays
// unresolved until a swipe is observed again.
func (s *SwipeInput[S, C]) Disable() {
	if s.remove == nil {
		return
	}
	s.remove()
	s.remove = nil
}

func (s *SwipeInput[S, C]) handle(e gesture.SwipeEvent) {
	cmd, ok := s.build(s.data, e).Get()
	if !ok || s.future == nil {
		return
	}
	if s.future.Resolve(cmd) {
		s.log.WithField("direction", e.Direction).Debug("widget: swipe resolved")
	}
}
