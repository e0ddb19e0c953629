// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"gioui.org/x/swipe/f32"
	"gioui.org/x/swipe/io/event"
)

// Host runs a Listener. [gioui.org/x/swipe/app.Window] implements
// Host.
type Host interface {
	// Subscribe arranges for step to run once per frame until
	// detach is called.
	Subscribe(step func(now time.Duration)) (detach func())
	// Register attaches c under tag unless a component is already
	// registered for tag, in which case that component is returned
	// along with false.
	Register(tag event.Tag, c interface{}) (interface{}, bool)
}

// Listener detects swipes. A Host runs at most one Listener.
type Listener struct {
	cfg    Config
	log    logrus.FieldLogger
	host   Host
	device Device
	// detach is non-nil while the listener is enabled.
	detach func()

	state   State
	pending pendingSwipe
	subs    []*subscriber
}

// Option configures a Listener.
type Option func(l *Listener)

// State of the swipe detector.
type State uint8

const (
	// StateAwaitingBegin is the state between swipes.
	StateAwaitingBegin State = iota
	// StateAwaitingEnd is the state while the pointer is down.
	StateAwaitingEnd
)

// pendingSwipe is the start of a swipe in progress.
type pendingSwipe struct {
	start f32.Point
	time  time.Duration
}

type subscriber struct {
	handle  func(e SwipeEvent)
	removed bool
}

// listenerTag is the registration tag of listeners.
type listenerTag struct{}

// NewListener creates and enables a listener that samples d every
// frame of h. If h already runs a listener, NewListener logs a
// warning, discards the new listener and returns the running one.
func NewListener(h Host, d Device, options ...Option) *Listener {
	l := &Listener{
		cfg:    DefaultConfig(),
		log:    logrus.StandardLogger(),
		host:   h,
		device: d,
	}
	for _, o := range options {
		o(l)
	}
	prev, ok := h.Register(listenerTag{}, l)
	if !ok {
		l.log.Warn("gesture: host already runs a swipe listener; discarding the new one")
		return prev.(*Listener)
	}
	l.Enable()
	return l
}

// WithConfig sets the thresholds.
func WithConfig(c Config) Option {
	return func(l *Listener) {
		l.cfg = c
	}
}

// MaxDuration sets the longest press that counts as a swipe.
func MaxDuration(d time.Duration) Option {
	return func(l *Listener) {
		l.cfg.MaxDuration = d
	}
}

// MinDistance sets the shortest swipe as a fraction of the
// surface width.
func MinDistance(f float32) Option {
	return func(l *Listener) {
		l.cfg.MinDistance = f
	}
}

// Logger sets the logger of the listener.
func Logger(log logrus.FieldLogger) Option {
	return func(l *Listener) {
		l.log = log
	}
}

// Config returns the thresholds in use.
func (l *Listener) Config() Config {
	return l.cfg
}

// State reports the detector state.
func (l *Listener) State() State {
	return l.state
}

// Enabled reports whether the listener is sampling input.
func (l *Listener) Enabled() bool {
	return l.detach != nil
}

// Enable starts sampling input from the next frame, in
// StateAwaitingBegin.
func (l *Listener) Enable() {
	if l.detach != nil {
		return
	}
	l.reset()
	l.detach = l.host.Subscribe(l.step)
}

// Disable stops sampling input. A swipe in progress is abandoned.
func (l *Listener) Disable() {
	if l.detach == nil {
		return
	}
	l.detach()
	l.detach = nil
	l.reset()
}

// Subscribe registers f to receive every accepted swipe, in the
// frame the swipe ends. Subscribers are called in the order they
// subscribed. Changes to the subscribers made while a swipe is
// being published take effect from the next swipe.
func (l *Listener) Subscribe(f func(e SwipeEvent)) (remove func()) {
	s := &subscriber{handle: f}
	l.subs = append(l.subs, s)
	return func() {
		if s.removed {
			return
		}
		s.removed = true
		if i := slices.Index(l.subs, s); i != -1 {
			l.subs = slices.Delete(l.subs, i, i+1)
		}
	}
}

func (l *Listener) reset() {
	l.state = StateAwaitingBegin
	l.pending = pendingSwipe{}
}

func (l *Listener) step(now time.Duration) {
	t, ok := transition(l.device).Get()
	if !ok {
		return
	}
	switch l.state {
	case StateAwaitingBegin:
		if t.Kind != PressBegan {
			return
		}
		l.pending = pendingSwipe{start: t.Position, time: now}
		l.state = StateAwaitingEnd
	case StateAwaitingEnd:
		if t.Kind != PressEnded {
			return
		}
		p := l.pending
		l.reset()
		l.end(p, t.Position, now)
	}
}

func (l *Listener) end(p pendingSwipe, pos f32.Point, now time.Duration) {
	d := now - p.time
	dir, r := l.cfg.classify(p.start, pos, d, l.device.Width())
	l.log.WithFields(logrus.Fields{
		"start":    p.start,
		"end":      pos,
		"duration": d,
		"result":   r,
	}).Debug("gesture: swipe")
	if r != accepted {
		return
	}
	e := newSwipeEvent(dir, p.start, pos)
	subs := slices.Clone(l.subs)
	for _, s := range subs {
		s.handle(e)
	}
}

func (s State) String() string {
	switch s {
	case StateAwaitingBegin:
		return "StateAwaitingBegin"
	case StateAwaitingEnd:
		return "StateAwaitingEnd"
	default:
		panic("invalid State")
	}
}
