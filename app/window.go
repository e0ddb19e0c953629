// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"time"

	"github.com/sirupsen/logrus"

	"gioui.org/x/swipe/io/event"
	"gioui.org/x/swipe/io/input"
)

// Option configures a window.
type Option func(*Config)

// Config describes a Window configuration.
type Config struct {
	// Size is the size of the rendering surface in pixels.
	Size image.Point
	// Logger receives the window's diagnostics.
	Logger logrus.FieldLogger
}

// Window represents a rendering surface whose input and
// per-frame steps are driven by the host.
type Window struct {
	cfg   Config
	input input.Router
	sched scheduler
	now   time.Duration
	// components maps registration tags to their component.
	components map[event.Tag]interface{}
}

// NewWindow creates a new window for a set of window
// options.
func NewWindow(options ...Option) *Window {
	w := &Window{
		cfg: Config{
			Logger: logrus.StandardLogger(),
		},
		components: make(map[event.Tag]interface{}),
	}
	w.Option(options...)
	return w
}

// Option applies the options to the window. A new size takes
// effect at the next frame.
func (w *Window) Option(opts ...Option) {
	for _, o := range opts {
		o(&w.cfg)
	}
}

// Config returns the current window configuration.
func (w *Window) Config() Config {
	return w.cfg
}

// Queue pointer events for the next frame.
func (w *Window) Queue(events ...event.Event) {
	w.input.Queue(events...)
}

// Frame advances the window one frame. The input router observes
// the events queued since the previous frame, then every subscribed
// step runs with now as the frame time.
func (w *Window) Frame(now time.Duration) {
	w.now = now
	w.input.Frame(float32(w.cfg.Size.X))
	w.sched.frame(now)
}

// Now returns the time of the most recent frame.
func (w *Window) Now() time.Duration {
	return w.now
}

// Input returns the input router of the window.
func (w *Window) Input() *input.Router {
	return &w.input
}

// Subscribe arranges for step to run once per frame, starting
// with the next frame, until the returned function is called.
// Calling detach more than once has no effect.
func (w *Window) Subscribe(step func(now time.Duration)) (detach func()) {
	return w.sched.subscribe(step)
}

// Next arranges for f to run once, during the frame following the
// current one, after the subscribed steps of that frame.
func (w *Window) Next(f func(now time.Duration)) {
	w.sched.next = append(w.sched.next, f)
}

// Register attaches c to the window under tag. If a component is
// already registered for tag, Register leaves it in place and
// returns it along with false.
func (w *Window) Register(tag event.Tag, c interface{}) (interface{}, bool) {
	if tag == nil {
		panic("app: nil registration tag")
	}
	if prev, exists := w.components[tag]; exists {
		w.cfg.Logger.WithField("tag", tag).Debug("app: component already registered")
		return prev, false
	}
	w.components[tag] = c
	return c, true
}

// Size sets the size of the rendering surface.
func Size(width, height int) Option {
	if width < 0 {
		panic("width must be larger than or equal to 0")
	}
	if height < 0 {
		panic("height must be larger than or equal to 0")
	}
	return func(cnf *Config) {
		cnf.Size = image.Point{X: width, Y: height}
	}
}

// Logger sets the logger for window diagnostics.
func Logger(l logrus.FieldLogger) Option {
	return func(cnf *Config) {
		cnf.Logger = l
	}
}
