// SPDX-License-Identifier: Unlicense OR MIT

package backnav

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/x/swipe/app"
	"gioui.org/x/swipe/f32"
	"gioui.org/x/swipe/gesture"
	"gioui.org/x/swipe/io/pointer"
	"gioui.org/x/swipe/layout"
)

type scene struct {
	w    *app.Window
	area *layout.Area
	h    *Handler
	hook *test.Hook
	now  time.Duration
}

func newScene() *scene {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	log, hook := test.NewNullLogger()

	w := app.NewWindow(app.Size(1000, 2000), app.Logger(quiet))
	l := gesture.NewListener(w, w.Input(), gesture.Logger(quiet))
	area := layout.NewArea(f32.Rect(0, 0, 500, 500))
	in := NewInput(l, gesture.NewBounds(area, gesture.BoundsConfig{}))
	return &scene{
		w:    w,
		area: area,
		h:    NewHandler(w, in, log),
		hook: hook,
	}
}

func (s *scene) frame() {
	s.now += 16 * time.Millisecond
	s.w.Frame(s.now)
}

func (s *scene) swipe(start, end f32.Point) {
	s.w.Queue(pointer.Event{Kind: pointer.Press, Source: pointer.Mouse, Buttons: pointer.ButtonPrimary, Position: start})
	s.frame()
	s.w.Queue(pointer.Event{Kind: pointer.Release, Source: pointer.Mouse, Position: end})
	s.frame()
	s.frame()
}

func TestBackNavigation(t *testing.T) {
	s := newScene()
	s.frame()

	s.swipe(f32.Pt(400, 100), f32.Pt(100, 100))
	require.Equal(t, []Command{{Counter: 0}}, s.h.Detected())
	require.NotNil(t, s.hook.LastEntry())
	assert.Equal(t, "Detected: backnav.Command<0>", s.hook.LastEntry().Message)

	s.swipe(f32.Pt(100, 100), f32.Pt(450, 100))
	s.swipe(f32.Pt(600, 100), f32.Pt(300, 100))
	s.swipe(f32.Pt(400, 100), f32.Pt(350, 100))
	assert.Len(t, s.h.Detected(), 1)

	s.swipe(f32.Pt(450, 400), f32.Pt(50, 380))
	assert.Equal(t, []Command{{Counter: 0}, {Counter: 1}}, s.h.Detected())
	assert.Equal(t, 2, s.h.Counter())
}

func TestMovingAnchor(t *testing.T) {
	s := newScene()
	s.frame()
	s.area.Transform = f32.Affine2D{}.Offset(f32.Pt(500, 0))

	s.swipe(f32.Pt(400, 100), f32.Pt(100, 100))
	assert.Empty(t, s.h.Detected())

	s.swipe(f32.Pt(900, 100), f32.Pt(600, 100))
	assert.Equal(t, []Command{{Counter: 0}}, s.h.Detected())
}

func TestDisabledHandler(t *testing.T) {
	s := newScene()
	s.h.SetEnabled(false)
	s.frame()
	s.swipe(f32.Pt(400, 100), f32.Pt(100, 100))
	assert.Empty(t, s.h.Detected())

	s.h.SetEnabled(true)
	s.frame()
	s.swipe(f32.Pt(400, 100), f32.Pt(100, 100))
	assert.Equal(t, []Command{{Counter: 0}}, s.h.Detected())

	s.h.Close()
	s.swipe(f32.Pt(400, 100), f32.Pt(100, 100))
	assert.Len(t, s.h.Detected(), 1)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "backnav.Command<3>", Command{Counter: 3}.String())
	assert.Equal(t, 3, Command{Counter: 3}.Data())
}
