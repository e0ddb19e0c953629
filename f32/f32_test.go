// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"math"
	"testing"
)

func TestRectangleContains(t *testing.T) {
	r := Rect(0, 0, 500, 500)
	for _, tc := range []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(250, 499), true},
		{Pt(500, 100), false},
		{Pt(100, 500), false},
		{Pt(600, 100), false},
		{Pt(-1, 100), false},
	} {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r, tc.p, got, tc.want)
		}
	}
}

func TestRectCanon(t *testing.T) {
	r := Rect(10, 20, 0, 5)
	if want := (Rectangle{Min: Pt(0, 5), Max: Pt(10, 20)}); r != want {
		t.Errorf("got %v, want %v", r, want)
	}
}

func TestPointLen(t *testing.T) {
	p := Pt(800, 520).Sub(Pt(100, 500)).Div(1000)
	if got, want := p.Len(), float32(math.Hypot(0.7, 0.02)); math.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("got %v, want %v", got, want)
	}
}
