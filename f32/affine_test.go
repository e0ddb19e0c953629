// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnchorPlacement(t *testing.T) {
	center := Pt(250, 250)
	for _, tc := range []struct {
		label string
		tr    Affine2D
		p     Point
		want  Point
	}{
		{label: "identity", p: Pt(10, 20), want: Pt(10, 20)},
		{label: "offset", tr: Affine2D{}.Offset(Pt(100, -50)), p: Pt(10, 20), want: Pt(110, -30)},
		{label: "scale", tr: Affine2D{}.Scale(Point{}, Pt(2, 3)), p: Pt(10, 20), want: Pt(20, 60)},
		{label: "scale around center", tr: Affine2D{}.Scale(center, Pt(2, 2)), p: Pt(500, 500), want: Pt(750, 750)},
		{label: "mirror", tr: Affine2D{}.Scale(center, Pt(-1, 1)), p: Pt(0, 0), want: Pt(500, 0)},
		{label: "rotate", tr: Affine2D{}.Rotate(Point{}, math.Pi/2), p: Pt(100, 0), want: Pt(0, 100)},
		{label: "rotate around center", tr: Affine2D{}.Rotate(center, math.Pi), p: Pt(0, 0), want: Pt(500, 500)},
		// Later calls apply after earlier ones.
		{label: "offset then scale", tr: Affine2D{}.Offset(Pt(10, 0)).Scale(Point{}, Pt(2, 2)), p: Pt(1, 1), want: Pt(22, 2)},
		{label: "scale then offset", tr: Affine2D{}.Scale(Point{}, Pt(2, 2)).Offset(Pt(10, 0)), p: Pt(1, 1), want: Pt(12, 2)},
	} {
		t.Run(tc.label, func(t *testing.T) {
			got := tc.tr.Transform(tc.p)
			assert.InDelta(t, tc.want.X, got.X, 1e-3, "x of %v", got)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-3, "y of %v", got)
		})
	}
}

func TestMirroredRectCanon(t *testing.T) {
	a := Affine2D{}.Scale(Pt(250, 250), Pt(-1, 1))
	r := Rect(0, 0, 500, 500)
	bl, tr := a.Transform(r.Min), a.Transform(r.Max)
	assert.Equal(t, Pt(500, 0), bl)
	assert.Equal(t, Pt(0, 500), tr)
	assert.Equal(t, r, Rect(bl.X, bl.Y, tr.X, tr.Y))
}

func TestAffineString(t *testing.T) {
	a := Affine2D{}.Offset(Pt(2, 3))
	assert.Equal(t, "[[1.000000 0.000000 2.000000] [0.000000 1.000000 3.000000]]", a.String())
}
