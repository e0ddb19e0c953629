// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gioui.org/x/swipe/f32"
)

func TestAreaCorners(t *testing.T) {
	a := NewArea(f32.Rect(0, 0, 500, 300))
	var c [4]f32.Point
	a.WorldCorners(&c)
	assert.Equal(t, [4]f32.Point{f32.Pt(0, 0), f32.Pt(0, 300), f32.Pt(500, 300), f32.Pt(500, 0)}, c)

	a.Transform = f32.Affine2D{}.Offset(f32.Pt(10, 20)).Scale(f32.Point{}, f32.Pt(2, 2))
	a.WorldCorners(&c)
	assert.Equal(t, [4]f32.Point{f32.Pt(20, 40), f32.Pt(20, 640), f32.Pt(1020, 640), f32.Pt(1020, 40)}, c)
}

func TestAreaCornerNames(t *testing.T) {
	a := NewArea(f32.Rect(100, 0, 0, 50))
	var c [4]f32.Point
	a.WorldCorners(&c)
	assert.Equal(t, f32.Pt(0, 0), c[BottomLeft])
	assert.Equal(t, f32.Pt(0, 50), c[TopLeft])
	assert.Equal(t, f32.Pt(100, 50), c[TopRight])
	assert.Equal(t, f32.Pt(100, 0), c[BottomRight])
}
