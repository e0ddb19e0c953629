// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements scene rectangles that gestures can be
anchored to.

An Area is a rectangle in its own coordinate system placed on the
screen by an affine transform. Animating the transform moves the
area without the need to notify anything that observes it.
*/
package layout

import (
	"gioui.org/x/swipe/f32"
)

// Corner indexes the corners of a rectangle in screen space.
type Corner uint8

const (
	// BottomLeft is the corner at the rectangle's minimum.
	BottomLeft Corner = iota
	// TopLeft is the corner at minimum x and maximum y.
	TopLeft
	// TopRight is the corner at the rectangle's maximum.
	TopRight
	// BottomRight is the corner at maximum x and minimum y.
	BottomRight
)

// Area is a transformed rectangle of the scene.
type Area struct {
	// Rect is the rectangle in local coordinates.
	Rect f32.Rectangle
	// Transform maps local coordinates to the screen.
	Transform f32.Affine2D
}

// NewArea returns an area covering the screen rectangle r.
func NewArea(r f32.Rectangle) *Area {
	return &Area{Rect: r}
}

// WorldCorners stores the screen space corners of the area indexed
// by Corner. Under a rotation or mirror the names refer to the local
// rectangle.
func (a *Area) WorldCorners(corners *[4]f32.Point) {
	r := a.Rect.Canon()
	corners[BottomLeft] = a.Transform.Transform(r.Min)
	corners[TopLeft] = a.Transform.Transform(f32.Pt(r.Min.X, r.Max.Y))
	corners[TopRight] = a.Transform.Transform(r.Max)
	corners[BottomRight] = a.Transform.Transform(f32.Pt(r.Max.X, r.Min.Y))
}
