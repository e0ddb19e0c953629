// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"io"

	"gioui.org/x/swipe/f32"
)

// Anchor is a rectangle of the scene whose screen position may
// change from frame to frame.
type Anchor interface {
	// WorldCorners stores the screen space corners of the
	// rectangle indexed by layout.Corner.
	WorldCorners(corners *[4]f32.Point)
}

// Margin grows a rectangle on each side. Negative values
// shrink it. Each field moves the side it names in the y-up screen
// space: Top raises Max.Y and Bottom lowers Min.Y. Margins that
// added their top value to the lower edge must swap Top and Bottom.
type Margin struct {
	Left   float32 `toml:"left"`
	Right  float32 `toml:"right"`
	Top    float32 `toml:"top"`
	Bottom float32 `toml:"bottom"`
}

// BoundsConfig holds the margins of Bounds.
type BoundsConfig struct {
	Start Margin `toml:"start"`
	End   Margin `toml:"end"`
}

// Bounds restricts swipes to those that start inside the anchor
// rectangle grown by Start and end inside the anchor rectangle
// grown by End.
type Bounds struct {
	Anchor Anchor
	Start  Margin
	End    Margin

	corners [4]f32.Point
}

// NewBounds returns Bounds for the anchor with the configured
// margins.
func NewBounds(a Anchor, cfg BoundsConfig) *Bounds {
	return &Bounds{Anchor: a, Start: cfg.Start, End: cfg.End}
}

// DecodeBoundsConfig reads a TOML document with start and end
// margin tables.
func DecodeBoundsConfig(r io.Reader) (BoundsConfig, error) {
	var c BoundsConfig
	if err := decode(r, &c); err != nil {
		return BoundsConfig{}, err
	}
	return c, nil
}

// Apply returns r grown by m.
func (m Margin) Apply(r f32.Rectangle) f32.Rectangle {
	r.Min.X -= m.Left
	r.Min.Y -= m.Bottom
	r.Max.X += m.Right
	r.Max.Y += m.Top
	return r
}

// Contains reports whether e started and ended inside their
// areas. The anchor is queried on every call.
func (b *Bounds) Contains(e SwipeEvent) bool {
	start, end := b.Areas()
	return start.Contains(e.Start) && end.Contains(e.End)
}

// Areas returns the current start and end areas.
func (b *Bounds) Areas() (start, end f32.Rectangle) {
	b.Anchor.WorldCorners(&b.corners)
	anchor := f32.Rectangle{Min: b.corners[0], Max: b.corners[0]}
	for _, c := range b.corners[1:] {
		anchor = anchor.Union(f32.Rectangle{Min: c, Max: c})
	}
	return b.Start.Apply(anchor), b.End.Apply(anchor)
}
