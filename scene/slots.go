package scene

import "image"

// An Anchor places a texture on the canvas. Fixed anchors give the
// top-left corner directly, while centered anchors center the texture
// on the viewport and then apply the offset.
type Anchor struct {
	X, Y int
	Centered bool
}

// Returns a fixed anchor with the texture's top-left corner at (x, y).
func At(x, y int) Anchor { return Anchor{ X: x, Y: y } }

// Returns an anchor relative to the viewport center.
func FromCenter(dx, dy int) Anchor { return Anchor{ X: dx, Y: dy, Centered: true } }

// Returns the destination rectangle for a texture of the given size.
func (self Anchor) Rect(viewport image.Rectangle, width, height int) image.Rectangle {
	x, y := self.X, self.Y
	if self.Centered {
		cx := viewport.Min.X + viewport.Dx()/2
		cy := viewport.Min.Y + viewport.Dy()/2
		x += cx - width/2
		y += cy - height/2
	}
	return image.Rect(x, y, x + width, y + height)
}

// A Slot describes where and how to draw a cached texture.
type Slot struct {
	ID int
	Anchor Anchor
	Rotates bool
}

// The slots drawn by the demo, in drawing order.
var DefaultSlots = []Slot {
	{ ID: 0, Anchor: At(23, 404) },
	{ ID: 1, Anchor: At(323, 104), Rotates: true },
	{ ID: 2, Anchor: FromCenter(80, 144), Rotates: true },
}
