package scene

import "image"
import "image/color"

import "github.com/tinne26/ttfslots/texture"

// A Canvas is the render target the loop draws to.
//
// Angles are given in degrees, clockwise, and rotations happen around
// the center of the destination rectangle.
type Canvas interface {
	Clear(clr color.Color)
	Viewport() image.Rectangle
	Copy(tex texture.Texture, dst image.Rectangle) error
	CopyEx(tex texture.Texture, dst image.Rectangle, angle float64) error
	Present()
}
