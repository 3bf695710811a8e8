package scene

import "math"
import "image"
import "image/color"

import "golang.org/x/image/draw"
import "golang.org/x/image/math/f64"

import "github.com/tinne26/ttfslots/texture"

var _ Canvas = (*ImageCanvas)(nil)

// A software [Canvas] drawing into an RGBA image. Textures must
// implement [image.Image] (e.g. [*texture.ImageTexture]).
type ImageCanvas struct {
	Target *image.RGBA
	presented int
}

// Creates a new canvas with a target of the given size.
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{ Target: image.NewRGBA(image.Rect(0, 0, width, height)) }
}

// Returns the number of frames presented so far.
func (self *ImageCanvas) Presented() int { return self.presented }

func (self *ImageCanvas) Viewport() image.Rectangle { return self.Target.Rect }

func (self *ImageCanvas) Clear(clr color.Color) {
	draw.Draw(self.Target, self.Target.Rect, image.NewUniform(clr), image.Point{}, draw.Src)
}

func (self *ImageCanvas) Copy(tex texture.Texture, dst image.Rectangle) error {
	src, ok := tex.(image.Image)
	if !ok { return ErrUnsupportedTexture }
	bounds := src.Bounds()
	if bounds.Dx() == dst.Dx() && bounds.Dy() == dst.Dy() {
		draw.Draw(self.Target, dst, src, bounds.Min, draw.Over)
	} else {
		draw.BiLinear.Scale(self.Target, dst, src, bounds, draw.Over, nil)
	}
	return nil
}

func (self *ImageCanvas) CopyEx(tex texture.Texture, dst image.Rectangle, angle float64) error {
	src, ok := tex.(image.Image)
	if !ok { return ErrUnsupportedTexture }
	bounds := src.Bounds()
	if bounds.Empty() || dst.Empty() { return nil }
	draw.BiLinear.Transform(self.Target, rotationMatrix(bounds, dst, angle), src, bounds, draw.Over, nil)
	return nil
}

func (self *ImageCanvas) Present() { self.presented += 1 }

// Maps src into dst, rotated clockwise by angle degrees around
// the center of dst.
func rotationMatrix(src, dst image.Rectangle, angle float64) f64.Aff3 {
	sin, cos := math.Sincos(angle*math.Pi/180)
	sx := float64(dst.Dx())/float64(src.Dx())
	sy := float64(dst.Dy())/float64(src.Dy())
	srcCX := float64(src.Min.X) + float64(src.Dx())/2
	srcCY := float64(src.Min.Y) + float64(src.Dy())/2
	dstCX := float64(dst.Min.X) + float64(dst.Dx())/2
	dstCY := float64(dst.Min.Y) + float64(dst.Dy())/2

	a, b := cos*sx, -sin*sy
	d, e := sin*sx,  cos*sy
	return f64.Aff3{
		a, b, dstCX - (a*srcCX + b*srcCY),
		d, e, dstCY - (d*srcCX + e*srcCY),
	}
}
