package texture

import "image"

import "golang.org/x/image/draw"

// An ImageCreator "uploads" surfaces by copying them into new
// [*ImageTexture] values. Used for software rendering and tests.
type ImageCreator struct {
	uploads int
}

// Returns the number of textures created so far.
func (self *ImageCreator) Uploads() int { return self.uploads }

func (self *ImageCreator) NewTexture(surface image.Image) (Texture, error) {
	bounds := surface.Bounds()
	if bounds.Empty() { return nil, ErrEmptySurface }

	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Rect, surface, bounds.Min, draw.Src)
	self.uploads += 1
	return &ImageTexture{ RGBA: rgba }, nil
}

// An in-memory texture. Disposed textures drop their pixels.
type ImageTexture struct {
	*image.RGBA
	disposed bool
}

func (self *ImageTexture) Dispose() {
	self.disposed = true
	self.RGBA = &image.RGBA{}
}

// Returns whether the texture has been disposed.
func (self *ImageTexture) Disposed() bool { return self.disposed }
