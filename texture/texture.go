package texture

import "image"

// A Texture is an image uploaded to a render target. Ebitengine
// images satisfy this interface directly.
type Texture interface {
	Bounds() image.Rectangle
}

// Textures implementing Disposer are released when they are replaced
// in a [Cache] or when the cache is disposed.
type Disposer interface {
	Dispose()
}

// A Creator uploads surfaces as textures. It's the texture-creation
// capability of a render target.
type Creator interface {
	NewTexture(surface image.Image) (Texture, error)
}

// A CreatorFunc adapts a function to the [Creator] interface.
type CreatorFunc func(image.Image) (Texture, error)
func (self CreatorFunc) NewTexture(surface image.Image) (Texture, error) {
	return self(surface)
}

// A cached texture along its dimensions. The dimensions are queried
// once when the entry is created and never again.
type Entry struct {
	Texture Texture // Read-only.
	Width int // Read-only.
	Height int // Read-only.
}

// Returns an approximation of the entry's size in bytes, assuming
// 4 bytes per pixel.
func (self *Entry) ByteSize() int {
	return self.Width*self.Height*4
}

func dispose(texture Texture) {
	disposer, ok := texture.(Disposer)
	if ok { disposer.Dispose() }
}
