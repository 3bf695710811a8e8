package font

import "io/fs"
import "image"
import "image/color"

import "golang.org/x/image/font"
import "golang.org/x/image/font/opentype"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// Faces are created at 72 DPI, so sizes in points match sizes in pixels.
const faceDPI = 72

// A Face is a font file loaded at a single pixel size. Faces are
// immutable and are only valid while their [Context] remains open.
type Face struct {
	ctx *Context
	family string
	path string
	name string
	size int
	sfntFont *sfnt.Font
	face font.Face
	buffer sfnt.Buffer
	closed bool
}

// Loads the font at the given OS path with the given pixel size.
// Errors are always of type [*LoadError].
func Load(ctx *Context, family string, path string, sizePx int) (*Face, error) {
	return load(ctx, nil, family, path, sizePx)
}

// Same as [Load](), but reading the font from the given filesystem.
func LoadFS(ctx *Context, filesys fs.FS, family string, path string, sizePx int) (*Face, error) {
	if filesys == nil { panic("nil filesystem") }
	return load(ctx, filesys, family, path, sizePx)
}

func load(ctx *Context, filesys fs.FS, family string, path string, sizePx int) (*Face, error) {
	if ctx == nil { panic("nil font context") }
	loadErr := func(err error) error {
		return &LoadError{ Family: family, Path: path, Size: sizePx, Err: err }
	}
	if ctx.closed { return nil, loadErr(ErrContextClosed) }
	if sizePx <= 0 { return nil, loadErr(ErrInvalidSize) }

	parsed, err := ctx.parse(filesys, path)
	if err != nil { return nil, loadErr(err) }

	face, err := opentype.NewFace(parsed.font, &opentype.FaceOptions{
		Size: float64(sizePx),
		DPI: faceDPI,
		Hinting: font.HintingFull,
	})
	if err != nil { return nil, loadErr(err) }

	loaded := &Face {
		ctx: ctx,
		family: family,
		path: path,
		name: parsed.name,
		size: sizePx,
		sfntFont: parsed.font,
		face: face,
	}
	ctx.register(loaded)
	return loaded, nil
}

// Returns the family identifier the face was loaded with.
func (self *Face) Family() string { return self.family }

// Returns the path the face was loaded from.
func (self *Face) Path() string { return self.path }

// Returns the size of the face, in pixels.
func (self *Face) Size() int { return self.size }

// Returns the full font name stored in the font file. It may be empty.
func (self *Face) Name() string { return self.name }

// Returns the runes of the text that the face can't render.
func (self *Face) MissingRunes(text string) ([]rune, error) {
	return MissingRunes(self.sfntFont, &self.buffer, text)
}

// Rasterizes the given text into a new RGBA surface. Glyphs are
// anti-aliased and drawn in the given color over a transparent
// background. The surface is wide enough for both the advance of the
// whole string and any glyph ink overhanging it, and its height is the
// font's ascent plus descent.
//
// Errors are always of type [*RasterError]. Empty texts and texts with
// runes missing from the font are rejected.
func (self *Face) Render(text string, clr color.Color) (*image.RGBA, error) {
	if self.closed || self.ctx.closed {
		return nil, self.rasterErr(text, ErrContextClosed)
	}
	if text == "" { return nil, self.rasterErr(text, ErrZeroWidth) }

	missing, err := self.MissingRunes(text)
	if err != nil { return nil, self.rasterErr(text, err) }
	if len(missing) > 0 {
		return nil, self.rasterErr(text, &missingGlyphsErr{ missing })
	}

	metrics := self.face.Metrics()
	bounds, advance := font.BoundString(self.face, text)
	originX := 0
	if minX := bounds.Min.X.Floor(); minX < 0 { originX = -minX }
	width := advance.Ceil()
	if inkWidth := bounds.Max.X.Ceil(); inkWidth > width { width = inkWidth }
	width += originX
	height := (metrics.Ascent + metrics.Descent).Ceil()
	if width <= 0 || height <= 0 {
		return nil, self.rasterErr(text, ErrZeroWidth)
	}

	surface := image.NewRGBA(image.Rect(0, 0, width, height))
	drawer := font.Drawer {
		Dst: surface,
		Src: image.NewUniform(clr),
		Face: self.face,
		Dot: fixed.Point26_6{ X: fixed.I(originX), Y: metrics.Ascent },
	}
	drawer.DrawString(text)
	return surface, nil
}

func (self *Face) rasterErr(text string, err error) error {
	return &RasterError{ Family: self.family, Size: self.size, Text: text, Err: err }
}

func (self *Face) close() error {
	if self.closed { return nil }
	self.closed = true
	return self.face.Close()
}

type missingGlyphsErr struct { runes []rune }
func (self *missingGlyphsErr) Error() string {
	return ErrMissingGlyphs.Error() + " (" + string(self.runes) + ")"
}
func (self *missingGlyphsErr) Unwrap() error { return ErrMissingGlyphs }
