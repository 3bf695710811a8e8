package font

import "errors"
import "strconv"

// Sentinel errors. [LoadError] matches [ErrLoad] and [RasterError]
// matches [ErrRaster] when used with [errors.Is]().
var (
	ErrLoad = errors.New("font load failed")
	ErrRaster = errors.New("text rasterization failed")
	ErrContextClosed = errors.New("font context closed")
	ErrInvalidSize = errors.New("font size must be positive")
	ErrDuplicateSize = errors.New("duplicated font size")
	ErrNotInCollection = errors.New("font not present in collection")
	ErrZeroWidth = errors.New("text has zero width")
	ErrMissingGlyphs = errors.New("font has no glyphs for some runes")
)

// Returned when a font file can't be loaded at the requested size.
type LoadError struct {
	Family string
	Path string
	Size int
	Err error
}

func (self *LoadError) Error() string {
	msg := "failed to load font '" + self.Family + "'"
	if self.Path != "" { msg += " from '" + self.Path + "'" }
	msg += " at " + strconv.Itoa(self.Size) + "px"
	if self.Err != nil { msg += ": " + self.Err.Error() }
	return msg
}

func (self *LoadError) Unwrap() error { return self.Err }
func (self *LoadError) Is(target error) bool { return target == ErrLoad }

// Returned by [Face.Render]() when a string can't be turned into
// a pixel surface.
type RasterError struct {
	Family string
	Size int
	Text string
	Err error
}

func (self *RasterError) Error() string {
	msg := "failed to rasterize " + strconv.Quote(self.Text) + " with '" +
		self.Family + "' at " + strconv.Itoa(self.Size) + "px"
	if self.Err != nil { msg += ": " + self.Err.Error() }
	return msg
}

func (self *RasterError) Unwrap() error { return self.Err }
func (self *RasterError) Is(target error) bool { return target == ErrRaster }
