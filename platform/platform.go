// The platform subpackage runs a [ttfslots.Demo] on a real window using
// Ebitengine. When building with the gtxt tag, Ebitengine is left out and
// frames are rendered headlessly into an image instead.
package platform

import "errors"

// Window defaults.
const (
	DefaultTitle  = "TTF SLOTS"
	DefaultWidth  = 800
	DefaultHeight = 600
)

var ErrInit = errors.New("platform initialization failed")

// Returned when the window or render target can't be set up.
// Matches [ErrInit] with [errors.Is]().
type InitError struct {
	Err error
}

func (self *InitError) Error() string {
	if self.Err == nil { return ErrInit.Error() }
	return ErrInit.Error() + ": " + self.Err.Error()
}

func (self *InitError) Unwrap() error { return self.Err }
func (self *InitError) Is(target error) bool { return target == ErrInit }

// Run configuration. Zero values are replaced by the defaults.
type Config struct {
	Title string
	Width int
	Height int

	// Only used by headless (gtxt) builds: number of frames to
	// render before quitting and optional PNG path for the last one.
	Frames int
	OutputPNG string
}

func (self Config) withDefaults() Config {
	if self.Title  == "" { self.Title  = DefaultTitle  }
	if self.Width  <= 0  { self.Width  = DefaultWidth  }
	if self.Height <= 0  { self.Height = DefaultHeight }
	return self
}
