package scene

import "errors"
import "strconv"

var ErrDraw = errors.New("draw failed")
var ErrUnsupportedTexture = errors.New("texture not supported by canvas")

// Returned when drawing a slot fails. Draw errors are fatal: the loop
// stops as soon as one happens.
type DrawError struct {
	ID int
	Err error
}

func (self *DrawError) Error() string {
	msg := "failed to draw texture #" + strconv.Itoa(self.ID)
	if self.Err != nil { msg += ": " + self.Err.Error() }
	return msg
}

func (self *DrawError) Unwrap() error { return self.Err }
func (self *DrawError) Is(target error) bool { return target == ErrDraw }
