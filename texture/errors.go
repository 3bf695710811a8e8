package texture

import "errors"
import "strconv"

var ErrUpload = errors.New("texture upload failed")
var ErrEmptySurface = errors.New("empty surface")

// Returned by [Cache.Insert]() when a surface can't be uploaded.
// Matches [ErrUpload] with [errors.Is]().
type UploadError struct {
	ID int
	Err error
}

func (self *UploadError) Error() string {
	msg := "failed to upload texture #" + strconv.Itoa(self.ID)
	if self.Err != nil { msg += ": " + self.Err.Error() }
	return msg
}

func (self *UploadError) Unwrap() error { return self.Err }
func (self *UploadError) Is(target error) bool { return target == ErrUpload }
