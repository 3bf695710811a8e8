package font

import "io/fs"

import "golang.org/x/image/font/sfnt"

// A Context owns the parsed font files and every [Face] created
// through it. Font files are parsed only once per path, no matter
// how many sizes are loaded from them.
//
// Faces must not outlive their context: after [Context.Close](),
// rendering with any of its faces fails with [ErrContextClosed].
//
// Contexts are not safe for concurrent use.
type Context struct {
	fonts map[string]*parsedFont
	faces []*Face
	closed bool
}

type parsedFont struct {
	font *sfnt.Font
	name string
}

// Creates a new, empty font context.
func NewContext() *Context {
	return &Context {
		fonts: make(map[string]*parsedFont),
	}
}

// Returns the number of open faces created through the context.
func (self *Context) NumFaces() int { return len(self.faces) }

// Returns the number of distinct font files parsed by the context.
func (self *Context) NumFiles() int { return len(self.fonts) }

// Returns whether [Context.Close]() has already been called.
func (self *Context) Closed() bool { return self.closed }

// Closes all the faces created through the context and drops the
// parsed fonts. Calling Close more than once is harmless. The first
// error found while closing faces is returned, but all faces are
// closed regardless.
func (self *Context) Close() error {
	if self.closed { return nil }
	self.closed = true

	var firstErr error
	for _, face := range self.faces {
		err := face.close()
		if err != nil && firstErr == nil { firstErr = err }
	}
	self.faces = nil
	self.fonts = nil
	return firstErr
}

// Parses the font at the given path, or returns the already parsed one.
// When filesys is nil, the path refers to the OS filesystem.
func (self *Context) parse(filesys fs.FS, path string) (*parsedFont, error) {
	key := path
	if filesys != nil { key = "fs:" + path }
	parsed, found := self.fonts[key]
	if found { return parsed, nil }

	var font *sfnt.Font
	var name string
	var err error
	if filesys == nil {
		font, name, err = ParseFromPath(path)
	} else {
		font, name, err = ParseFromFS(filesys, path)
	}
	if err != nil { return nil, err }

	parsed = &parsedFont{ font: font, name: name }
	self.fonts[key] = parsed
	return parsed, nil
}

func (self *Context) register(face *Face) {
	self.faces = append(self.faces, face)
}

// Closes the face and removes it from the context. Used to roll
// back partially built collections.
func (self *Context) release(face *Face) error {
	for i, candidate := range self.faces {
		if candidate != face { continue }
		last := len(self.faces) - 1
		self.faces[i] = self.faces[last]
		self.faces[last] = nil
		self.faces = self.faces[:last]
		break
	}
	return face.close()
}
