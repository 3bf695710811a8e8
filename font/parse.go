package font

import "os"
import "io"
import "io/fs"
import "errors"
import "strings"

import "golang.org/x/image/font/sfnt"

// Similar to [sfnt.Parse](), but also including the font name
// in the returned values. The bytes must not be modified while
// the font is in use. Fonts without a full name in their naming
// table are accepted and returned with an empty name.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	if len(fontBytes) == 0 {
		return nil, "", errors.New("empty font data")
	}
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, "", err
	}
	fontName, err := GetName(newFont)
	if err == ErrNotFound { err = nil }
	return newFont, fontName, err
}

// Attempts to parse a font located the given filepath and returns it
// along its name and any possible error. Supported formats are .ttf
// and .otf.
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	ok := hasValidFontExtension(path)
	if !ok {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return parseFontFileAndClose(file)
}

// Same as [ParseFromPath](), but for filesystems (e.g. [embed.FS]
// or [os.DirFS]()).
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	ok := hasValidFontExtension(path)
	if !ok {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}

	file, err := filesys.Open(path)
	if err != nil {
		return nil, "", err
	}
	return parseFontFileAndClose(file)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser) (*sfnt.Font, string, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, "", err
	}
	err = file.Close()
	if err != nil {
		return nil, "", err
	}
	return ParseFromBytes(fontBytes)
}

// Whether font path ends in .ttf or .otf, ignoring case.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 { return false }
	ext := path[len(path)-4:]
	return strings.EqualFold(ext, ".ttf") || strings.EqualFold(ext, ".otf")
}
