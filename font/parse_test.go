package font

import "io"
import "io/fs"
import "errors"
import "strings"
import "testing"
import "testing/fstest"

import "golang.org/x/image/font/gofont/goregular"

type fakeFS struct {}
func (fakeFS) Open(string) (fs.File, error) {
	return nil, errors.New("fakeFS")
}

type fakeReadCloser struct{ errOnRead bool }
func (self fakeReadCloser) Read(p []byte) (n int, err error) {
	if self.errOnRead { return 0, errors.New("fakeRead") }
	return 0, io.EOF
}
func (self fakeReadCloser) Close() error {
	return errors.New("fakeClose")
}

func TestParse(t *testing.T) {
	var err error

	_, _, err = ParseFromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	if err == nil { t.Fatal("expected error") }

	_, _, err = ParseFromBytes(nil)
	if err == nil { t.Fatal("expected error for empty font data") }

	_, _, err = ParseFromPath("path/with/no/extension")
	if err == nil || !strings.Contains(err.Error(), "invalid font path") {
		t.Fatal("expected error with 'invalid font path' in its contents")
	}

	_, _, err = ParseFromPath("fake/path/must/not/exist/yay.ttf")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got '%v'", err)
	}

	fakefs := fakeFS{}
	_, _, err = ParseFromFS(fakefs, "path/with/no/extension")
	if err == nil || !strings.Contains(err.Error(), "invalid font path") {
		t.Fatal("expected error with 'invalid font path' in its contents")
	}
	_, _, err = ParseFromFS(fakefs, "cool.ttf")
	if err == nil || err.Error() != "fakeFS" {
		t.Fatalf("expected \"fakeFS\" error, but got '%s'", err)
	}

	if hasValidFontExtension("") { t.Fatalf("not a valid font extension") }
	if hasValidFontExtension(".t") { t.Fatalf("not a valid font extension") }
	if hasValidFontExtension(".ttx") { t.Fatalf("not a valid font extension") }
	if hasValidFontExtension("ttf") { t.Fatalf("not a valid font extension") }
	if hasValidFontExtension(".gtf") { t.Fatalf("not a valid font extension") }
	if hasValidFontExtension(".xttf") { t.Fatalf("not a valid font extension") }
	if !hasValidFontExtension(".ttf") { t.Fatalf(".ttf must be a valid font extension") }
	if !hasValidFontExtension(".otf") { t.Fatalf(".otf must be a valid font extension") }
	if !hasValidFontExtension("Font.TTF") { t.Fatalf("extensions must be case insensitive") }
	if !hasValidFontExtension("dir/Font.Otf") { t.Fatalf("extensions must be case insensitive") }
	if hasValidFontExtension("Font.TTX") { t.Fatalf("not a valid font extension") }

	rc := fakeReadCloser{ errOnRead: true }
	_, _, err = parseFontFileAndClose(rc)
	if err == nil || err.Error() != "fakeRead" {
		t.Fatalf("expected err == \"fakeRead\", but got '%s'", err)
	}
	rc.errOnRead = false
	_, _, err = parseFontFileAndClose(rc)
	if err == nil || err.Error() != "fakeClose" {
		t.Fatalf("expected err == \"fakeClose\", but got '%s'", err)
	}
}

func TestParseNames(t *testing.T) {
	filesys := fstest.MapFS{ "go.ttf": &fstest.MapFile{ Data: goregular.TTF } }
	font, name, err := ParseFromFS(filesys, "go.ttf")
	if err != nil { t.Fatal(err) }
	family, err := GetFamily(font)
	if err != nil { t.Fatal(err) }
	if family == "" || !strings.Contains(name, family) {
		t.Fatalf("expected font name '%s' to contain family '%s'", name, family)
	}

	missing, err := MissingRunes(font, nil, "hello 世界 世")
	if err != nil { t.Fatal(err) }
	if string(missing) != "世界" {
		t.Fatalf("expected missing runes '世界', got '%s'", string(missing))
	}
}
