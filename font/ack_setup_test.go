package font

// This file contains the test assets setup. Tests use the Go fonts
// bundled with x/image, written to a temporary directory laid out
// like the assets directory expected by DefaultFamilies.

import "os"
import "path/filepath"
import "testing"

import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/goregular"

var testFontBytes = map[string][]byte {
	"B612_Mono/B612Mono-Regular.ttf": gomono.TTF,
	"VT323/VT323-Regular.ttf": goregular.TTF,
	"Share_Tech_Mono/ShareTechMono-Regular.ttf": gobold.TTF,
}

// Writes the test fonts under a new temporary directory and returns it.
func writeTestAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for path, data := range testFontBytes {
		writeTestFile(t, dir, path, data)
	}
	return dir
}

func writeTestFile(t *testing.T, dir string, path string, data []byte) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(path))
	err := os.MkdirAll(filepath.Dir(full), 0o755)
	if err != nil { t.Fatal(err) }
	err = os.WriteFile(full, data, 0o644)
	if err != nil { t.Fatal(err) }
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}
