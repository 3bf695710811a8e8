//go:build gtxt

package platform

import "os"
import "image/png"
import "errors"
import "path/filepath"
import "testing"
import "testing/fstest"

import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/ttfslots"
import "github.com/tinne26/ttfslots/font"
import "github.com/tinne26/ttfslots/scene"

func testAssets() fstest.MapFS {
	return fstest.MapFS {
		"B612_Mono/B612Mono-Regular.ttf": &fstest.MapFile{ Data: gomono.TTF },
		"VT323/VT323-Regular.ttf": &fstest.MapFile{ Data: goregular.TTF },
		"Share_Tech_Mono/ShareTechMono-Regular.ttf": &fstest.MapFile{ Data: gobold.TTF },
	}
}

func TestRunQuitBeforeFirstFrame(t *testing.T) {
	demo, err := ttfslots.SetupFS(testAssets(), NewCreator())
	if err != nil { t.Fatal(err) }
	defer demo.Close()

	err = Run(Config{ Frames: 0 }, demo)
	if err != nil { t.Fatal(err) }
	if demo.Loop.Frames() != 0 { t.Fatalf("expected no frames, got %d", demo.Loop.Frames()) }
	if demo.Loop.State() != scene.Terminating { t.Fatal("expected Terminating") }
}

func TestRunFiftyFrames(t *testing.T) {
	demo, err := ttfslots.SetupFS(testAssets(), NewCreator())
	if err != nil { t.Fatal(err) }
	defer demo.Close()

	out := filepath.Join(t.TempDir(), "frame.png")
	err = Run(Config{ Frames: 50, OutputPNG: out }, demo)
	if err != nil { t.Fatal(err) }
	if demo.Loop.Frames() != 50 { t.Fatalf("expected 50 frames, got %d", demo.Loop.Frames()) }
	if diff := demo.Loop.Angle() - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected angle 1.0, got %v", demo.Loop.Angle())
	}

	file, err := os.Open(out)
	if err != nil { t.Fatal(err) }
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil { t.Fatal(err) }
	if img.Bounds().Dx() != DefaultWidth || img.Bounds().Dy() != DefaultHeight {
		t.Fatalf("unexpected frame size %v", img.Bounds())
	}
}

func TestEmptyFontFailsBeforeRun(t *testing.T) {
	assets := testAssets()
	assets["B612_Mono/B612Mono-Regular.ttf"] = &fstest.MapFile{ Data: nil }
	_, err := ttfslots.SetupFS(assets, NewCreator())
	if !errors.Is(err, font.ErrLoad) { t.Fatalf("expected font load error, got '%v'", err) }
}

func TestInitError(t *testing.T) {
	cause := errors.New("no display")
	err := error(&InitError{ Err: cause })
	if !errors.Is(err, ErrInit) || !errors.Is(err, cause) { t.Fatal("bad InitError matching") }
	if err.Error() != "platform initialization failed: no display" {
		t.Fatalf("unexpected message '%s'", err.Error())
	}
	cfg := Config{}.withDefaults()
	if cfg.Title != DefaultTitle || cfg.Width != 800 || cfg.Height != 600 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}
