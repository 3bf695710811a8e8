package main

import "os"
import "log"
import "flag"
import "log/slog"

import "github.com/tinne26/ttfslots"
import "github.com/tinne26/ttfslots/platform"

func main() {
	log.SetFlags(0)
	log.SetPrefix("ttfslots: ")

	assetsDir := flag.String("assets", "assets", "directory containing the font files")
	title := flag.String("title", platform.DefaultTitle, "window title")
	verbose := flag.Bool("v", false, "log startup and shutdown details to stderr")
	frames := flag.Int("frames", 1, "frames to render before quitting (headless builds only)")
	outPNG := flag.String("png", "", "export the last frame to this PNG file (headless builds only)")
	flag.Parse()

	if *verbose {
		ttfslots.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := platform.Config{ Title: *title, Frames: *frames, OutputPNG: *outPNG }
	err := run(*assetsDir, cfg)
	if err != nil { log.Fatal(err) }
}

// Fonts and textures are set up before any window is opened, so
// font errors never show a window.
func run(assetsDir string, cfg platform.Config) error {
	demo, err := ttfslots.Setup(assetsDir, platform.NewCreator())
	if err != nil { return err }

	err = platform.Run(cfg, demo)
	closeErr := demo.Close()
	if err != nil { return err }
	return closeErr
}
