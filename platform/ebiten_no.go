//go:build gtxt

package platform

import "os"
import "image/png"

import "github.com/tinne26/ttfslots"
import "github.com/tinne26/ttfslots/scene"
import "github.com/tinne26/ttfslots/texture"

// Returns the texture creator for the current build.
func NewCreator() texture.Creator { return &texture.ImageCreator{} }

// Renders cfg.Frames frames into an in-memory canvas and then quits,
// optionally exporting the last frame as a PNG image. The demo must
// have been set up with a creator from [NewCreator]().
func Run(cfg Config, demo *ttfslots.Demo) error {
	cfg = cfg.withDefaults()
	canvas := scene.NewImageCanvas(cfg.Width, cfg.Height)
	_, err := demo.Loop.Run(scene.QuitAfter(cfg.Frames), canvas, 0)
	if err != nil { return err }
	if cfg.OutputPNG == "" { return nil }
	return exportPNG(cfg.OutputPNG, canvas)
}

func exportPNG(path string, canvas *scene.ImageCanvas) error {
	file, err := os.Create(path)
	if err != nil { return err }
	err = png.Encode(file, canvas.Target)
	if err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
