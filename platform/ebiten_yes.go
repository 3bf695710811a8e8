//go:build !gtxt

package platform

import "math"
import "image"
import "image/color"
import "errors"
import "fmt"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/ttfslots"
import "github.com/tinne26/ttfslots/scene"
import "github.com/tinne26/ttfslots/texture"

var _ texture.Creator = (*EbitenCreator)(nil)
var _ scene.Canvas = (*EbitenCanvas)(nil)

// Uploads surfaces as Ebitengine images.
type EbitenCreator struct{}

// Returns the texture creator for the current build.
func NewCreator() texture.Creator { return &EbitenCreator{} }

func (self *EbitenCreator) NewTexture(surface image.Image) (tex texture.Texture, err error) {
	if surface.Bounds().Empty() { return nil, texture.ErrEmptySurface }
	defer func() { // Ebitengine panics on invalid images
		if r := recover(); r != nil {
			tex, err = nil, fmt.Errorf("ebiten: %v", r)
		}
	}()
	return ebiten.NewImageFromImage(surface), nil
}

// A [scene.Canvas] drawing to an Ebitengine image, typically the screen.
// Textures must be Ebitengine images.
type EbitenCanvas struct {
	Screen *ebiten.Image
}

func (self *EbitenCanvas) Clear(clr color.Color) { self.Screen.Fill(clr) }
func (self *EbitenCanvas) Viewport() image.Rectangle { return self.Screen.Bounds() }

// Ebitengine presents the screen when Draw returns.
func (self *EbitenCanvas) Present() {}

func (self *EbitenCanvas) Copy(tex texture.Texture, dst image.Rectangle) error {
	img, ok := tex.(*ebiten.Image)
	if !ok { return scene.ErrUnsupportedTexture }
	opts := ebiten.DrawImageOptions{}
	bounds := img.Bounds()
	if bounds.Dx() != dst.Dx() || bounds.Dy() != dst.Dy() {
		opts.GeoM.Scale(float64(dst.Dx())/float64(bounds.Dx()), float64(dst.Dy())/float64(bounds.Dy()))
		opts.Filter = ebiten.FilterLinear
	}
	opts.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	self.Screen.DrawImage(img, &opts)
	return nil
}

func (self *EbitenCanvas) CopyEx(tex texture.Texture, dst image.Rectangle, angle float64) error {
	img, ok := tex.(*ebiten.Image)
	if !ok { return scene.ErrUnsupportedTexture }
	bounds := img.Bounds()
	if bounds.Empty() || dst.Empty() { return nil }

	opts := ebiten.DrawImageOptions{ Filter: ebiten.FilterLinear }
	opts.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	opts.GeoM.Scale(float64(dst.Dx())/float64(bounds.Dx()), float64(dst.Dy())/float64(bounds.Dy()))
	opts.GeoM.Rotate(angle*math.Pi/180) // Ebitengine uses radians
	opts.GeoM.Translate(float64(dst.Min.X) + float64(dst.Dx())/2, float64(dst.Min.Y) + float64(dst.Dy())/2)
	self.Screen.DrawImage(img, &opts)
	return nil
}

// Reports a quit event when the user tries to close the window.
type windowEvents struct{}
func (windowEvents) Poll() []scene.Event {
	if ebiten.IsWindowBeingClosed() {
		return []scene.Event{{ Kind: scene.Quit }}
	}
	return nil
}

type game struct {
	demo *ttfslots.Demo
	events scene.EventSource
	canvas EbitenCanvas
	width, height int
	err error
}

func (self *game) Layout(int, int) (int, int) { return self.width, self.height }

func (self *game) Update() error {
	if self.err != nil { return self.err }
	if self.demo.Loop.Update(self.events.Poll()) == scene.Terminating {
		return ebiten.Termination
	}
	return nil
}

func (self *game) Draw(screen *ebiten.Image) {
	if self.err != nil { return }
	self.canvas.Screen = screen
	self.err = self.demo.Loop.Draw(&self.canvas)
}

// Opens the window and runs the demo loop until the window is closed
// or a frame fails to draw. Closing the window returns nil. Draw
// errors are returned as they are, other failures as [*InitError].
func Run(cfg Config, demo *ttfslots.Demo) error {
	cfg = cfg.withDefaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)

	g := &game{ demo: demo, events: windowEvents{}, width: cfg.Width, height: cfg.Height }
	err := ebiten.RunGame(g)
	if err == nil { return nil }
	if errors.Is(err, scene.ErrDraw) { return err }
	return &InitError{ Err: err }
}
