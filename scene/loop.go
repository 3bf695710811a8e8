package scene

import "image/color"

import "github.com/tinne26/ttfslots/texture"

// Loop states. Terminating is final.
type State uint8
const (
	Running State = iota
	Terminating
)

func (self State) String() string {
	switch self {
	case Running: return "Running"
	case Terminating: return "Terminating"
	default: return "State(?)"
	}
}

// Angle increase per frame, in degrees.
const AngleStep = 0.02

// Color used to clear the canvas at the start of each frame.
var Background color.Color = color.RGBA{ 0xff, 0xff, 0xff, 0xff }

// A Loop draws the textures of a cache at the positions given by its
// slots, once per frame. Loops are not safe for concurrent use.
type Loop struct {
	textures *texture.Cache
	slots []Slot
	angle float64
	frames int
	state State
	err error
}

// Creates a new loop in the [Running] state. The textures are read
// every frame, but never modified.
func NewLoop(textures *texture.Cache, slots []Slot) *Loop {
	if textures == nil { panic("nil texture cache") }
	return &Loop {
		textures: textures,
		slots: append([]Slot(nil), slots...),
	}
}

// Returns the current rotation angle, in degrees. It's never wrapped.
func (self *Loop) Angle() float64 { return self.angle }

// Returns the number of frames drawn so far.
func (self *Loop) Frames() int { return self.frames }

func (self *Loop) State() State { return self.state }

// Returns the draw error that terminated the loop, if any.
func (self *Loop) Err() error { return self.err }

// Processes the pending events. Any [Quit] event terminates the loop.
func (self *Loop) Update(events []Event) State {
	for _, event := range events {
		if event.Kind == Quit { self.state = Terminating }
	}
	return self.state
}

// Draws one frame: clears the canvas, draws every slot with a cached
// texture, presents and advances the rotation angle. Slots without a
// texture are skipped. The first draw error terminates the loop and is
// returned as a [*DrawError]. Terminated loops don't draw.
func (self *Loop) Draw(canvas Canvas) error {
	if self.state == Terminating { return self.err }

	canvas.Clear(Background)
	viewport := canvas.Viewport()
	for _, slot := range self.slots {
		entry := self.textures.Get(slot.ID)
		if entry == nil { continue }

		dst := slot.Anchor.Rect(viewport, entry.Width, entry.Height)
		var err error
		if slot.Rotates {
			err = canvas.CopyEx(entry.Texture, dst, self.angle)
		} else {
			err = canvas.Copy(entry.Texture, dst)
		}
		if err != nil {
			self.err = &DrawError{ ID: slot.ID, Err: err }
			self.state = Terminating
			return self.err
		}
	}
	canvas.Present()
	self.frames += 1
	self.angle += AngleStep
	return nil
}

// Runs a single iteration: polls events and, unless they terminate
// the loop, draws a frame.
func (self *Loop) Step(source EventSource, canvas Canvas) (State, error) {
	if self.Update(source.Poll()) == Terminating {
		return Terminating, self.err
	}
	err := self.Draw(canvas)
	return self.state, err
}

// Steps until the loop terminates or maxFrames frames are drawn. A
// zero maxFrames means no limit. Returns the number of frames drawn
// during the call.
func (self *Loop) Run(source EventSource, canvas Canvas, maxFrames int) (int, error) {
	start := self.frames
	for maxFrames <= 0 || self.frames - start < maxFrames {
		state, err := self.Step(source, canvas)
		if err != nil { return self.frames - start, err }
		if state == Terminating { break }
	}
	return self.frames - start, nil
}
