package scene

// Kinds of input events. The loop only reacts to [Quit].
type EventKind uint8
const (
	Other EventKind = iota
	Quit
)

type Event struct {
	Kind EventKind
}

// An EventSource returns all the events pending since the last poll.
type EventSource interface {
	Poll() []Event
}

// An EventQueue is an [EventSource] fed manually with [EventQueue.Push]().
type EventQueue struct {
	pending []Event
}

func (self *EventQueue) Push(events ...Event) {
	self.pending = append(self.pending, events...)
}

func (self *EventQueue) Poll() []Event {
	events := self.pending
	self.pending = nil
	return events
}

// Returns an [EventSource] that reports a [Quit] event on poll number
// frames + 1, letting exactly the given number of frames run.
func QuitAfter(frames int) EventSource {
	return &countdownSource{ remaining: frames }
}

type countdownSource struct { remaining int }
func (self *countdownSource) Poll() []Event {
	if self.remaining <= 0 { return []Event{{ Kind: Quit }} }
	self.remaining -= 1
	return nil
}
