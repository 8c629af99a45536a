// Package input turns window backend events into a per-frame key state.
package input

// EventType identifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Key is a backend-neutral key code. Backends map their own codes to these
// and report anything else as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeySpace
	KeyR
	KeyP
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
}

// Source produces events. PollEvents appends everything that happened since
// the previous call to dst and returns it.
type Source interface {
	PollEvents(dst []Event) []Event
}

// Input tracks the events of the current frame and which keys are held.
type Input struct {
	events []Event
	held   map[Key]bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[Key]bool),
	}
}

// Update polls src for this frame's events. Returns true if a quit event
// was received.
func (i *Input) Update(src Source) bool {
	i.events = src.PollEvents(i.events[:0])

	quit := false
	for _, e := range i.events {
		switch e.Type {
		case EventQuit:
			quit = true
		case EventKeyDown:
			i.held[e.Key] = true
		case EventKeyUp:
			delete(i.held, e.Key)
		}
	}
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed reports whether key went down this frame.
func (i *Input) IsKeyPressed(key Key) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}

// IsKeyDown reports whether key is currently held.
func (i *Input) IsKeyDown(key Key) bool {
	return i.held[key]
}
