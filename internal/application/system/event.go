package system

// EventKind distinguishes the discrete input events the loop consumes
type EventKind int

const (
	EventPointerPress EventKind = iota
	EventQuit
)

// Modifiers is a bit set of held modifier keys
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

// Event is a single input event in screen coordinates
type Event struct {
	Kind EventKind
	X, Y int
	Mods Modifiers
}

// PointerPress creates an unmodified press event at x, y
func PointerPress(x, y int) Event {
	return Event{Kind: EventPointerPress, X: x, Y: y}
}

// Quit creates a quit event
func Quit() Event {
	return Event{Kind: EventQuit}
}

// IsPlainPress returns true for a pointer press with no modifiers held
func (e Event) IsPlainPress() bool {
	return e.Kind == EventPointerPress && e.Mods == 0
}

// EventSource yields the events that arrived since the last poll
type EventSource interface {
	Poll() []Event
}

// ScriptedSource replays a fixed list of per-frame event batches.
// Once exhausted it yields nothing.
type ScriptedSource struct {
	Frames [][]Event
	frame  int
}

// Poll returns the next frame's batch
func (s *ScriptedSource) Poll() []Event {
	if s.frame >= len(s.Frames) {
		return nil
	}
	events := s.Frames[s.frame]
	s.frame++
	return events
}
