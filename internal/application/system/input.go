package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem turns Ebitengine's polled input state into discrete events.
// The window must have closing handled (ebiten.SetWindowClosingHandled) for
// the close button to arrive as a quit event.
type InputSystem struct {
	touchIDs []ebiten.TouchID
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll reads this tick's presses and quit requests
func (s *InputSystem) Poll() []Event {
	var events []Event

	mods := currentModifiers()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		events = append(events, Event{Kind: EventPointerPress, X: mx, Y: my, Mods: mods})
	}

	// Touch presses behave like plain clicks
	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		events = append(events, PointerPress(tx, ty))
	}

	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, Quit())
	}

	return events
}

func currentModifiers() Modifiers {
	var m Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= ModMeta
	}
	return m
}
