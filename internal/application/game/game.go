// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/boxclicker/internal/application/scene"
	"github.com/younwookim/boxclicker/internal/infrastructure/graphics"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	clock   Clock
	face    text.Face
	exited  bool
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, clock Clock, face text.Face) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		clock:   clock,
		face:    face,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface. A terminated scene ends the run
// with ebiten.Termination so RunGame returns nil.
func (g *Game) Update() error {
	next, err := g.current.Update(g.clock.Tick())
	if errors.Is(err, scene.ErrTerminated) {
		g.Shutdown()
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(graphics.NewSurface(screen, g.face))
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Shutdown calls OnExit on the current scene once.
func (g *Game) Shutdown() {
	if g.exited {
		return
	}
	g.exited = true
	g.current.OnExit()
}

// SetClock replaces the clock used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetClock(c Clock) {
	g.clock = c
}
