// Package scene defines the Scene interface for game screens.
//
// Each screen implements Scene to handle its own update logic and
// rendering. Scenes draw onto render.Surface, so they can run headless.
package scene

import (
	"errors"

	"github.com/younwookim/boxclicker/internal/application/render"
)

// ErrTerminated is returned from Update once the scene has received a quit
// signal. The game loop treats it as a clean shutdown.
var ErrTerminated = errors.New("scene terminated")

// Scene represents a game screen
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the elapsed time in seconds since the previous update.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene onto the surface.
	Draw(dst render.Surface)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, including at shutdown.
	OnExit()
}
