package game

import (
	"errors"

	"github.com/younwookim/boxclicker/internal/application/scene"
)

// RunHeadless drives a scene without a window until it terminates or
// maxFrames updates have run (maxFrames <= 0 means no limit). OnEnter and
// OnExit are called around the run. Returns the number of updates.
func RunHeadless(s scene.Scene, clock Clock, maxFrames int) (int, error) {
	s.OnEnter()
	defer func() { s.OnExit() }()

	frames := 0
	for maxFrames <= 0 || frames < maxFrames {
		next, err := s.Update(clock.Tick())
		frames++
		if errors.Is(err, scene.ErrTerminated) {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		if next != nil {
			s.OnExit()
			s = next
			s.OnEnter()
		}
	}
	return frames, nil
}
