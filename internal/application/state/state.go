// Package state holds the game state owned by the frame loop.
package state

import "github.com/younwookim/boxclicker/internal/domain/entity"

// Phase is the lifecycle phase of the frame loop
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseTerminated
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// GameState is everything the loop mutates: the live boxes, the score and
// the lifecycle phase. Order of Boxes is draw order; the last box is on top.
type GameState struct {
	Boxes   []*entity.Box
	Score   entity.Score
	Cleared int
	Phase   Phase
}

// New creates a running state holding the given boxes
func New(boxes []*entity.Box) *GameState {
	return &GameState{
		Boxes: boxes,
		Phase: PhaseRunning,
	}
}

// IsRunning returns true until the quit transition
func (s *GameState) IsRunning() bool {
	return s.Phase == PhaseRunning
}

// Terminate moves to the terminal phase. There is no way back.
func (s *GameState) Terminate() {
	s.Phase = PhaseTerminated
}

// PruneCompleted drops every completed box by rebuilding the live slice and
// returns the number removed.
func (s *GameState) PruneCompleted() int {
	live := make([]*entity.Box, 0, len(s.Boxes))
	for _, b := range s.Boxes {
		if b.IsComplete() {
			continue
		}
		live = append(live, b)
	}
	removed := len(s.Boxes) - len(live)
	s.Boxes = live
	s.Cleared += removed
	return removed
}
