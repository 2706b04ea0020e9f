package system

import (
	"image/color"
	"math/rand"

	"github.com/younwookim/boxclicker/internal/application/state"
	"github.com/younwookim/boxclicker/internal/domain/entity"
	"github.com/younwookim/boxclicker/internal/infrastructure/config"
)

// ClickSystem applies input events to the game state
type ClickSystem struct {
	step          int
	shakeDuration float64
	rng           *rand.Rand

	// Callbacks (used for sound)
	OnHit   func(b *entity.Box)
	OnClear func(b *entity.Box)
}

// NewClickSystem creates a click system with the configured hit tuning
func NewClickSystem(cfg *config.GameConfig, rng *rand.Rand) *ClickSystem {
	return &ClickSystem{
		step:          cfg.Hit.ProgressStep,
		shakeDuration: cfg.Hit.ShakeDuration,
		rng:           rng,
	}
}

// HandleInput applies one event. A quit event terminates the state; a plain
// pointer press hits the topmost box under the pointer, if any. Completed
// boxes are removed before returning. Returns the box that was hit, or nil.
func (s *ClickSystem) HandleInput(gs *state.GameState, ev Event) *entity.Box {
	if !gs.IsRunning() {
		return nil
	}

	switch ev.Kind {
	case EventQuit:
		gs.Terminate()
		return nil
	case EventPointerPress:
		if !ev.IsPlainPress() {
			return nil
		}
	default:
		return nil
	}

	hit := HitTest(gs.Boxes, float64(ev.X), float64(ev.Y))
	if hit == nil {
		return nil
	}

	s.applyHit(gs, hit)

	if hit.IsComplete() {
		if s.OnClear != nil {
			s.OnClear(hit)
		}
	} else if s.OnHit != nil {
		s.OnHit(hit)
	}

	gs.PruneCompleted()
	return hit
}

func (s *ClickSystem) applyHit(gs *state.GameState, b *entity.Box) {
	b.Color = s.randomColor()
	b.StartShake(s.shakeDuration)
	b.AddProgress(s.step)
	gs.Score.Increment()
}

func (s *ClickSystem) randomColor() color.RGBA {
	return color.RGBA{
		R: uint8(s.rng.Intn(256)),
		G: uint8(s.rng.Intn(256)),
		B: uint8(s.rng.Intn(256)),
		A: 255,
	}
}

// HitTest returns the topmost box containing the point, or nil.
// Later boxes are drawn over earlier ones, so the search runs backwards.
func HitTest(boxes []*entity.Box, px, py float64) *entity.Box {
	for i := len(boxes) - 1; i >= 0; i-- {
		if boxes[i].Contains(px, py) {
			return boxes[i]
		}
	}
	return nil
}
