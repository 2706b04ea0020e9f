package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/boxclicker/internal/application/state"
	"github.com/younwookim/boxclicker/internal/domain/entity"
	"github.com/younwookim/boxclicker/internal/infrastructure/config"
)

// MotionSystem moves boxes, bounces them off the walls and runs the shake
type MotionSystem struct {
	bounds    entity.Bounds
	intensity float64
	maxStep   float64 // longest motion sub-step, one nominal frame
	rng       *rand.Rand
}

// NewMotionSystem creates a motion system for the configured window.
// The top bound sits below the UI strip when one is configured.
func NewMotionSystem(cfg *config.GameConfig, rng *rand.Rand) *MotionSystem {
	return &MotionSystem{
		bounds:    PlayBounds(cfg),
		intensity: cfg.Hit.ShakeIntensity,
		maxStep:   1.0 / float64(cfg.Display.Framerate),
		rng:       rng,
	}
}

// PlayBounds returns the area boxes bounce inside
func PlayBounds(cfg *config.GameConfig) entity.Bounds {
	return entity.Bounds{
		MinX: 0,
		MinY: float64(cfg.UI.StripHeight),
		MaxX: float64(cfg.Display.ScreenWidth),
		MaxY: float64(cfg.Display.ScreenHeight),
	}
}

// Bounds returns the bounds this system bounces against
func (s *MotionSystem) Bounds() entity.Bounds {
	return s.bounds
}

// Update advances every live box by dt seconds.
// A frame longer than one nominal frame is moved in equal sub-steps no longer
// than a nominal frame, so overshoot past a wall stays within one step of
// travel and the next step carries the box back. The shake runs once per frame.
func (s *MotionSystem) Update(gs *state.GameState, dt float64) {
	steps := s.subSteps(dt)
	h := dt / float64(steps)
	for _, b := range gs.Boxes {
		for i := 0; i < steps; i++ {
			b.MoveAndBounce(h, s.bounds)
		}
		s.updateShake(b, dt)
	}
}

// subSteps returns how many motion steps dt is split into
func (s *MotionSystem) subSteps(dt float64) int {
	if s.maxStep <= 0 || dt <= s.maxStep {
		return 1
	}
	// Tolerance keeps 0.1s at 60 TPS at 6 steps, not 7
	return int(math.Ceil(dt/s.maxStep - 1e-9))
}

func (s *MotionSystem) updateShake(b *entity.Box, dt float64) {
	if !b.IsShaking() {
		b.StopShake()
		return
	}

	b.ShakeX = s.jitter()
	b.ShakeY = s.jitter()
	b.ShakeTimer -= dt
	if b.ShakeTimer < 0 {
		b.ShakeTimer = 0
	}
}

// jitter returns a uniform value in [-intensity, intensity]
func (s *MotionSystem) jitter() float64 {
	return (2*s.rng.Float64() - 1) * s.intensity
}
