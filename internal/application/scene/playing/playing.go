// Package playing provides the main gameplay scene.
package playing

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/boxclicker/internal/application/render"
	"github.com/younwookim/boxclicker/internal/application/scene"
	"github.com/younwookim/boxclicker/internal/application/state"
	"github.com/younwookim/boxclicker/internal/application/system"
	"github.com/younwookim/boxclicker/internal/domain/entity"
	"github.com/younwookim/boxclicker/internal/infrastructure/config"
)

// Options controls how a Playing scene is set up
type Options struct {
	// Seed for the RNG; 0 picks one from the current time
	Seed int64
	// BoxCount overrides cfg.Boxes.Count when > 0
	BoxCount int
	// RecordPath enables input recording when not empty
	RecordPath string

	OnHit       func(b *entity.Box)
	OnClear     func(b *entity.Box)
	OnTerminate func(gs *state.GameState)
}

// Playing is the main gameplay scene. Each update drains the input events,
// advances the boxes and leaves the state ready to draw.
type Playing struct {
	config   *config.GameConfig
	state    *state.GameState
	input    system.EventSource
	motion   *system.MotionSystem
	clicks   *system.ClickSystem
	renderer *render.Renderer

	// Deterministic RNG
	rng  *rand.Rand
	seed int64

	// Input recording
	recorder   *Recorder
	recordPath string

	onTerminate func(gs *state.GameState)
	terminated  bool
}

// New creates a new Playing scene reading events from input
func New(cfg *config.GameConfig, input system.EventSource, opts Options) *Playing {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	count := cfg.Boxes.Count
	if opts.BoxCount > 0 {
		count = opts.BoxCount
	}

	clicks := system.NewClickSystem(cfg, rng)
	clicks.OnHit = opts.OnHit
	clicks.OnClear = opts.OnClear

	p := &Playing{
		config:      cfg,
		state:       state.New(system.SpawnBoxes(cfg, rng, count)),
		input:       input,
		motion:      system.NewMotionSystem(cfg, rng),
		clicks:      clicks,
		renderer:    render.NewRenderer(cfg),
		rng:         rng,
		seed:        seed,
		recordPath:  opts.RecordPath,
		onTerminate: opts.OnTerminate,
	}

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(seed, count)
		log.Info("recording enabled", "path", opts.RecordPath, "seed", seed)
	}

	log.Debug("boxes spawned", "count", count, "seed", seed)
	return p
}

// Update runs one frame (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if !p.state.IsRunning() {
		p.finish()
		return nil, scene.ErrTerminated
	}

	events := p.input.Poll()
	if p.recorder != nil {
		p.recorder.RecordFrame(dt, events)
	}

	for _, ev := range events {
		p.HandleInput(ev)
	}

	if !p.state.IsRunning() {
		p.finish()
		return nil, scene.ErrTerminated
	}

	p.Advance(dt)
	return nil, nil // nil = stay on this scene
}

// HandleInput applies a single event to the state
func (p *Playing) HandleInput(ev system.Event) {
	if hit := p.clicks.HandleInput(p.state, ev); hit != nil {
		log.Debug("box hit", "id", hit.ID, "progress", hit.Progress, "score", p.state.Score.Value())
	}
}

// Advance moves the boxes by dt seconds
func (p *Playing) Advance(dt float64) {
	p.motion.Update(p.state, dt)
}

// Draw renders the game screen (implements scene.Scene)
func (p *Playing) Draw(dst render.Surface) {
	p.renderer.Draw(dst, p.state)
}

// State returns the live game state
func (p *Playing) State() *state.GameState {
	return p.state
}

// Seed returns the RNG seed the session started with
func (p *Playing) Seed() int64 {
	return p.seed
}

// Recorder returns the active recorder, or nil
func (p *Playing) Recorder() *Recorder {
	return p.recorder
}

func (p *Playing) finish() {
	if p.terminated {
		return
	}
	p.terminated = true
	log.Info("game over", "score", p.state.Score.Value(), "cleared", p.state.Cleared)
	if p.onTerminate != nil {
		p.onTerminate(p.state)
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Stop()

	if err := p.recorder.Save(p.recordPath); err != nil {
		log.Error("failed to save recording", "err", err)
	} else {
		log.Info("recording saved", "path", p.recordPath, "frames", p.recorder.FrameCount())
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
