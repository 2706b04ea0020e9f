package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/boxclicker/internal/application/game"
	"github.com/younwookim/boxclicker/internal/application/scene/playing"
	"github.com/younwookim/boxclicker/internal/application/state"
	"github.com/younwookim/boxclicker/internal/application/system"
	"github.com/younwookim/boxclicker/internal/domain/entity"
	"github.com/younwookim/boxclicker/internal/infrastructure/config"
	"github.com/younwookim/boxclicker/internal/infrastructure/graphics"
	"github.com/younwookim/boxclicker/internal/infrastructure/sound"
	"github.com/younwookim/boxclicker/internal/infrastructure/storage"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagSound {
		cfg.Audio.Enabled = true
	}
	if flagNoScores {
		cfg.Storage.Enabled = false
	}

	face, err := graphics.LoadFace(cfg.UI.FontPath, cfg.UI.FontSize)
	if err != nil {
		log.Fatal("failed to load font", "err", err)
	}

	opts := playing.Options{
		Seed:       flagSeed,
		BoxCount:   flagBoxes,
		RecordPath: recordPath(flagRecord),
	}

	// Optional hit sounds
	if cfg.Audio.Enabled {
		player := sound.NewPlayer(cfg.Audio)
		if err := player.Init(); err != nil {
			log.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			opts.OnHit = func(b *entity.Box) { player.PlayHit(b.Progress) }
			opts.OnClear = func(*entity.Box) { player.PlayClear() }
		}
	}

	// Optional score storage
	var store *storage.Store
	if cfg.Storage.Enabled {
		store, err = storage.Open(dbPath(cfg))
		if err != nil {
			log.Warn("could not open scores database", "err", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	started := time.Now()
	var scene *playing.Playing
	opts.OnTerminate = func(gs *state.GameState) {
		if store == nil {
			return
		}
		saveSession(store, sessionOf(scene, gs, time.Since(started)))
	}

	scene = playing.New(cfg, system.NewInputSystem(), opts)

	display := cfg.Display
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)
	ebiten.SetWindowClosingHandled(true)

	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, newClock(cfg), face)
	return runWindow(g, ebiten.RunGame)
}

// runWindow runs g and shuts the scene down once it returns, error or not.
func runWindow(g *game.Game, run func(ebiten.Game) error) error {
	defer g.Shutdown()

	if err := run(g); err != nil {
		return fmt.Errorf("game stopped: %w", err)
	}
	return nil
}

// newClock returns a fixed-step clock when display.fixedStep is set,
// otherwise a wall clock running at the configured framerate.
func newClock(cfg *config.GameConfig) game.Clock {
	nominal := 1.0 / float64(cfg.Display.Framerate)
	if cfg.Display.FixedStep {
		return game.FixedClock{DT: nominal}
	}
	return game.NewWallClock(nominal)
}

func sessionOf(p *playing.Playing, gs *state.GameState, elapsed time.Duration) storage.Session {
	return storage.Session{
		Score:    gs.Score.Value(),
		Cleared:  gs.Cleared,
		Boxes:    len(gs.Boxes) + gs.Cleared,
		Seed:     p.Seed(),
		Duration: elapsed,
	}
}

// saveSession stores sess and reports whether it beat every earlier session
func saveSession(store *storage.Store, sess storage.Session) bool {
	best, err := store.HighScore()
	known := err == nil
	if !known {
		log.Warn("could not read high score", "err", err)
	}

	id, err := store.SaveSession(sess)
	if err != nil {
		log.Error("failed to save score", "err", err)
		return false
	}
	log.Info("score saved", "id", id, "score", sess.Score)

	if known && sess.Score > best {
		log.Info("new high score", "score", sess.Score, "previous", best)
		return true
	}
	return false
}
