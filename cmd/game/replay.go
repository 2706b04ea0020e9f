package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/boxclicker/internal/application/game"
	"github.com/younwookim/boxclicker/internal/application/replay"
	"github.com/younwookim/boxclicker/internal/application/scene/playing"
	"github.com/younwookim/boxclicker/internal/application/state"
	"github.com/younwookim/boxclicker/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recorded session without a window",
	Long: `Load a recording made with --record and run it through the game
loop headlessly, using the recorded seed, box count, frame times and
clicks. Prints the final score.

Examples:
  clicker replay replay_20260101_120000.json
  clicker replay run.json --config ./game.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runReplayCmd,
}

// replayResult is the outcome of a headless replay
type replayResult struct {
	Frames  int
	Score   int
	Cleared int
	Boxes   int
	// Exhausted is true when the run used every recorded frame,
	// false when a recorded quit ended it early
	Exhausted bool
}

func runReplayCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}

	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}

	res, err := runReplay(cfg, *data)
	if err != nil {
		return err
	}

	ending := "end of recording"
	if !res.Exhausted {
		ending = "recorded quit"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "frames: %d (%s)\nscore: %d\ncleared: %d/%d\n",
		res.Frames, ending, res.Score, res.Cleared, res.Boxes)
	return nil
}

// runReplay feeds the recorded frames through a Playing scene.
// The replayer acts as both the clock and the event source.
func runReplay(cfg *config.GameConfig, data replay.ReplayData) (replayResult, error) {
	if err := data.Validate(); err != nil {
		return replayResult{}, fmt.Errorf("replay: %w", err)
	}
	if data.Version != replay.CurrentVersion {
		log.Warn("replay version mismatch", "file", data.Version, "want", replay.CurrentVersion)
	}

	rp := replay.NewReplayer(data)
	var final *state.GameState
	scene := playing.New(cfg, rp, playing.Options{
		Seed:        rp.Seed(),
		BoxCount:    rp.Boxes(),
		OnTerminate: func(gs *state.GameState) { final = gs },
	})

	// The replayer emits a quit once its frames run out, so the run always ends
	frames, err := game.RunHeadless(scene, rp, 0)
	if err != nil {
		return replayResult{}, fmt.Errorf("replay: %w", err)
	}
	log.Debug("replay finished", "frame", rp.CurrentFrame(), "recorded", rp.TotalFrames())
	if final == nil {
		final = scene.State()
	}

	return replayResult{
		Frames:  frames,
		Score:   final.Score.Value(),
		Cleared: final.Cleared,
		Boxes:   rp.Boxes(),

		Exhausted: rp.Done(),
	}, nil
}
