// clicker is a bouncing-box clicker game.
//
// Usage:
//
//	clicker                  - Play the game
//	clicker scores           - Show the best recorded sessions
//	clicker replay <file>    - Re-run a recorded session without a window
//
// Global flags:
//
//	--config <path>   - Load a YAML config instead of the embedded one
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default from config)
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/boxclicker/internal/application/scene/playing"
	"github.com/younwookim/boxclicker/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagBoxes    int
	flagRecord   string
	flagDBPath   string
	flagNoScores bool
	flagSound    bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clicker",
	Short: "Click the bouncing boxes",
	Long: `Clicker opens a window with boxes bouncing off the walls.
Every click on a box scores a point and fills its progress bar;
a box disappears once the bar is full. Close the window or press
Escape to quit.

Examples:
  clicker
  clicker --boxes 5 --seed 42
  clicker --record run.json
  clicker replay run.json
  clicker scores --limit 5`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger(flagLogLevel)
	},
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file (default: embedded)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default: storage.dbPath from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().IntVar(&flagBoxes, "boxes", 0, "Number of boxes (0 = from config)")
	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g. --record replay.json; bare --record names it replay_<time>.json)")
	rootCmd.Flags().Lookup("record").NoOptDefVal = autoRecord
	rootCmd.Flags().BoolVar(&flagNoScores, "no-scores", false, "Do not save the session score")
	rootCmd.Flags().BoolVar(&flagSound, "sound", false, "Play hit sounds")

	// Add subcommands
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

func setupLogger(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "clicker",
		Level:           lvl,
	}))
	return nil
}

// loadConfig reads the config from path, or from the embedded configs
// directory when path is empty.
func loadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadFile(path)
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadDefault()
}

// autoRecord is the --record value used when the flag is given without a file
const autoRecord = "auto"

// recordPath resolves the --record flag to a file name, or "" for no recording
func recordPath(flag string) string {
	if flag == autoRecord {
		return playing.GenerateFilename()
	}
	return flag
}

// dbPath picks the --db flag over the configured path.
func dbPath(cfg *config.GameConfig) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.DBPath
}
