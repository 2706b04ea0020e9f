package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/younwookim/boxclicker/internal/infrastructure/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded sessions",
	Long: `Display the top sessions stored in the scores database.

Examples:
  clicker scores
  clicker scores --limit 5
  clicker scores --clear
  clicker scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored session")
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	bestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Scores cleared.")
		return nil
	}

	entries, err := store.TopScores(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), formatScores(entries))
	return nil
}

// formatScores renders the score table. The first entry is highlighted.
func formatScores(entries []storage.SessionEntry) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("High Scores"))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString("No scores recorded yet.\n")
		b.WriteString(dimStyle.Render("Run 'clicker' to set the first high score!"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-4s  %-6s  %-7s  %-8s  %s", "Rank", "Score", "Cleared", "Time", "Date")))
	b.WriteString("\n")

	for i, e := range entries {
		line := fmt.Sprintf("%-4d  %-6d  %-7s  %-8s  %s",
			i+1,
			e.Score,
			fmt.Sprintf("%d/%d", e.Cleared, e.Boxes),
			e.Duration.Round(100*time.Millisecond).String(),
			e.CreatedAt.Format("2006-01-02 15:04"),
		)
		if i == 0 {
			line = bestStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
