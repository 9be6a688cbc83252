package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/revisely/revisely/internal/curriculum"
	"github.com/revisely/revisely/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "revisely",
	Short: "GCSE practice sessions with AI marking",
	Long: "Revisely runs exam-style practice sessions: it asks curriculum questions,\n" +
		"marks free-text answers with an AI examiner, and tracks topic mastery over time.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Missing .env is fine; explicit env vars win either way.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides REVISELY_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Learner ID (overrides REVISELY_USER env var, default \"local\")")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then REVISELY_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUserID returns the learner ID from --user, then REVISELY_USER,
// then "local" for single-user installs.
func resolveUserID(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("REVISELY_USER"); u != "" {
		return u
	}
	return "local"
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadCurriculum swaps in a curriculum file when REVISELY_CURRICULUM is
// set; otherwise the embedded seed stays active.
func loadCurriculum() error {
	path := os.Getenv("REVISELY_CURRICULUM")
	if path == "" {
		return nil
	}
	if err := curriculum.Load(path); err != nil {
		return fmt.Errorf("load curriculum from %s: %w", path, err)
	}
	return nil
}

// newLogger writes operational warnings to stderr, keeping stdout for
// the practice conversation.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}
