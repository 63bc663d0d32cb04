package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yigitturan/QuizBite/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizbite",
	Short: "LLM-backed quiz session service",
	Long:  "QuizBite generates multiple-choice quiz sessions with an LLM provider, falling back to a fixed question bank when generation fails.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite audit database (overrides QUIZBITE_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the audit database path using --db flag (highest
// priority), then the QUIZBITE_DB env var. Empty means auditing disabled.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := store.DBPathFromEnv(); p != "" {
		return p, store.EnsureDir(p)
	}
	return "", nil
}
