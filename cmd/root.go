package cmd

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ngxhuy/viva/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "viva",
	Short: "Adaptive AI oral examiner",
	Long:  "Viva — terminal oral-exam simulator that interviews a candidate on a topic, adapting question difficulty to their answers.",
}

// ExecuteContext runs the root command with the given base context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VIVA_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then VIVA_DB env var, then the default path under the
// user's home directory.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newLogger builds the CLI logger. Logs go to stderr so stdout stays
// clean for the interview transcript and exports.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.InfoLevel
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
