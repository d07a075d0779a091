package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "artworks",
		Short: "Browse the Art Institute of Chicago collection and build a selection across pages",
		Long: `Artworks pages through the Art Institute of Chicago public API and keeps a
selection of artworks that survives page navigation.

It can run as a web interface (serve) or as a terminal interface (browse).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newBrowseCmd())

	return cmd
}

// stringFromEnv returns the flag value unless the flag was left unset and key is set
func stringFromEnv(cmd *cobra.Command, flag, key, value string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}
	if env := os.Getenv(key); env != "" {
		return env
	}
	return value
}

// durationFromEnv is stringFromEnv for durations; unparsable values keep the flag value
func durationFromEnv(cmd *cobra.Command, flag, key string, value time.Duration) time.Duration {
	if cmd.Flags().Changed(flag) {
		return value
	}
	env := os.Getenv(key)
	if env == "" {
		return value
	}
	d, err := time.ParseDuration(env)
	if err != nil {
		slog.Warn("Ignoring invalid duration", "env", key, "value", env, "err", err)
		return value
	}
	return d
}
