package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lehigh-university-libraries/artworks/internal/catalog"
	"github.com/lehigh-university-libraries/artworks/internal/tui"
	"github.com/lehigh-university-libraries/artworks/internal/viewer"
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"
)

func newBrowseCmd() *cobra.Command {
	var apiURL string
	var timeout time.Duration
	var logFile string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse artworks in the terminal",
		Long: `Opens an interactive terminal grid over the artworks API.

Select rows with space, move between pages with the arrow keys, and manage the
selection from the panel above the grid. The selection is kept for the whole
session and printed when you quit.`,
		Example: `  # Browse the public API
  artworks browse

  # Keep a debug log while browsing
  artworks browse --verbose --log-file browse.log`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines on stderr would draw over the alt screen.
			if logFile == "" {
				slog.SetDefault(slog.New(slog.DiscardHandler))
			} else {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer f.Close()
				level := slog.LevelInfo
				if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
					level = slog.LevelDebug
				}
				slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
			}

			controller := viewer.New(catalog.NewClient(apiURL, timeout))
			model := tui.NewModel(cmd.Context(), controller)

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return err
			}

			selected := controller.Snapshot().Selected
			fmt.Fprintf(cmd.OutOrStdout(), "Selected Artworks (%d)\n", len(selected))
			for _, item := range selected {
				fmt.Fprintf(cmd.OutOrStdout(), "  %d\t%s\n", item.ID, viewer.ChipLabel(item))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "Artworks API base URL (env ARTIC_API_URL, default "+catalog.DefaultBaseURL+")")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "HTTP timeout for API requests (0 for none)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file while the interface is open")

	return cmd
}
