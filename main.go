package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rahulvramesh/dirscan/internal/scanner"
	"github.com/rahulvramesh/dirscan/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		interval time.Duration
		maxDepth int
	)

	cmd := &cobra.Command{
		Use:   "dirscan <root>",
		Short: "Recursively count subdirectories with a live status panel",
		Long: "dirscan walks every directory below the given root, showing the\n" +
			"directory currently being visited and a running count on a fixed\n" +
			"terminal panel. Press q or ctrl+c to stop the scan.",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			info, err := os.Stat(root)
			if err != nil {
				return fmt.Errorf("root %s: %w", args[0], err)
			}
			if !info.IsDir() {
				return fmt.Errorf("root %s is not a directory", args[0])
			}
			if interval <= 0 {
				return errors.New("--interval must be positive")
			}

			// Validation is done; runtime failures should not dump usage.
			cmd.SilenceUsage = true

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sc := scanner.New(root, scanner.Options{MaxDepth: maxDepth})
			m := ui.NewModel(ctx, cancel, sc, root, interval)

			final, err := tea.NewProgram(m).Run()
			if err != nil {
				return err
			}

			// A user-requested cancel ends the run cleanly; only a scan
			// failure reaches the process boundary.
			fm := final.(ui.Model)
			if serr := fm.Err(); serr != nil && !errors.Is(serr, context.Canceled) {
				return serr
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 100*time.Millisecond, "panel refresh interval")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum depth to descend below the root (0 = unlimited)")
	return cmd
}
