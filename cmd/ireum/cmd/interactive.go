package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/f3rmion/ireum/internal/logger"
	"github.com/f3rmion/ireum/internal/tui"
	"github.com/f3rmion/ireum/internal/tui/bigchar"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch the terminal form for name suggestions.

Controls:
  Tab/↑↓   Move between fields
  ←/→      Change gender, style or length
  Enter    Request names
  j/k      Select a card
  Space    Expand or collapse a card
  y        Copy the selected card
  Esc      Back to the form / quit`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Log output would tear the alt screen.
	a, err := newApp(cmd.Context(), cfg, logger.Discard())
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		tui.NewApp(tui.Options{
			Service: a.svc,
			Format:  a.format,
			Breaker: a.breaker,
			BigChar: bigchar.System(),
			Context: cmd.Context(),
		}),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
