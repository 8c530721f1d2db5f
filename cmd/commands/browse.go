package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/orcaflat/orcaflat/pkg/tui"
)

// NewBrowseCommand creates the browse command
func NewBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse profiles interactively",
		Long: `Open a terminal browser over the configured profile directories.

Navigate profiles with the arrow keys, press enter to preview the
flattened result, and q or esc to leave.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := newStore()
			if err != nil {
				return err
			}

			app := tui.NewApp(st)
			p := tea.NewProgram(app, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to start the terminal user interface: %w", err)
			}
			return nil
		},
	}
}
