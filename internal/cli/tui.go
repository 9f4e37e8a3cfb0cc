package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"watchtune/internal/notifier"
	"watchtune/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	// The status banner handles in-terminal feedback; writing to stdout
	// while the alt screen is up would garble the UI, so only the tray
	// notifier rides along here.
	p := tea.NewProgram(tui.NewModel(ctx.Client, notifier.New()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
