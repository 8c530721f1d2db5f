package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/orcaflat/orcaflat/pkg/store"
)

// App is the root bubbletea model for the interactive browser.
type App struct {
	browse *BrowseModel
	width  int
	height int
}

func NewApp(st *store.Store) *App {
	return &App{
		browse: NewBrowseModel(st),
	}
}

func (a *App) Init() tea.Cmd {
	return a.browse.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browse.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
	}

	_, cmd := a.browse.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	return a.browse.View()
}
