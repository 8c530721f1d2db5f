package tui

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/orcaflat/orcaflat/pkg/models"
	"github.com/orcaflat/orcaflat/pkg/resolver"
	"github.com/orcaflat/orcaflat/pkg/store"
)

type browseItem struct {
	name   string
	path   string
	source string
}

// BrowseModel shows the profiles of one type in a list pane with a
// flattened-JSON preview pane next to it.
type BrowseModel struct {
	store       *store.Store
	resolver    *resolver.Resolver
	profileType models.ProfileType

	items       []browseItem
	cursor      int
	showPreview bool
	preview     viewport.Model

	width  int
	height int
	err    error
}

func NewBrowseModel(st *store.Store) *BrowseModel {
	m := &BrowseModel{
		store:       st,
		resolver:    resolver.New(st),
		profileType: models.TypeFilament,
		showPreview: true,
		preview:     viewport.New(80, 20), // resized on first WindowSizeMsg
	}
	m.loadProfiles()
	return m
}

func (m *BrowseModel) Init() tea.Cmd {
	return nil
}

func (m *BrowseModel) loadProfiles() {
	m.items = nil
	m.cursor = 0
	m.err = nil

	bySource, err := m.store.ListProfiles(m.profileType)
	if err != nil {
		m.err = err
		return
	}

	sources := make([]string, 0, len(bySource))
	for source := range bySource {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	for _, source := range sources {
		for _, path := range bySource[source] {
			m.items = append(m.items, browseItem{
				name:   strings.TrimSuffix(filepath.Base(path), ".json"),
				path:   path,
				source: source,
			})
		}
	}
	m.updatePreview()
}

func (m *BrowseModel) updatePreview() {
	if !m.showPreview || len(m.items) == 0 {
		m.preview.SetContent("")
		return
	}

	item := m.items[m.cursor]
	flat, err := m.resolver.Resolve(item.path, m.profileType)
	if err != nil {
		m.preview.SetContent(ErrorStyle.Render(err.Error()))
		m.preview.GotoTop()
		return
	}

	body, err := json.MarshalIndent(flat.Fields, "", "    ")
	if err != nil {
		m.preview.SetContent(ErrorStyle.Render(err.Error()))
		m.preview.GotoTop()
		return
	}

	wrapped := wordwrap.String(string(body), m.preview.Width)
	m.preview.SetContent(wrapped)
	m.preview.GotoTop()
}

func (m *BrowseModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	previewWidth := width/2 - 4
	if previewWidth < 20 {
		previewWidth = 20
	}
	previewHeight := height - 6
	if previewHeight < 5 {
		previewHeight = 5
	}
	m.preview.Width = previewWidth
	m.preview.Height = previewHeight
	m.updatePreview()
}

func (m *BrowseModel) nextType() {
	for i, pt := range models.ProfileTypes {
		if pt == m.profileType {
			m.profileType = models.ProfileTypes[(i+1)%len(models.ProfileTypes)]
			break
		}
	}
	m.loadProfiles()
}

func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.updatePreview()
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
				m.updatePreview()
			}
		case "tab":
			m.nextType()
		case "p":
			m.showPreview = !m.showPreview
			m.updatePreview()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}

	default:
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *BrowseModel) View() string {
	header := TypeHeaderStyle.Render(fmt.Sprintf(" %s profiles (%d) ", strings.ToUpper(string(m.profileType)), len(m.items)))

	listHeight := m.height - 6
	if listHeight < 5 {
		listHeight = 5
	}
	listWidth := m.width/2 - 4
	if listWidth < 20 {
		listWidth = 20
	}

	var list strings.Builder
	if m.err != nil {
		list.WriteString(ErrorStyle.Render(m.err.Error()))
	} else if len(m.items) == 0 {
		list.WriteString(NormalStyle.Render("No profiles found."))
	} else {
		start, end := visibleWindow(m.cursor, len(m.items), listHeight)
		for i := start; i < end; i++ {
			item := m.items[i]
			line := fmt.Sprintf("%-*s %s", listWidth-12, truncate(item.name, listWidth-12), SourceStyle.Render(item.source))
			if i == m.cursor {
				line = SelectedStyle.Render("> " + line)
			} else {
				line = NormalStyle.Render("  " + line)
			}
			list.WriteString(line)
			list.WriteString("\n")
		}
	}

	listPane := ActiveBorderStyle.Width(listWidth).Height(listHeight).Render(list.String())

	var panes string
	if m.showPreview {
		previewPane := InactiveBorderStyle.
			Width(m.preview.Width).
			Height(m.preview.Height).
			Render(m.preview.View())
		panes = lipgloss.JoinHorizontal(lipgloss.Top, listPane, " ", previewPane)
	} else {
		panes = listPane
	}

	help := HelpStyle.Render("↑/↓ navigate · tab switch type · p toggle preview · pgup/pgdn scroll · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, panes, help)
}

// visibleWindow keeps the cursor inside the rendered slice of the list.
func visibleWindow(cursor, total, height int) (int, int) {
	if total <= height {
		return 0, total
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > total {
		end = total
		start = end - height
	}
	return start, end
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
