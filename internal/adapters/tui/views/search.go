package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ideaindex/internal/adapters/tui/styles"
	"ideaindex/internal/application"
	"ideaindex/internal/application/commands"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Search     key.Binding
	ToggleMode key.Binding
	Up         key.Binding
	Down       key.Binding
	Copy       key.Binding
	Add        key.Binding
	Rebuild    key.Binding
	Edit       key.Binding
	Help       key.Binding
	Clear      key.Binding
	Quit       key.Binding
}

var SearchKeys = SearchKeyMap{
	Search: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search"),
	),
	ToggleMode: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "slow/fast"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy ID"),
	),
	Add: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("ctrl+n", "new idea"),
	),
	Rebuild: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "rebuild"),
	),
	Edit: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "edit"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear/quit"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

const resultPageSize = 10

// SearchModel is the main view: a query box, the mode switch, the timed
// results of the last search and a status bar with catalog counters
type SearchModel struct {
	ViewState
	catalog *application.Catalog
	input   textinput.Model
	mode    commands.SearchMode
	result  *commands.SearchResult
	pager   *Paginator
}

// NewSearchModel creates the search view
func NewSearchModel(catalog *application.Catalog) *SearchModel {
	input := textinput.New()
	input.Placeholder = "tag, e.g. ia or energ"
	input.CharLimit = 64
	input.Focus()

	return &SearchModel{
		catalog: catalog,
		input:   input,
		mode:    commands.SearchModeSlow,
		pager:   NewPaginator(resultPageSize),
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Mode returns the current search mode
func (m *SearchModel) Mode() commands.SearchMode {
	return m.mode
}

// Result returns the last search result, nil before the first search
func (m *SearchModel) Result() *commands.SearchResult {
	return m.result
}

// Selected returns the hit under the cursor
func (m *SearchModel) Selected() (application.IndexEntry, bool) {
	if m.result == nil {
		return application.IndexEntry{}, false
	}
	hits := m.result.Hits()
	i := m.pager.Cursor()
	if i < 0 || i >= len(hits) {
		return application.IndexEntry{}, false
	}
	return hits[i], true
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (*SearchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDoneMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.result = msg.result
		m.pager.SetTotal(msg.result.Len())
		m.ClearMessage()
		return m, nil

	case rebuildDoneMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.SetMessage(fmt.Sprintf("%s in %s", msg.result.Message, msg.result.Duration), false)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, SearchKeys.Clear):
			if m.input.Value() == "" {
				return m, tea.Quit
			}
			m.input.SetValue("")
			m.result = nil
			m.pager.SetTotal(0)
			m.ClearMessage()
			return m, nil

		case key.Matches(msg, SearchKeys.Search):
			return m, m.search(m.input.Value(), m.mode)

		case key.Matches(msg, SearchKeys.ToggleMode):
			if m.mode == commands.SearchModeSlow {
				m.mode = commands.SearchModeFast
			} else {
				m.mode = commands.SearchModeSlow
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Up):
			m.pager.Up()
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			m.pager.Down()
			return m, nil

		case key.Matches(msg, SearchKeys.Copy):
			if hit, ok := m.Selected(); ok {
				if err := clipboard.WriteAll(hit.IdeaID); err != nil {
					m.SetMessage("clipboard: "+err.Error(), true)
				} else {
					m.SetMessage("Copied "+hit.IdeaID, false)
				}
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Rebuild):
			return m, m.rebuild()

		case key.Matches(msg, SearchKeys.Add):
			return m, func() tea.Msg { return SwitchToAddMsg{} }

		case key.Matches(msg, SearchKeys.Edit):
			return m, func() tea.Msg { return EditStoreMsg{} }

		case key.Matches(msg, SearchKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Rerun repeats the last search, so results reflect a rebuilt or reloaded
// catalog
func (m *SearchModel) Rerun() tea.Cmd {
	if m.result == nil {
		return nil
	}
	return m.search(m.result.Query, m.result.Mode)
}

func (m *SearchModel) search(query string, mode commands.SearchMode) tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewSearchCommand(m.catalog, query, mode).Execute(context.Background())
		return searchDoneMsg{result: result, err: err}
	}
}

func (m *SearchModel) rebuild() tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewRebuildIndexCommand(m.catalog).Execute(context.Background())
		return rebuildDoneMsg{result: result, err: err}
	}
}

type searchDoneMsg struct {
	result *commands.SearchResult
	err    error
}

type rebuildDoneMsg struct {
	result *commands.RebuildResult
	err    error
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("ideaindex"))
	b.WriteString("\n\n")

	b.WriteString(styles.ModeBadge(m.mode.String()).Render(m.mode.String()))
	b.WriteString(" ")
	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	b.WriteString(m.renderResults())
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderStats(m.catalog.Stats()))
	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(
		SearchKeys.Search, SearchKeys.ToggleMode, SearchKeys.Rebuild,
		SearchKeys.Add, SearchKeys.Copy, SearchKeys.Help,
	))

	return styles.App.Render(b.String())
}

func (m *SearchModel) renderResults() string {
	if m.result == nil {
		return styles.MutedText.Render("Type a tag and press enter") + "\n"
	}

	var b strings.Builder
	header := fmt.Sprintf("%d results for %q (%s) in ", m.result.Len(), m.result.Query, m.result.Mode)
	b.WriteString(styles.Subtitle.Render(header))
	b.WriteString(RenderElapsed(m.result.Elapsed))
	b.WriteString("\n\n")

	if m.result.Len() == 0 {
		b.WriteString(styles.MutedText.Render("No ideas found"))
		b.WriteString("\n")
		return b.String()
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i, i == m.pager.Cursor()))
		b.WriteString("\n")
	}
	if current, total := m.pager.Pages(); total > 1 {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("page %d/%d", current, total)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow shows tags for slow results, which carry full records; fast
// results only carry id and title.
func (m *SearchModel) renderRow(i int, selected bool) string {
	var id, title, tags string
	if m.result.Mode == commands.SearchModeSlow {
		idea := m.result.Ideas[i]
		id, title, tags = idea.ID, idea.Title, RenderTags(idea.Tags)
	} else {
		entry := m.result.Entries[i]
		id, title = entry.IdeaID, entry.Title
	}

	if selected {
		return styles.ResultSelected.Render(fmt.Sprintf("%-9s %s", id, title)) + " " + tags
	}
	return styles.ResultID.Render(fmt.Sprintf("%-9s", id)) + " " + title + " " + tags
}
