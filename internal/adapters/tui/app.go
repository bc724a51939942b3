package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"ideaindex/internal/adapters/tui/views"
	"ideaindex/internal/application"
	"ideaindex/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewSearch ViewState = iota
	ViewAdd
	ViewHelp
)

// Config holds the optional collaborators of the app
type Config struct {
	// Editor and Locator enable ctrl+e; both are nil for backends whose
	// entries are not files
	Editor  ports.EditorOpener
	Locator ports.DocumentLocator

	DefaultAuthor string
	IndexDelay    string
}

// App is the main TUI application model
type App struct {
	catalog *application.Catalog
	cfg     Config

	state  ViewState
	search *views.SearchModel
	add    *views.AddModel
	help   *views.HelpModel
}

// NewApp creates a new TUI application
func NewApp(catalog *application.Catalog, cfg Config) *App {
	return &App{
		catalog: catalog,
		cfg:     cfg,
		state:   ViewSearch,
		search:  views.NewSearchModel(catalog),
		add:     views.NewAddModel(catalog, cfg.DefaultAuthor),
		help:    views.NewHelpModel(cfg.IndexDelay),
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.search.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.search.SetSize(msg.Width, msg.Height)
		a.add.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToAddMsg:
		a.state = ViewAdd
		a.add.Reset()
		return a, a.add.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		return a, nil

	case views.IdeaAddedMsg:
		a.state = ViewSearch
		a.search.SetMessage(msg.Result.Message+" (indexing...)", false)
		return a, tea.Batch(a.search.Rerun(), waitIndexed(msg.Result.Pending))

	case views.AddErrMsg:
		a.add.SetMessage(msg.Err.Error(), true)
		return a, nil

	case indexExtendedMsg:
		if msg.err != nil {
			a.search.SetMessage(fmt.Sprintf("Indexing %s failed: %v", msg.id, msg.err), true)
			return a, nil
		}
		a.search.SetMessage(msg.id+" is now in the index", false)
		return a, a.search.Rerun()

	case views.EditStoreMsg:
		return a, a.openEditor()

	case editorFinishedMsg:
		if msg.err != nil {
			a.search.SetMessage("Editor: "+msg.err.Error(), true)
			return a, nil
		}
		if err := a.catalog.Reload(context.Background()); err != nil {
			a.search.SetMessage("Reload failed: "+err.Error(), true)
			return a, nil
		}
		a.search.SetMessage("Reloaded ideas; rebuild to refresh the index", false)
		return a, a.search.Rerun()
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewAdd:
		_, cmd = a.add.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type indexExtendedMsg struct {
	id  string
	err error
}

func waitIndexed(p *application.PendingUpdate) tea.Cmd {
	return func() tea.Msg {
		<-p.Done()
		return indexExtendedMsg{id: p.Idea.ID, err: p.Err()}
	}
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor() tea.Cmd {
	if a.cfg.Editor == nil || a.cfg.Locator == nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: fmt.Errorf("editing requires the file backend")}
		}
	}

	cmd, err := a.cfg.Editor.Command(a.cfg.Locator.DocumentPath(ports.KeyIdeas))
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewAdd:
		return a.add.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.search.View()
	}
}
