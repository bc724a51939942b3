package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ideaindex/internal/application"
	"ideaindex/internal/application/commands"
)

const (
	fieldTitle = iota
	fieldTags
	fieldAuthor
)

// AddModel is the form for publishing a new idea
type AddModel struct {
	ViewState
	catalog       *application.Catalog
	form          *InputForm
	defaultAuthor string
}

// NewAddModel creates the add form. defaultAuthor prefills the author field.
func NewAddModel(catalog *application.Catalog, defaultAuthor string) *AddModel {
	m := &AddModel{
		catalog:       catalog,
		defaultAuthor: defaultAuthor,
		form: NewInputForm(
			NewInputField("Title", "Plataforma de ...", 120),
			NewInputField("Tags", "IA, Salud", 200),
			NewInputField("Author", "optional", 80),
		),
	}
	m.Reset()
	return m
}

// Init initializes the add view
func (m *AddModel) Init() tea.Cmd {
	return m.form.Init()
}

// Reset clears the form for the next idea
func (m *AddModel) Reset() {
	m.form.Reset()
	m.form.SetValue(fieldAuthor, m.defaultAuthor)
	m.ClearMessage()
}

// SetValues fills the title and tags fields
func (m *AddModel) SetValues(title, tags string) {
	m.form.SetValue(fieldTitle, title)
	m.form.SetValue(fieldTags, tags)
}

// Update handles messages for the add view
func (m *AddModel) Update(msg tea.Msg) (*AddModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToSearchMsg{} }
		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.submit()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *AddModel) submit() tea.Cmd {
	cmd := commands.NewAddIdeaCommand(m.catalog,
		m.form.Value(fieldTitle),
		m.form.Value(fieldTags),
		m.form.Value(fieldAuthor),
	)
	return func() tea.Msg {
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return AddErrMsg{Err: err}
		}
		return IdeaAddedMsg{Result: result}
	}
}

// View renders the add view
func (m *AddModel) View() string {
	v := NewViewBuilder().
		Title("Publish idea").
		Subtitle("Tags are comma-separated. The idea is searchable at once in slow mode and reaches the index shortly after.")

	for i := range m.form.Fields {
		v.Line(m.form.RenderField(i)).BlankLine()
	}

	return v.Message(m.Message, m.MessageErr).
		Line(m.form.RenderHelp("publish")).
		String()
}
