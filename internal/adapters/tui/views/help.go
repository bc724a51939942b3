package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ideaindex/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "f1", "?"),
		key.WithHelp("esc/q/f1", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
	delay string
}

// NewHelpModel creates a help view. delay is the configured index lag, shown
// in the explanation of the two search modes.
func NewHelpModel(delay string) *HelpModel {
	return &HelpModel{delay: delay}
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (*HelpModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, HelpKeys.Close) {
		return m, func() tea.Msg { return SwitchToSearchMsg{} }
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("ideaindex help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Search"))
	b.WriteString("\n")
	b.WriteString(helpLine("enter", "Run the search in the current mode"))
	b.WriteString(helpLine("tab", "Switch between slow and fast mode"))
	b.WriteString(helpLine("↑ / ↓", "Move through results"))
	b.WriteString(helpLine("ctrl+y", "Copy the selected idea ID"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Ideas"))
	b.WriteString("\n")
	b.WriteString(helpLine("ctrl+n", "Publish a new idea"))
	b.WriteString(helpLine("ctrl+r", "Rebuild the tag index"))
	b.WriteString(helpLine("ctrl+e", "Edit the ideas document, then reload"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("f1", "Toggle help"))
	b.WriteString(helpLine("esc / ctrl+c", "Clear query / quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Modes"))
	b.WriteString("\n")
	b.WriteString(styles.ModeSlow.Render("slow"))
	b.WriteString(styles.MutedText.Render(" scans every idea for a tag containing the query."))
	b.WriteString("\n")
	b.WriteString(styles.ModeFast.Render("fast"))
	b.WriteString(styles.MutedText.Render(" looks the query up as one exact tag in the index."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  New ideas reach the index " + m.delay + " after publishing;"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  ideas loaded from the store appear after a rebuild."))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 16)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
