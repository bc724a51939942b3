package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Search mode colors
	SlowColor = lipgloss.Color("#F97316") // Orange
	FastColor = lipgloss.Color("#0EA5E9") // Sky

	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Result list
	ResultID = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")) // Blue

	ResultSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	Tag = lipgloss.NewStyle().
		Foreground(Secondary)

	// Mode badges
	ModeSlow = lipgloss.NewStyle().
			Background(SlowColor).
			Foreground(Black).
			Bold(true).
			Padding(0, 1)

	ModeFast = lipgloss.NewStyle().
			Background(FastColor).
			Foreground(Black).
			Bold(true).
			Padding(0, 1)

	Elapsed = lipgloss.NewStyle().
		Foreground(Warning)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	Pending = lipgloss.NewStyle().
		Foreground(Warning).
		Italic(true)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// ModeBadge returns the badge style for a search mode name
func ModeBadge(mode string) lipgloss.Style {
	if mode == "fast" {
		return ModeFast
	}
	return ModeSlow
}
