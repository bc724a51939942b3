package views

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ideaindex/internal/adapters/clock"
	"ideaindex/internal/adapters/memory"
	"ideaindex/internal/application"
	"ideaindex/internal/application/commands"
	"ideaindex/internal/logging"
)

func newTestCatalog(t *testing.T) *application.Catalog {
	t.Helper()
	catalog := application.NewCatalog(memory.NewStore(), clock.NewScheduler(), application.Options{
		IndexDelay: 5 * time.Millisecond,
		Logger:     logging.Discard(),
	})
	if err := catalog.Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return catalog
}

func typeText(m *SearchModel, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// run feeds msg to the model and then the message produced by its command
func run(t *testing.T, m *SearchModel, msg tea.Msg) {
	t.Helper()
	_, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	m.Update(cmd())
}

func TestSearchModel_SlowSearch(t *testing.T) {
	m := NewSearchModel(newTestCatalog(t))

	typeText(m, "energ")
	run(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	result := m.Result()
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Mode != commands.SearchModeSlow {
		t.Errorf("expected slow mode, got %s", result.Mode)
	}
	if result.Len() != 4 {
		t.Errorf("expected 4 results, got %d", result.Len())
	}
	if !strings.Contains(m.View(), "4 results for \"energ\" (slow)") {
		t.Error("expected result header in view")
	}
}

func TestSearchModel_ToggleToFast(t *testing.T) {
	catalog := newTestCatalog(t)
	if _, err := catalog.Rebuild(context.Background()); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}
	m := NewSearchModel(catalog)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.Mode() != commands.SearchModeFast {
		t.Fatalf("expected fast mode after tab, got %s", m.Mode())
	}

	typeText(m, "IA")
	run(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.Result().Len(); got != 9 {
		t.Errorf("expected 9 index hits, got %d", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.Mode() != commands.SearchModeSlow {
		t.Errorf("expected slow mode after second tab, got %s", m.Mode())
	}
}

func TestSearchModel_Navigation(t *testing.T) {
	m := NewSearchModel(newTestCatalog(t))

	typeText(m, "ia")
	run(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	first, ok := m.Selected()
	if !ok {
		t.Fatal("expected a selected hit")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	second, _ := m.Selected()
	if second.IdeaID == first.IdeaID && second.Title == first.Title {
		t.Error("expected cursor to move down")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	back, _ := m.Selected()
	if back != first {
		t.Errorf("expected cursor back on first hit, got %+v", back)
	}
}

func TestSearchModel_Rebuild(t *testing.T) {
	catalog := newTestCatalog(t)
	m := NewSearchModel(catalog)

	run(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	if m.MessageErr {
		t.Fatalf("unexpected error message %q", m.Message)
	}
	if !strings.HasPrefix(m.Message, "Index rebuilt:") {
		t.Errorf("unexpected message %q", m.Message)
	}
	if catalog.Stats().Tags == 0 {
		t.Error("expected populated index")
	}
}

func TestSearchModel_SwitchMessages(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want tea.Msg
	}{
		{name: "add", key: tea.KeyMsg{Type: tea.KeyCtrlN}, want: SwitchToAddMsg{}},
		{name: "help", key: tea.KeyMsg{Type: tea.KeyF1}, want: SwitchToHelpMsg{}},
		{name: "edit", key: tea.KeyMsg{Type: tea.KeyCtrlE}, want: EditStoreMsg{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSearchModel(newTestCatalog(t))
			_, cmd := m.Update(tt.key)
			if cmd == nil {
				t.Fatal("expected a command")
			}
			if got := cmd(); got != tt.want {
				t.Errorf("expected %T, got %T", tt.want, got)
			}
		})
	}
}

func TestSearchModel_EscClearsThenQuits(t *testing.T) {
	m := NewSearchModel(newTestCatalog(t))
	typeText(m, "ia")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Error("first esc should only clear the query")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestAddModel_Submit(t *testing.T) {
	catalog := newTestCatalog(t)
	m := NewAddModel(catalog, "Ana")
	m.SetValues("Huerto vertical", " Agricultura , Urbano ")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg, ok := cmd().(IdeaAddedMsg)
	if !ok {
		t.Fatalf("expected IdeaAddedMsg")
	}

	idea := msg.Result.Idea
	if idea.ID != "idea_27" {
		t.Errorf("expected idea_27, got %s", idea.ID)
	}
	if idea.Author != "Ana" {
		t.Errorf("expected prefilled author, got %q", idea.Author)
	}
	if strings.Join(idea.Tags, ",") != "agricultura,urbano" {
		t.Errorf("unexpected tags %v", idea.Tags)
	}
	if err := msg.Result.Pending.Wait(context.Background()); err != nil {
		t.Errorf("pending update failed: %v", err)
	}
}

func TestAddModel_ValidationError(t *testing.T) {
	m := NewAddModel(newTestCatalog(t), "")
	m.SetValues("Solo título", "")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg, ok := cmd().(AddErrMsg)
	if !ok {
		t.Fatal("expected AddErrMsg")
	}
	if !strings.Contains(msg.Err.Error(), "tags") {
		t.Errorf("unexpected error %v", msg.Err)
	}
}

func TestAddModel_Cancel(t *testing.T) {
	m := NewAddModel(newTestCatalog(t), "")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(SwitchToSearchMsg); !ok {
		t.Error("expected SwitchToSearchMsg")
	}
}

func TestInputForm_Focus(t *testing.T) {
	form := NewInputForm(
		NewInputField("A", "", 0),
		NewInputField("B", "", 0),
		NewInputField("C", "", 0),
	)

	tests := []struct {
		key  tea.KeyMsg
		want int
	}{
		{key: tea.KeyMsg{Type: tea.KeyTab}, want: 1},
		{key: tea.KeyMsg{Type: tea.KeyTab}, want: 2},
		{key: tea.KeyMsg{Type: tea.KeyTab}, want: 0},
		{key: tea.KeyMsg{Type: tea.KeyShiftTab}, want: 2},
	}

	for _, tt := range tests {
		handled, _ := form.Update(tt.key)
		if !handled {
			t.Errorf("%s not handled", tt.key)
		}
		if form.Focused != tt.want {
			t.Errorf("after %s expected focus %d, got %d", tt.key, tt.want, form.Focused)
		}
	}
}

func TestPaginator(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	for range 4 {
		p.Down()
	}
	if p.Cursor() != 4 {
		t.Fatalf("expected cursor 4, got %d", p.Cursor())
	}
	if start, end := p.VisibleRange(); start != 3 || end != 6 {
		t.Errorf("expected range [3,6), got [%d,%d)", start, end)
	}
	if current, total := p.Pages(); current != 2 || total != 3 {
		t.Errorf("expected page 2/3, got %d/%d", current, total)
	}

	for range 10 {
		p.Down()
	}
	if p.Cursor() != 6 {
		t.Errorf("cursor should stop at last row, got %d", p.Cursor())
	}
	if start, end := p.VisibleRange(); start != 6 || end != 7 {
		t.Errorf("expected last page [6,7), got [%d,%d)", start, end)
	}
}
