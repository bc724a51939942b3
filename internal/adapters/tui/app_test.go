package tui

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ideaindex/internal/adapters/clock"
	"ideaindex/internal/adapters/memory"
	"ideaindex/internal/adapters/tui/views"
	"ideaindex/internal/application"
	"ideaindex/internal/application/commands"
	"ideaindex/internal/logging"
)

func newTestApp(t *testing.T, cfg Config) (*App, *application.Catalog) {
	t.Helper()
	catalog := application.NewCatalog(memory.NewStore(), clock.NewScheduler(), application.Options{
		IndexDelay: 5 * time.Millisecond,
		Logger:     logging.Discard(),
	})
	if err := catalog.Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return NewApp(catalog, cfg), catalog
}

func TestApp_SwitchViews(t *testing.T) {
	app, _ := newTestApp(t, Config{IndexDelay: "1s"})

	app.Update(views.SwitchToAddMsg{})
	if app.State() != ViewAdd {
		t.Fatalf("expected add view, got %d", app.State())
	}

	app.Update(views.SwitchToHelpMsg{})
	if app.State() != ViewHelp {
		t.Fatalf("expected help view, got %d", app.State())
	}
	if !strings.Contains(app.View(), "1s after publishing") {
		t.Error("expected index delay in help")
	}

	app.Update(views.SwitchToSearchMsg{})
	if app.State() != ViewSearch {
		t.Fatalf("expected search view, got %d", app.State())
	}
}

func TestApp_AddThenIndexed(t *testing.T) {
	app, catalog := newTestApp(t, Config{})

	result, err := commands.NewAddIdeaCommand(catalog, "Huerto vertical", "Urbano", "").Execute(context.Background())
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	_, cmd := app.Update(views.IdeaAddedMsg{Result: result})
	if app.State() != ViewSearch {
		t.Errorf("expected search view after add, got %d", app.State())
	}
	if cmd == nil {
		t.Fatal("expected a command waiting for the index")
	}

	// Without a previous search the batch holds only the wait command
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				msg = c()
			}
		}
	}
	extended, ok := msg.(indexExtendedMsg)
	if !ok {
		t.Fatalf("expected indexExtendedMsg, got %T", msg)
	}
	if extended.err != nil || extended.id != "idea_27" {
		t.Errorf("unexpected extension result %+v", extended)
	}

	app.Update(extended)
	if !strings.Contains(app.View(), "idea_27 is now in the index") {
		t.Error("expected indexed message in view")
	}
	if got := catalog.SearchFast("urbano"); len(got) != 1 {
		t.Errorf("expected idea in index, got %v", got)
	}
}

func TestApp_EditWithoutFileBackend(t *testing.T) {
	app, _ := newTestApp(t, Config{})

	_, cmd := app.Update(views.EditStoreMsg{})
	app.Update(cmd())

	if !strings.Contains(app.View(), "editing requires the file backend") {
		t.Error("expected file backend error in view")
	}
}

type fakeEditor struct{ path string }

func (f *fakeEditor) OpenFile(path string) error {
	f.path = path
	return nil
}

func (f *fakeEditor) Command(path string) (*exec.Cmd, error) {
	f.path = path
	return exec.Command("true"), nil
}

type fakeLocator struct{}

func (fakeLocator) DocumentPath(key string) string {
	return "/data/" + key + ".json"
}

func TestApp_EditOpensIdeasDocumentAndReloads(t *testing.T) {
	ed := &fakeEditor{}
	app, _ := newTestApp(t, Config{Editor: ed, Locator: fakeLocator{}})

	_, cmd := app.Update(views.EditStoreMsg{})
	if cmd == nil {
		t.Fatal("expected exec command")
	}
	if ed.path != "/data/ideas.json" {
		t.Errorf("expected ideas document, got %q", ed.path)
	}

	app.Update(editorFinishedMsg{})
	if !strings.Contains(app.View(), "Reloaded ideas") {
		t.Error("expected reload message in view")
	}
}
