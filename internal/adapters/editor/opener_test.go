package editor

import (
	"slices"
	"testing"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name     string
		editor   string
		visual   string
		wantArgs []string
	}{
		{
			name:     "editor",
			editor:   "nano",
			wantArgs: []string{"nano", "/data/ideas.json"},
		},
		{
			name:     "editor with flags",
			editor:   "code --wait",
			wantArgs: []string{"code", "--wait", "/data/ideas.json"},
		},
		{
			name:     "visual fallback",
			visual:   "emacs",
			wantArgs: []string{"emacs", "/data/ideas.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.editor)
			t.Setenv("VISUAL", tt.visual)

			cmd, err := NewOpener().Command("/data/ideas.json")
			if err != nil {
				t.Fatalf("Command failed: %v", err)
			}
			if !slices.Equal(cmd.Args, tt.wantArgs) {
				t.Errorf("expected args %v, got %v", tt.wantArgs, cmd.Args)
			}
		})
	}
}

func TestNewOpenerWith_OverridesEnvironment(t *testing.T) {
	t.Setenv("EDITOR", "nano")

	cmd, err := NewOpenerWith("true").Command("ideas.json")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if cmd.Args[0] != "true" {
		t.Errorf("expected override editor, got %s", cmd.Args[0])
	}
}

func TestCommand_NoEditor(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")
	t.Setenv("PATH", t.TempDir())

	if _, err := NewOpener().Command("ideas.json"); err == nil {
		t.Error("expected error when no editor is available")
	}
}
