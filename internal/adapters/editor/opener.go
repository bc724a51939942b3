package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"ideaindex/internal/ports"
)

var _ ports.EditorOpener = (*Opener)(nil)

// fallbacks are tried in order when neither $EDITOR nor $VISUAL is set
var fallbacks = []string{"nvim", "vim", "vi", "nano"}

// Opener launches the user's editor on a store document
type Opener struct {
	editor string
}

// NewOpener creates an opener that resolves the editor from the environment
func NewOpener() *Opener {
	return &Opener{}
}

// NewOpenerWith creates an opener that always runs the given editor command
func NewOpenerWith(editor string) *Opener {
	return &Opener{editor: editor}
}

// OpenFile edits path and waits for the editor to exit
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command builds the editor process for path. The editor setting may carry
// arguments, e.g. EDITOR="code --wait".
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	fields := strings.Fields(o.findEditor())
	if len(fields) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	args := append(fields[1:], path)
	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

func (o *Opener) findEditor() string {
	if o.editor != "" {
		return o.editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	for _, editor := range fallbacks {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}
	return ""
}
