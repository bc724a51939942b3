package ports

import "os/exec"

// EditorOpener opens store documents in an external editor
type EditorOpener interface {
	// OpenFile edits path in $EDITOR (or $VISUAL, or a common fallback) and
	// blocks until the editor exits
	OpenFile(path string) error

	// Command returns the editor process without starting it, for use with
	// bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}

// DocumentLocator is implemented by stores whose entries live in files a
// user can edit directly
type DocumentLocator interface {
	DocumentPath(key string) string
}
