package ports

import "os/exec"

// EditorOpener opens snapshot files in the user's editor
type EditorOpener interface {
	// OpenFile blocks until the editor exits
	OpenFile(path string) error

	// Command builds the editor process without starting it, for bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
