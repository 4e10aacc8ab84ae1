package photo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"rapport/internal/ports"
)

// ErrNoPhoto is returned when a contact has no photo path
var ErrNoPhoto = errors.New("contact has no photo")

// Opener implements ports.PhotoOpener with the system image viewer
type Opener struct {
	goos string
}

// Ensure Opener implements PhotoOpener
var _ ports.PhotoOpener = (*Opener)(nil)

// NewOpener creates a new photo opener for the running OS
func NewOpener() *Opener {
	return &Opener{goos: runtime.GOOS}
}

// Open shows the photo at path in the default viewer
func (o *Opener) Open(path string) error {
	resolved, err := o.Resolve(path)
	if err != nil {
		return err
	}
	cmd, err := o.BuildCommand(resolved)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Resolve expands ~ and checks the photo file exists
func (o *Opener) Resolve(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", ErrNoPhoto
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("photo not found: %s", path)
	}
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("photo path is a directory: %s", path)
	}
	return path, nil
}

// BuildCommand returns the viewer command for path without running it
func (o *Opener) BuildCommand(path string) (*exec.Cmd, error) {
	switch o.goos {
	case "darwin":
		return exec.Command("open", path), nil
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", path), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}
