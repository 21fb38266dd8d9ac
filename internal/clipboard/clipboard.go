// Package clipboard copies text to the system clipboard through the
// platform's command-line helper.
package clipboard

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard helper is installed.
var ErrUnavailable = errors.New("no clipboard command available")

// command is a helper program and its arguments.
type command struct {
	name string
	args []string
}

// candidates lists helpers in order of preference for an OS. On Linux a
// Wayland session prefers wl-copy.
func candidates(goos string, wayland bool) []command {
	switch goos {
	case "darwin":
		return []command{{name: "pbcopy"}}
	case "windows":
		return []command{{name: "cmd", args: []string{"/c", "clip"}}}
	default:
		x11 := []command{
			{name: "xclip", args: []string{"-selection", "clipboard"}},
			{name: "xsel", args: []string{"--clipboard", "--input"}},
		}
		if wayland {
			return append([]command{{name: "wl-copy"}}, x11...)
		}
		return x11
	}
}

// find returns the first candidate that lookPath resolves.
func find(goos string, wayland bool, lookPath func(string) (string, error)) (command, bool) {
	for _, c := range candidates(goos, wayland) {
		if _, err := lookPath(c.name); err == nil {
			return c, true
		}
	}
	return command{}, false
}

func current() (command, bool) {
	return find(runtime.GOOS, os.Getenv("WAYLAND_DISPLAY") != "", exec.LookPath)
}

// Write copies text to the system clipboard.
func Write(text string) error {
	c, ok := current()
	if !ok {
		return ErrUnavailable
	}

	cmd := exec.Command(c.name, c.args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available checks if clipboard functionality is available.
func Available() bool {
	_, ok := current()
	return ok
}
