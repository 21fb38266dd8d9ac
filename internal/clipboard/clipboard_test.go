package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lookPathFor(installed ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, n := range installed {
			if n == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		wayland   bool
		installed []string
		want      string
		ok        bool
	}{
		{name: "mac", goos: "darwin", installed: []string{"pbcopy"}, want: "pbcopy", ok: true},
		{name: "linux prefers xclip", goos: "linux", installed: []string{"xsel", "xclip"}, want: "xclip", ok: true},
		{name: "linux falls back to xsel", goos: "linux", installed: []string{"xsel"}, want: "xsel", ok: true},
		{name: "wayland prefers wl-copy", goos: "linux", wayland: true, installed: []string{"xclip", "wl-copy"}, want: "wl-copy", ok: true},
		{name: "wayland without wl-copy", goos: "linux", wayland: true, installed: []string{"xclip"}, want: "xclip", ok: true},
		{name: "nothing installed", goos: "linux"},
		{name: "windows", goos: "windows", installed: []string{"cmd"}, want: "cmd", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := find(tt.goos, tt.wayland, lookPathFor(tt.installed...))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, c.name)
		})
	}
}
