// Package clipboard bridges to the OS clipboard through the platform
// clipboard utility, piping raw bytes over stdin/stdout. Success is
// judged by the subprocess exit status.
package clipboard

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnsupported indicates no clipboard utility is available for the
// current platform or display server.
var ErrUnsupported = errors.New("clipboard: no utility available")

// injectable for tests
var lookPath = exec.LookPath

type tool struct {
	name string
	args []string
}

// writeTool selects the utility for writing, preferring the Wayland
// tools when a Wayland session is detected.
func writeTool() (tool, bool) {
	switch runtime.GOOS {
	case "darwin":
		if _, err := lookPath("pbcopy"); err == nil {
			return tool{name: "pbcopy"}, true
		}
	case "linux":
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			if _, err := lookPath("wl-copy"); err == nil {
				return tool{name: "wl-copy"}, true
			}
		}
		if _, err := lookPath("xclip"); err == nil {
			return tool{name: "xclip", args: []string{"-selection", "clipboard"}}, true
		}
		if _, err := lookPath("xsel"); err == nil {
			return tool{name: "xsel", args: []string{"--clipboard", "--input"}}, true
		}
	}
	return tool{}, false
}

// readTool selects the utility for reading.
func readTool() (tool, bool) {
	switch runtime.GOOS {
	case "darwin":
		if _, err := lookPath("pbpaste"); err == nil {
			return tool{name: "pbpaste"}, true
		}
	case "linux":
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			if _, err := lookPath("wl-paste"); err == nil {
				return tool{name: "wl-paste", args: []string{"--no-newline"}}, true
			}
		}
		if _, err := lookPath("xclip"); err == nil {
			return tool{name: "xclip", args: []string{"-selection", "clipboard", "-o"}}, true
		}
		if _, err := lookPath("xsel"); err == nil {
			return tool{name: "xsel", args: []string{"--clipboard", "--output"}}, true
		}
	}
	return tool{}, false
}

// Write copies text to the system clipboard. The call is synchronous;
// a hung utility stalls it (accepted, user-triggered).
func Write(text string) error {
	t, ok := writeTool()
	if !ok {
		return ErrUnsupported
	}
	c := exec.Command(t.name, t.args...)
	c.Stdin = strings.NewReader(text)
	return c.Run()
}

// Read returns the system clipboard contents.
func Read() (string, error) {
	t, ok := readTool()
	if !ok {
		return "", ErrUnsupported
	}
	out, err := exec.Command(t.name, t.args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
