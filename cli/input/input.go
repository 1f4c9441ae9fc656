package input

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal is a terminal used for input. If `nil`, stdin is used.
var Terminal *term.Terminal

// ReadWriter combiner.
type ReadWriter struct {
	io.Reader
	io.Writer
}

// IsInteractive returns true if the user can be asked for input.
func IsInteractive() bool {
	return Terminal != nil || term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadPassword reads the user's password with prompt.
func ReadPassword(prompt string) (string, error) {
	if Terminal != nil {
		return Terminal.ReadPassword(prompt)
	}
	return readSecurePassword(prompt)
}
