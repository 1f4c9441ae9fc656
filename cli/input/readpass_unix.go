//go:build !windows
// +build !windows

package input

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// errNoTTY is returned when there is no controlling terminal to ask for the
// password.
var errNoTTY = errors.New("no terminal available")

// readSecurePassword asks for the password on the controlling terminal, so
// that it works with redirected stdin and stdout too.
func readSecurePassword(prompt string) (string, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return "", fmt.Errorf("%w: %s", errNoTTY, err)
	}
	defer tty.Close()

	if _, err = fmt.Fprint(tty, prompt); err != nil {
		return "", err
	}
	pass, err := term.ReadPassword(int(tty.Fd()))
	fmt.Fprintln(tty)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pass), nil
}
