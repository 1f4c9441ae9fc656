package input

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func TestReadPasswordFromTerminal(t *testing.T) {
	in := bytes.NewBufferString("s3cret\r")
	Terminal = term.NewTerminal(ReadWriter{Reader: in, Writer: io.Discard}, "")
	t.Cleanup(func() { Terminal = nil })

	require.True(t, IsInteractive())
	pass, err := ReadPassword("Enter password > ")
	require.NoError(t, err)
	require.Equal(t, "s3cret", pass)

	_, err = ReadPassword("Enter password > ")
	require.Error(t, err)
}
