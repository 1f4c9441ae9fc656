/*
Package testcli provides an executor running the etrcli application against
a fake node in tests.
*/
package testcli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/etrid/etrcli/cli/app"
	"github.com/etrid/etrcli/cli/input"
	"github.com/etrid/etrcli/internal/fakenode"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
	"golang.org/x/term"
)

// Executor represents context for a test instance.
// It can be safely used in multiple tests, but not in parallel.
type Executor struct {
	// CLI is a cli application to test.
	CLI *cli.App
	// Node is a fake node commands are sent to.
	Node *fakenode.Node
	// Out contains command output.
	Out *bytes.Buffer
	// Err contains command errors.
	Err *bytes.Buffer
	// In contains command input.
	In *bytes.Buffer
}

// NewExecutor creates an Executor with a running fake node.
func NewExecutor(t *testing.T) *Executor {
	e := &Executor{
		CLI:  app.New(),
		Node: fakenode.New(t),
		Out:  bytes.NewBuffer(nil),
		Err:  bytes.NewBuffer(nil),
		In:   bytes.NewBuffer(nil),
	}
	e.CLI.Writer = e.Out
	e.CLI.ErrWriter = e.Err
	t.Cleanup(func() {
		input.Terminal = nil
	})
	return e
}

// NodeArgs returns the command line with connection options pointing to the
// fake node followed by args.
func (e *Executor) NodeArgs(args ...string) []string {
	host, port := e.Node.HostPort()
	return append([]string{"etrcli", "--rpcconnect", host, "--rpcport", port}, args...)
}

// Run runs command and checks that there were no errors.
func (e *Executor) Run(t *testing.T, args ...string) {
	require.NoError(t, e.run(args...))
	require.Empty(t, e.Err.String())
}

// RunWithError runs command and checks that it fails, the error is printed
// to Err the same way the etrcli binary does it. Nothing must be printed to
// Out in this case.
func (e *Executor) RunWithError(t *testing.T, args ...string) error {
	err := e.run(args...)
	require.Error(t, err)
	fmt.Fprintln(e.Err, err)
	require.Empty(t, e.Out.String())
	return err
}

// RunWithErrorCheck runs command expecting the given error message.
func (e *Executor) RunWithErrorCheck(t *testing.T, msg string, args ...string) {
	err := e.RunWithError(t, args...)
	require.Equal(t, msg, err.Error())
	require.Equal(t, msg+"\n", e.Err.String())
}

func (e *Executor) run(args ...string) error {
	e.Out.Reset()
	e.Err.Reset()
	input.Terminal = term.NewTerminal(input.ReadWriter{
		Reader: e.In,
		Writer: io.Discard,
	}, "")
	err := e.CLI.Run(args)
	input.Terminal = nil
	e.In.Reset()
	return err
}

// GetNextLine returns the next line of the command output.
func (e *Executor) GetNextLine(t *testing.T) string {
	line, err := e.Out.ReadString('\n')
	require.NoError(t, err)
	return strings.TrimSuffix(line, "\n")
}

// CheckNextLine checks the next output line against the regexp.
func (e *Executor) CheckNextLine(t *testing.T, expected string) {
	line := e.GetNextLine(t)
	require.Regexp(t, expected, line)
}

// CheckEOF checks that there is no more output.
func (e *Executor) CheckEOF(t *testing.T) {
	_, err := e.Out.ReadString('\n')
	require.True(t, errors.Is(err, io.EOF))
}

// CheckJSON checks that the whole output is the given JSON value.
func (e *Executor) CheckJSON(t *testing.T, expected string) {
	require.JSONEq(t, expected, e.Out.String())
}
