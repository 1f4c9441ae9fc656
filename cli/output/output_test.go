package output

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/etrid/etrcli/pkg/etrpc"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func newContext(t *testing.T, compact bool) (*cli.Context, *bytes.Buffer) {
	buf := bytes.NewBuffer(nil)
	app := cli.NewApp()
	app.Writer = buf

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.Bool(CompactFlag, false, "")
	if compact {
		require.NoError(t, set.Parse([]string{"-" + CompactFlag}))
	}
	return cli.NewContext(app, set, nil), buf
}

func TestNewError(t *testing.T) {
	t.Run("node error", func(t *testing.T) {
		err := NewError(etrpc.NewError(-32000, "Insufficient balance"))
		require.EqualError(t, err, "Error [-32000]: Insufficient balance")
		require.True(t, etrpc.IsApplication(err))
	})
	t.Run("input error", func(t *testing.T) {
		err := NewError(etrpc.NewInputError("amount must be positive"))
		require.EqualError(t, err, "Error [-2]: amount must be positive")
		require.ErrorIs(t, err, etrpc.ErrInvalidInput)
	})
	t.Run("plain error", func(t *testing.T) {
		err := NewError(errors.New("boom"))
		require.EqualError(t, err, "Error [-1]: boom")
		require.ErrorIs(t, err, etrpc.ErrTransport)
	})
	t.Run("already wrapped", func(t *testing.T) {
		e := NewError(etrpc.NewInputError("x"))
		require.Same(t, e, NewError(e))
	})
	require.NoError(t, NewError(nil))
}

func TestPrintResult(t *testing.T) {
	const raw = `{"z":1,"a":{"b":[1,2]}}`

	t.Run("indented", func(t *testing.T) {
		ctx, buf := newContext(t, false)
		require.NoError(t, PrintResult(ctx, []byte(raw)))
		require.Equal(t, "{\n  \"z\": 1,\n  \"a\": {\n    \"b\": [\n      1,\n      2\n    ]\n  }\n}\n", buf.String())
	})
	t.Run("compact", func(t *testing.T) {
		ctx, buf := newContext(t, true)
		require.NoError(t, PrintResult(ctx, []byte("{ \"z\" : 1,\n \"a\": {\"b\": [1, 2]} }")))
		require.Equal(t, raw+"\n", buf.String())
	})
	t.Run("null", func(t *testing.T) {
		ctx, buf := newContext(t, false)
		require.NoError(t, PrintResult(ctx, []byte("null")))
		require.Equal(t, "null\n", buf.String())
	})
	t.Run("malformed", func(t *testing.T) {
		ctx, buf := newContext(t, false)
		err := PrintResult(ctx, []byte("{"))
		require.ErrorIs(t, err, etrpc.ErrTransport)
		require.Empty(t, buf.String())
	})
}
