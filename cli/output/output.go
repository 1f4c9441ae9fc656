/*
Package output prints command results and failures.
*/
package output

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/etrid/etrcli/pkg/etrpc"
	json "github.com/nspcc-dev/go-ordered-json"
	"github.com/urfave/cli"
)

// CompactFlag is the name of the global flag switching to single-line JSON.
const CompactFlag = "compact"

// Error is a command failure as shown to the user.
type Error struct {
	Err *etrpc.Error
}

// NewError converts err into *Error, errors that are not *etrpc.Error are
// reported as transport failures.
func NewError(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Err: etrpc.AsError(err)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("Error [%d]: %s", e.Err.Code, e.Err.Message)
}

// Unwrap returns the underlying RPC error.
func (e *Error) Unwrap() error {
	return e.Err
}

// PrintResult writes the result JSON to the application writer, indented
// unless compact output is requested. Key order is kept as the node sent it.
func PrintResult(ctx *cli.Context, raw []byte) error {
	var buf bytes.Buffer

	if len(raw) == 0 {
		raw = []byte("null")
	}
	var err error
	if ctx.GlobalBool(CompactFlag) {
		err = json.Compact(&buf, raw)
	} else {
		err = json.Indent(&buf, raw, "", "  ")
	}
	if err != nil {
		return NewError(etrpc.NewTransportError("malformed result: %s", err))
	}
	buf.WriteByte('\n')
	_, err = ctx.App.Writer.Write(buf.Bytes())
	return err
}
