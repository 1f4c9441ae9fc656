/*
Package cmdargs contains helpers for positional command arguments.
*/
package cmdargs

import (
	"strings"

	"github.com/etrid/etrcli/pkg/etrpc"
	"github.com/urfave/cli"
)

// EnsureArgs checks that every required positional argument is present and
// there are at most optional arguments more. Required arguments are named
// for the error message.
func EnsureArgs(ctx *cli.Context, optional int, required ...string) error {
	n := ctx.NArg()
	if n < len(required) {
		return etrpc.NewInputError("missing %s argument, usage: %s", required[n], usage(ctx))
	}
	if n > len(required)+optional {
		return etrpc.NewInputError("too many arguments, usage: %s", usage(ctx))
	}
	return nil
}

// EnsureNone returns an error if there are any positional arguments present.
// It can be used to check for them in commands that don't accept arguments.
func EnsureNone(ctx *cli.Context) error {
	return EnsureArgs(ctx, 0)
}

// GetOptionalArg returns the i-th positional argument or def if it's not
// given.
func GetOptionalArg(ctx *cli.Context, i int, def string) string {
	if ctx.NArg() > i {
		return ctx.Args().Get(i)
	}
	return def
}

// ParseVote converts a vote word into a boolean. Case is ignored.
func ParseVote(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	}
	return false, etrpc.NewInputError("invalid vote %q: use yes/no", s)
}

func usage(ctx *cli.Context) string {
	if ctx.Command.UsageText != "" {
		return ctx.Command.UsageText
	}
	return ctx.Command.Name
}
