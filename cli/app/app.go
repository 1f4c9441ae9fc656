package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/etrid/etrcli/cli/account"
	"github.com/etrid/etrcli/cli/consensus"
	"github.com/etrid/etrcli/cli/options"
	"github.com/etrid/etrcli/cli/output"
	"github.com/etrid/etrcli/cli/query"
	"github.com/etrid/etrcli/cli/stake"
	"github.com/etrid/etrcli/cli/txsend"
	"github.com/etrid/etrcli/pkg/config"
	"github.com/etrid/etrcli/pkg/etrpc"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "etrcli\nVersion: %s\nGoVersion: %s\n",
		version(),
		runtime.Version(),
	)
}

func version() string {
	if config.Version == "" {
		return "dev"
	}
	return config.Version
}

// New creates an etrcli instance of [cli.App] with all commands included.
// Command failures are returned from Run as *output.Error and are not
// printed by the application itself.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "etrcli"
	ctl.Version = version()
	ctl.Usage = "command-line client for an ËTRID node"
	ctl.UsageText = "etrcli [global options] <command> [subcommand] [arguments...]"
	ctl.Writer = os.Stdout
	ctl.ErrWriter = os.Stderr

	ctl.Flags = append(ctl.Flags, options.RPC...)
	ctl.Flags = append(ctl.Flags, options.Config, options.Compact, options.Debug)

	ctl.Commands = append(ctl.Commands, account.NewCommands()...)
	ctl.Commands = append(ctl.Commands, stake.NewCommands()...)
	ctl.Commands = append(ctl.Commands, query.NewCommands()...)
	ctl.Commands = append(ctl.Commands, txsend.NewCommands()...)
	ctl.Commands = append(ctl.Commands, consensus.NewCommands()...)

	ctl.Action = defaultAction
	ctl.OnUsageError = usageError
	return ctl
}

// defaultAction is called when no known command is given.
func defaultAction(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return cli.ShowAppHelp(ctx)
	}
	return output.NewError(etrpc.NewInputError("unknown command %q, see '%s help'", ctx.Args().First(), ctx.App.Name))
}

func usageError(_ *cli.Context, err error, _ bool) error {
	return output.NewError(etrpc.NewInputError("%s", err))
}
