/*
Package account contains the node-side account management commands.
*/
package account

import (
	"encoding/json"

	"github.com/etrid/etrcli/cli/cmdargs"
	"github.com/etrid/etrcli/cli/options"
	"github.com/etrid/etrcli/cli/output"
	"github.com/etrid/etrcli/pkg/etrpc"
	"github.com/etrid/etrcli/pkg/rpcclient"
	"github.com/urfave/cli"
)

const usage = "account <create|list|info|import> [arguments]"

// NewCommands returns 'account' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:      "account",
		Usage:     "manage accounts stored on the node",
		UsageText: usage,
		Action:    unknownSubcommand,
		Subcommands: []cli.Command{
			{
				Name:            "create",
				Usage:           "create a new account",
				UsageText:       "account create [name]",
				Action:          createAccount,
				SkipFlagParsing: true,
			},
			{
				Name:            "list",
				Usage:           "list node accounts",
				UsageText:       "account list",
				Action:          listAccounts,
				SkipFlagParsing: true,
			},
			{
				Name:            "info",
				Usage:           "print account details",
				UsageText:       "account info <address>",
				Action:          accountInfo,
				SkipFlagParsing: true,
			},
			{
				Name:            "import",
				Usage:           "import an account from its private key",
				UsageText:       "account import <private-key> [name]",
				Action:          importAccount,
				SkipFlagParsing: true,
			},
		},
	}}
}

func unknownSubcommand(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return output.NewError(etrpc.NewInputError("missing account subcommand, usage: %s", usage))
	}
	return output.NewError(etrpc.NewInputError("unknown account subcommand %q", ctx.Args().First()))
}

func createAccount(ctx *cli.Context) error {
	if err := cmdargs.EnsureArgs(ctx, 1); err != nil {
		return output.NewError(err)
	}
	name := cmdargs.GetOptionalArg(ctx, 0, "")
	return options.Invoke(ctx, func(c *rpcclient.Client) (json.RawMessage, error) {
		return c.AccountCreate(name)
	})
}

func listAccounts(ctx *cli.Context) error {
	if err := cmdargs.EnsureNone(ctx); err != nil {
		return output.NewError(err)
	}
	return options.Invoke(ctx, (*rpcclient.Client).AccountList)
}

func accountInfo(ctx *cli.Context) error {
	if err := cmdargs.EnsureArgs(ctx, 0, "address"); err != nil {
		return output.NewError(err)
	}
	addr := ctx.Args().Get(0)
	return options.Invoke(ctx, func(c *rpcclient.Client) (json.RawMessage, error) {
		return c.AccountInfo(addr)
	})
}

func importAccount(ctx *cli.Context) error {
	if err := cmdargs.EnsureArgs(ctx, 1, "private-key"); err != nil {
		return output.NewError(err)
	}
	var (
		key  = ctx.Args().Get(0)
		name = cmdargs.GetOptionalArg(ctx, 1, "")
	)
	return options.Invoke(ctx, func(c *rpcclient.Client) (json.RawMessage, error) {
		return c.AccountImport(key, name)
	})
}
