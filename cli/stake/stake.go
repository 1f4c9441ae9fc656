/*
Package stake contains staking and validator commands.
*/
package stake

import (
	"encoding/json"

	"github.com/etrid/etrcli/cli/cmdargs"
	"github.com/etrid/etrcli/cli/flags"
	"github.com/etrid/etrcli/cli/options"
	"github.com/etrid/etrcli/cli/output"
	"github.com/etrid/etrcli/pkg/rpcclient"
	"github.com/urfave/cli"
)

// NewCommands returns staking commands.
func NewCommands() []cli.Command {
	return []cli.Command{
		{
			Name:            "stake",
			Usage:           "stake tokens from the account",
			UsageText:       "stake <address> <amount>",
			Action:          stakeTokens,
			SkipFlagParsing: true,
		},
		{
			Name:            "unstake",
			Usage:           "unstake tokens, everything is unstaked if amount is omitted or zero",
			UsageText:       "unstake <address> [amount]",
			Action:          unstakeTokens,
			SkipFlagParsing: true,
		},
		{
			Name:            "stakeinfo",
			Usage:           "print staking information of the account",
			UsageText:       "stakeinfo <address>",
			Action:          stakeInfo,
			SkipFlagParsing: true,
		},
		{
			Name:            "validators",
			Usage:           "list current validators",
			UsageText:       "validators",
			Action:          listValidators,
			SkipFlagParsing: true,
		},
	}
}

func stakeTokens(ctx *cli.Context) error {
	if err := cmdargs.EnsureArgs(ctx, 0, "address", "amount"); err != nil {
		return output.NewError(err)
	}
	addr := ctx.Args().Get(0)
	amount, err := flags.ParseAmount("amount", ctx.Args().Get(1))
	if err != nil {
		return output.NewError(err)
	}
	return options.Invoke(ctx, func(c *rpcclient.Client) (json.RawMessage, error) {
		return c.StakeTokens(addr, amount)
	})
}

func unstakeTokens(ctx *cli.Context) error {
	if err := cmdargs.EnsureArgs(ctx, 1, "address"); err != nil {
		return output.NewError(err)
	}
	addr := ctx.Args().Get(0)
	amount, err := flags.ParseAmount("amount", cmdargs.GetOptionalArg(ctx, 1, "0"))
	if err != nil {
		return output.NewError(err)
	}
	return options.Invoke(ctx, func(c *rpcclient.Client) (json.RawMessage, error) {
		return c.UnstakeTokens(addr, amount)
	})
}

func stakeInfo(ctx *cli.Context) error {
	if err := cmdargs.EnsureArgs(ctx, 0, "address"); err != nil {
		return output.NewError(err)
	}
	addr := ctx.Args().Get(0)
	return options.Invoke(ctx, func(c *rpcclient.Client) (json.RawMessage, error) {
		return c.StakeInfo(addr)
	})
}

func listValidators(ctx *cli.Context) error {
	if err := cmdargs.EnsureNone(ctx); err != nil {
		return output.NewError(err)
	}
	return options.Invoke(ctx, (*rpcclient.Client).ListValidators)
}
