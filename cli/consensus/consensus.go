/*
Package consensus contains Consensus Day governance commands.
*/
package consensus

import (
	"encoding/json"

	"github.com/etrid/etrcli/cli/cmdargs"
	"github.com/etrid/etrcli/cli/flags"
	"github.com/etrid/etrcli/cli/options"
	"github.com/etrid/etrcli/cli/output"
	"github.com/etrid/etrcli/pkg/rpcclient"
	"github.com/urfave/cli"
)

// NewCommands returns Consensus Day commands.
func NewCommands() []cli.Command {
	return []cli.Command{
		{
			Name:            "consensusday",
			Usage:           "print the current Consensus Day",
			UsageText:       "consensusday",
			Action:          currentDay,
			SkipFlagParsing: true,
		},
		{
			Name:            "consensusdayinfo",
			Usage:           "print the given Consensus Day",
			UsageText:       "consensusdayinfo <day>",
			Action:          dayInfo,
			SkipFlagParsing: true,
		},
		{
			Name:      "vote",
			Usage:     "vote for a proposal",
			UsageText: "vote <validator> <proposal> <yes|no>",
			Description: `Submits the validator's vote. Accepted vote words are
   yes, true, 1 and no, false, 0 (case-insensitive).`,
			Action:          submitVote,
			SkipFlagParsing: true,
		},
	}
}

func currentDay(ctx *cli.Context) error {
	if err := cmdargs.EnsureNone(ctx); err != nil {
		return output.NewError(err)
	}
	return options.Invoke(ctx, (*rpcclient.Client).ConsensusDay)
}

func dayInfo(ctx *cli.Context) error {
	if err := cmdargs.EnsureArgs(ctx, 0, "day"); err != nil {
		return output.NewError(err)
	}
	day, err := flags.ParseAmount("day number", ctx.Args().Get(0))
	if err != nil {
		return output.NewError(err)
	}
	return options.Invoke(ctx, func(c *rpcclient.Client) (json.RawMessage, error) {
		return c.ConsensusDayInfo(day)
	})
}

func submitVote(ctx *cli.Context) error {
	if err := cmdargs.EnsureArgs(ctx, 0, "validator", "proposal", "vote"); err != nil {
		return output.NewError(err)
	}
	args := ctx.Args()
	vote, err := cmdargs.ParseVote(args.Get(2))
	if err != nil {
		return output.NewError(err)
	}
	validator, proposal := args.Get(0), args.Get(1)
	return options.Invoke(ctx, func(c *rpcclient.Client) (json.RawMessage, error) {
		return c.SubmitVote(validator, proposal, vote)
	})
}
