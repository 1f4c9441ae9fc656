/*
Package txsend contains transaction submission commands.
*/
package txsend

import (
	"encoding/json"
	"strconv"

	"github.com/etrid/etrcli/cli/cmdargs"
	"github.com/etrid/etrcli/cli/flags"
	"github.com/etrid/etrcli/cli/options"
	"github.com/etrid/etrcli/cli/output"
	"github.com/etrid/etrcli/pkg/rpcclient"
	"github.com/urfave/cli"
)

// NewCommands returns transaction sending commands.
func NewCommands() []cli.Command {
	return []cli.Command{
		{
			Name:      "send",
			Usage:     "transfer tokens between accounts",
			UsageText: "send <from> <to> <amount> [fee]",
			Description: `Transfers the given amount of tokens. The fee defaults to ` +
				strconv.FormatUint(rpcclient.DefaultFee, 10) + `.`,
			Action:          sendTransaction,
			SkipFlagParsing: true,
		},
		{
			Name:            "sendraw",
			Usage:           "submit a signed raw transaction",
			UsageText:       "sendraw <hex>",
			Action:          sendRawTransaction,
			SkipFlagParsing: true,
		},
	}
}

func sendTransaction(ctx *cli.Context) error {
	if err := cmdargs.EnsureArgs(ctx, 1, "from", "to", "amount"); err != nil {
		return output.NewError(err)
	}
	var (
		args = ctx.Args()
		from = args.Get(0)
		to   = args.Get(1)
	)
	amount, err := flags.ParseAmount("amount", args.Get(2))
	if err != nil {
		return output.NewError(err)
	}
	fee, err := flags.ParseAmount("fee", cmdargs.GetOptionalArg(ctx, 3, strconv.FormatUint(rpcclient.DefaultFee, 10)))
	if err != nil {
		return output.NewError(err)
	}
	return options.Invoke(ctx, func(c *rpcclient.Client) (json.RawMessage, error) {
		return c.SendTransaction(from, to, amount, fee)
	})
}

func sendRawTransaction(ctx *cli.Context) error {
	if err := cmdargs.EnsureArgs(ctx, 0, "hex"); err != nil {
		return output.NewError(err)
	}
	raw := ctx.Args().Get(0)
	return options.Invoke(ctx, func(c *rpcclient.Client) (json.RawMessage, error) {
		return c.SendRawTransaction(raw)
	})
}
