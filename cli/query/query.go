/*
Package query contains read-only chain and node queries.
*/
package query

import (
	"encoding/json"

	"github.com/etrid/etrcli/cli/cmdargs"
	"github.com/etrid/etrcli/cli/options"
	"github.com/etrid/etrcli/cli/output"
	"github.com/etrid/etrcli/pkg/etrpc"
	"github.com/etrid/etrcli/pkg/rpcclient"
	"github.com/urfave/cli"
)

// pingResult is printed by the 'ping' command on success.
type pingResult struct {
	Connected bool   `json:"connected"`
	Endpoint  string `json:"endpoint"`
}

// NewCommands returns query commands.
func NewCommands() []cli.Command {
	return []cli.Command{
		{
			Name:            "balance",
			Usage:           "print account balance",
			UsageText:       "balance <address>",
			Action:          queryBalance,
			SkipFlagParsing: true,
		},
		{
			Name:            "block",
			Usage:           "print block by its height or hash",
			UsageText:       "block <height|hash>",
			Action:          queryBlock,
			SkipFlagParsing: true,
		},
		{
			Name:            "transaction",
			Usage:           "print transaction by its hash",
			UsageText:       "transaction <hash>",
			Action:          queryTransaction,
			SkipFlagParsing: true,
		},
		{
			Name:            "blockchaininfo",
			Usage:           "print chain state",
			UsageText:       "blockchaininfo",
			Action:          blockchainInfo,
			SkipFlagParsing: true,
		},
		{
			Name:            "networkinfo",
			Usage:           "print node network state",
			UsageText:       "networkinfo",
			Action:          networkInfo,
			SkipFlagParsing: true,
		},
		{
			Name:            "ping",
			Usage:           "check that the node is reachable",
			UsageText:       "ping",
			Action:          ping,
			SkipFlagParsing: true,
		},
	}
}

func queryBalance(ctx *cli.Context) error {
	if err := cmdargs.EnsureArgs(ctx, 0, "address"); err != nil {
		return output.NewError(err)
	}
	addr := ctx.Args().Get(0)
	return options.Invoke(ctx, func(c *rpcclient.Client) (json.RawMessage, error) {
		return c.QueryBalance(addr)
	})
}

func queryBlock(ctx *cli.Context) error {
	if err := cmdargs.EnsureArgs(ctx, 0, "height or hash"); err != nil {
		return output.NewError(err)
	}
	id := ctx.Args().Get(0)
	return options.Invoke(ctx, func(c *rpcclient.Client) (json.RawMessage, error) {
		return c.QueryBlock(id)
	})
}

func queryTransaction(ctx *cli.Context) error {
	if err := cmdargs.EnsureArgs(ctx, 0, "hash"); err != nil {
		return output.NewError(err)
	}
	hash := ctx.Args().Get(0)
	return options.Invoke(ctx, func(c *rpcclient.Client) (json.RawMessage, error) {
		return c.QueryTransaction(hash)
	})
}

func blockchainInfo(ctx *cli.Context) error {
	if err := cmdargs.EnsureNone(ctx); err != nil {
		return output.NewError(err)
	}
	return options.Invoke(ctx, (*rpcclient.Client).GetBlockchainInfo)
}

func networkInfo(ctx *cli.Context) error {
	if err := cmdargs.EnsureNone(ctx); err != nil {
		return output.NewError(err)
	}
	return options.Invoke(ctx, (*rpcclient.Client).GetNetworkInfo)
}

func ping(ctx *cli.Context) error {
	if err := cmdargs.EnsureNone(ctx); err != nil {
		return output.NewError(err)
	}
	return options.Invoke(ctx, func(c *rpcclient.Client) (json.RawMessage, error) {
		if !c.TestConnection() {
			return nil, etrpc.NewTransportError("node at %s is not reachable", c.Endpoint())
		}
		return json.Marshal(pingResult{Connected: true, Endpoint: c.Endpoint()})
	})
}
