/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/etrid/etrcli/cli/input"
	"github.com/etrid/etrcli/cli/output"
	"github.com/etrid/etrcli/pkg/config"
	"github.com/etrid/etrcli/pkg/etrpc"
	"github.com/etrid/etrcli/pkg/rpcclient"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global option names. They're defined at the application level and can be
// read from any command context with Global* methods.
const (
	RPCConnectFlag  = "rpcconnect"
	RPCPortFlag     = "rpcport"
	RPCUserFlag     = "rpcuser"
	RPCPasswordFlag = "rpcpassword"
	TimeoutFlag     = "timeout"
	ConfigFlag      = "config"
	CompactFlag     = output.CompactFlag
	DebugFlag       = "debug"
)

// RPC is a set of flags used for the node connection.
var RPC = []cli.Flag{
	cli.StringFlag{
		Name:  RPCConnectFlag,
		Value: config.DefaultRPCConnect,
		Usage: "connect to the node on `IP`",
	},
	cli.UintFlag{
		Name:  RPCPortFlag,
		Value: config.DefaultRPCPort,
		Usage: "connect to the node on `PORT`",
	},
	cli.StringFlag{
		Name:   RPCUserFlag,
		Usage:  "`USER` name for RPC authentication",
		EnvVar: "ETRCLI_RPCUSER",
	},
	cli.StringFlag{
		Name:   RPCPasswordFlag,
		Usage:  "`PASSWORD` for RPC authentication (asked for interactively if only the user is given)",
		EnvVar: "ETRCLI_RPCPASSWORD",
	},
	cli.IntFlag{
		Name:  TimeoutFlag,
		Value: config.DefaultTimeout,
		Usage: "connection timeout in `SECONDS`",
	},
}

// Config is a flag for the client configuration file.
var Config = cli.StringFlag{
	Name:  ConfigFlag,
	Usage: "path to the YAML configuration `FILE`, command-line options take precedence over it",
}

// Compact is a flag for single-line JSON output.
var Compact = cli.BoolFlag{
	Name:  CompactFlag,
	Usage: "print results as single-line JSON",
}

// Debug is a flag for debug logging.
var Debug = cli.BoolFlag{
	Name:  DebugFlag,
	Usage: "enable debug logging to stderr",
}

// GetClientConfig merges the configuration file (if any) with the
// command-line options.
func GetClientConfig(ctx *cli.Context) (config.ClientConfig, error) {
	var (
		cfg = config.Default()
		err error
	)
	if path := ctx.GlobalString(ConfigFlag); path != "" {
		cfg, err = config.LoadClientConfig(path)
		if err != nil {
			return cfg, err
		}
	}
	if ctx.GlobalIsSet(RPCConnectFlag) {
		cfg.RPCConnect = ctx.GlobalString(RPCConnectFlag)
	}
	if ctx.GlobalIsSet(RPCPortFlag) {
		port := ctx.GlobalUint(RPCPortFlag)
		if port == 0 || port > 65535 {
			return cfg, fmt.Errorf("invalid port %d", port)
		}
		cfg.RPCPort = uint16(port)
	}
	if ctx.GlobalIsSet(RPCUserFlag) {
		cfg.RPCUser = ctx.GlobalString(RPCUserFlag)
	}
	if ctx.GlobalIsSet(RPCPasswordFlag) {
		cfg.RPCPassword = ctx.GlobalString(RPCPasswordFlag)
	}
	if ctx.GlobalIsSet(TimeoutFlag) {
		cfg.Timeout = ctx.GlobalInt(TimeoutFlag)
	}
	return cfg, cfg.Validate()
}

// Endpoint returns the node URL for the given configuration.
func Endpoint(cfg config.ClientConfig) string {
	return "http://" + net.JoinHostPort(cfg.RPCConnect, strconv.FormatUint(uint64(cfg.RPCPort), 10))
}

// GetRPCClient returns an RPC client instance for the given configuration.
// The client must be closed by the caller.
func GetRPCClient(gctx context.Context, cfg config.ClientConfig, log *zap.Logger) (*rpcclient.Client, error) {
	var (
		password = cfg.RPCPassword
		err      error
	)
	if cfg.RPCUser != "" && password == "" && input.IsInteractive() {
		password, err = input.ReadPassword(fmt.Sprintf("Enter RPC password for %s > ", cfg.RPCUser))
		if err != nil {
			return nil, etrpc.NewInputError("error reading password: %s", err)
		}
	}
	c, err := rpcclient.New(gctx, Endpoint(cfg), rpcclient.Options{
		Timeout:  time.Duration(cfg.Timeout) * time.Second,
		User:     cfg.RPCUser,
		Password: password,
		Logger:   log,
	})
	if err != nil {
		return nil, etrpc.NewInputError("%s", err)
	}
	return c, nil
}

// HandleLoggingParams builds the logger. Debug flag overrides the configured
// level. Logs are written to stderr.
func HandleLoggingParams(debug bool, logLevel string) (*zap.Logger, error) {
	var (
		level = zapcore.InfoLevel
		err   error
	)
	if len(logLevel) > 0 {
		level, err = zapcore.ParseLevel(logLevel)
		if err != nil {
			return nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil
	cc.OutputPaths = []string{"stderr"}
	cc.ErrorOutputPaths = []string{"stderr"}

	return cc.Build()
}

// Invoke is the common body of all node commands: it builds the logger and
// the client, performs the call and prints the result. Any failure is
// returned as *output.Error.
func Invoke(ctx *cli.Context, f func(*rpcclient.Client) (json.RawMessage, error)) error {
	cfg, err := GetClientConfig(ctx)
	if err != nil {
		return output.NewError(etrpc.NewInputError("%s", err))
	}
	log, err := HandleLoggingParams(ctx.GlobalBool(DebugFlag), cfg.LogLevel)
	if err != nil {
		return output.NewError(etrpc.NewInputError("%s", err))
	}
	defer func() { _ = log.Sync() }()

	c, err := GetRPCClient(context.Background(), cfg, log)
	if err != nil {
		return output.NewError(err)
	}
	defer c.Close()

	res, err := f(c)
	if err != nil {
		return output.NewError(err)
	}
	return output.PrintResult(ctx, res)
}
