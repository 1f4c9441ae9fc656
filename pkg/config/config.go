package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Version is the version of the client, set at build time.
var Version string

const (
	// DefaultRPCConnect is the default node host.
	DefaultRPCConnect = "127.0.0.1"
	// DefaultRPCPort is the default node JSON-RPC port.
	DefaultRPCPort = 9944
	// DefaultTimeout is the default request timeout in seconds.
	DefaultTimeout = 30
)

// ClientConfig is the optional configuration file of the command-line client.
// Any value set here is overridden by the corresponding command-line option.
type ClientConfig struct {
	RPCConnect  string `yaml:"RPCConnect"`
	RPCPort     uint16 `yaml:"RPCPort"`
	RPCUser     string `yaml:"RPCUser"`
	RPCPassword string `yaml:"RPCPassword"`
	// Timeout is the request timeout in seconds.
	Timeout  int    `yaml:"Timeout"`
	LogLevel string `yaml:"LogLevel"`
}

// Default returns ClientConfig filled with default values.
func Default() ClientConfig {
	return ClientConfig{
		RPCConnect: DefaultRPCConnect,
		RPCPort:    DefaultRPCPort,
		Timeout:    DefaultTimeout,
	}
}

// LoadClientConfig reads the configuration file from the given path. Values
// missing from the file keep their defaults.
func LoadClientConfig(path string) (ClientConfig, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("unable to load config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	err = dec.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration for consistency.
func (c ClientConfig) Validate() error {
	if c.RPCConnect == "" {
		return errors.New("empty RPCConnect")
	}
	if c.RPCPort == 0 {
		return errors.New("zero RPCPort")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid Timeout %d: must be positive", c.Timeout)
	}
	return nil
}
