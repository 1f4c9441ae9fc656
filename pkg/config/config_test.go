package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	p := filepath.Join(t.TempDir(), "etrcli.yml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadClientConfig(t *testing.T) {
	p := writeConfig(t, `RPCConnect: 10.0.0.5
RPCPort: 19944
RPCUser: alice
Timeout: 5
LogLevel: debug
`)
	cfg, err := LoadClientConfig(p)
	require.NoError(t, err)
	require.Equal(t, ClientConfig{
		RPCConnect: "10.0.0.5",
		RPCPort:    19944,
		RPCUser:    "alice",
		Timeout:    5,
		LogLevel:   "debug",
	}, cfg)
}

func TestLoadClientConfigDefaults(t *testing.T) {
	cfg, err := LoadClientConfig(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	cfg, err = LoadClientConfig(writeConfig(t, "RPCUser: bob\n"))
	require.NoError(t, err)
	require.Equal(t, "bob", cfg.RPCUser)
	require.Equal(t, DefaultRPCConnect, cfg.RPCConnect)
	require.EqualValues(t, DefaultRPCPort, cfg.RPCPort)
	require.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestLoadClientConfigErrors(t *testing.T) {
	_, err := LoadClientConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)

	_, err = LoadClientConfig(writeConfig(t, "UnknownKey: 1\n"))
	require.Error(t, err)

	_, err = LoadClientConfig(writeConfig(t, "Timeout: -1\n"))
	require.Error(t, err)

	_, err = LoadClientConfig(writeConfig(t, "RPCPort: 70000\n"))
	require.Error(t, err)
}
