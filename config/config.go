package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"zyn/logx"
)

// ChainConfig identifies the target chain. Its fields are packed into the
// version word of every transaction, so a mismatch makes signatures
// unverifiable on the intended network.
type ChainConfig struct {
	ChainID    uint32 `yaml:"chain_id"`
	MsgVersion uint32 `yaml:"msg_version"`
}

type chainConfigFile struct {
	Chain ChainConfig `yaml:"chain"`
}

// Version packs chain id and message version into the on-wire version field:
// chain id in the high bits, message version in the low 16.
func (c ChainConfig) Version() uint64 {
	return uint64(c.ChainID)<<16 | uint64(c.MsgVersion&0xffff)
}

// DefaultChainConfig is used when no chain.yml is supplied.
func DefaultChainConfig() *ChainConfig {
	return &ChainConfig{ChainID: 1, MsgVersion: 1}
}

// LoadChainConfig reads and parses a chain.yml file.
func LoadChainConfig(path string) (*ChainConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open chain config")
	}
	defer file.Close()

	var cfgFile chainConfigFile
	if err := yaml.NewDecoder(file).Decode(&cfgFile); err != nil {
		return nil, errors.Wrap(err, "decode chain config")
	}
	logx.Info("CONFIG", "loaded chain config: chain_id=", cfgFile.Chain.ChainID,
		" msg_version=", cfgFile.Chain.MsgVersion)
	return &cfgFile.Chain, nil
}

// WalletConfig holds CLI signing defaults.
type WalletConfig struct {
	GasPrice uint64 `ini:"gas_price"`
	GasLimit uint64 `ini:"gas_limit"`
}

// DefaultWalletConfig returns the built-in signing defaults.
func DefaultWalletConfig() *WalletConfig {
	return &WalletConfig{GasPrice: 1, GasLimit: 50000}
}

// LoadWalletConfig reads wallet defaults from an ini file. An empty path
// yields the built-in defaults.
func LoadWalletConfig(path string) (*WalletConfig, error) {
	cfg := DefaultWalletConfig()
	if path == "" {
		return cfg, nil
	}
	file, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "load wallet config")
	}
	if err := file.Section("wallet").MapTo(cfg); err != nil {
		return nil, errors.Wrap(err, "map wallet config")
	}
	return cfg, nil
}
