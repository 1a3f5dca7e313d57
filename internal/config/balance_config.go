package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigFile is the config path used when no --config flag is given.
	DefaultConfigFile = "config.yaml"

	// DefaultSolanaRPCURL is the public mainnet endpoint used when the config
	// file does not set solana_rpc_url.
	DefaultSolanaRPCURL = "https://api.mainnet-beta.solana.com"
)

// TokenDescriptor is one SPL token entry from the config file: the mint
// address (base58) plus an arbitrary display ticker. No uniqueness is
// enforced across entries.
type TokenDescriptor struct {
	Address string `json:"address" mapstructure:"address"`
	Ticker  string `json:"ticker" mapstructure:"ticker"`
}

// BalanceConfig is the full balance reporter configuration. It is loaded
// once at startup and never mutated afterwards.
type BalanceConfig struct {
	SolanaRPCURL string            `json:"solana_rpc_url" mapstructure:"solana_rpc_url"`
	Wallets      []string          `json:"wallets" mapstructure:"wallets"`
	Tokens       []TokenDescriptor `json:"tokens" mapstructure:"tokens"`
}

// LoadBalanceConfig reads and parses the YAML config file at path.
// A missing, unreadable or malformed file fails the whole run; there is no
// partial config.
func LoadBalanceConfig(path string) (*BalanceConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("solana_rpc_url", DefaultSolanaRPCURL)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", path)
	}

	cfg := &BalanceConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file: %s", path)
	}

	return cfg, nil
}
