package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/sol-balance/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadBalanceConfig(t *testing.T) {
	path := writeConfigFile(t, `solana_rpc_url: "https://rpc.example.com"
wallets:
  - "11111111111111111111111111111111"
  - "So11111111111111111111111111111111111111112"
tokens:
  - address: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
    ticker: "USDC"
  - address: "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"
    ticker: "USDT"
`)

	cfg, err := config.LoadBalanceConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://rpc.example.com", cfg.SolanaRPCURL)
	require.Len(t, cfg.Wallets, 2)
	assert.Equal(t, "11111111111111111111111111111111", cfg.Wallets[0])
	require.Len(t, cfg.Tokens, 2)
	assert.Equal(t, "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", cfg.Tokens[0].Address)
	assert.Equal(t, "USDC", cfg.Tokens[0].Ticker)
	assert.Equal(t, "USDT", cfg.Tokens[1].Ticker)
}

func TestLoadBalanceConfigDefaultRPCURL(t *testing.T) {
	path := writeConfigFile(t, `wallets:
  - "11111111111111111111111111111111"
tokens: []
`)

	cfg, err := config.LoadBalanceConfig(path)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultSolanaRPCURL, cfg.SolanaRPCURL)
}

func TestLoadBalanceConfigMissingFile(t *testing.T) {
	_, err := config.LoadBalanceConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestLoadBalanceConfigMalformed(t *testing.T) {
	path := writeConfigFile(t, "wallets: [\"unterminated\n")

	_, err := config.LoadBalanceConfig(path)
	require.Error(t, err)
}
