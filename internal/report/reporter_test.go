package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github/chapool/sol-balance/internal/report"
	"github/chapool/sol-balance/internal/wallet/balance"
)

func TestWrite(t *testing.T) {
	results := []*balance.WalletBalance{
		{
			Address:    "11111111111111111111111111111111",
			SOLBalance: 2.5,
			TokenBalances: []balance.TokenBalance{
				{Ticker: "USDC", Amount: 5},
				{Ticker: "WSOL", Amount: 0},
			},
		},
	}

	var buf bytes.Buffer
	report.Write(&buf, results)

	expected := `Detailed Wallet Balances:
Wallet: 11111111111111111111111111111111
SOL Balance: 2.5000 SOL
Token Balances:
  USDC: 5.0000
  WSOL: 0.0000

`
	assert.Equal(t, expected, buf.String())
}

func TestWriteNoWallets(t *testing.T) {
	var buf bytes.Buffer
	report.Write(&buf, nil)

	assert.Equal(t, "Detailed Wallet Balances:\n", buf.String())
}
