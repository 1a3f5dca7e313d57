// Package report renders fetched wallet balances as plain text.
package report

import (
	"fmt"
	"io"

	"github/chapool/sol-balance/internal/wallet/balance"
)

// Write renders the balance report for all wallets to w, preserving the
// order the results were fetched in.
func Write(w io.Writer, results []*balance.WalletBalance) {
	fmt.Fprintln(w, "Detailed Wallet Balances:")

	for _, result := range results {
		fmt.Fprintf(w, "Wallet: %s\n", result.Address)
		fmt.Fprintf(w, "SOL Balance: %.4f SOL\n", result.SOLBalance)

		fmt.Fprintln(w, "Token Balances:")
		for _, token := range result.TokenBalances {
			fmt.Fprintf(w, "  %s: %.4f\n", token.Ticker, token.Amount)
		}

		fmt.Fprintln(w)
	}
}
