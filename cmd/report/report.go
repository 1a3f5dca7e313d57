package report

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/sol-balance/internal/config"
	reporter "github/chapool/sol-balance/internal/report"
	"github/chapool/sol-balance/internal/wallet/balance"
	"github/chapool/sol-balance/internal/wallet/chain"
)

const (
	configFlag string = "config"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print SOL and SPL token balances for all configured wallets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString(configFlag)
			if err != nil {
				return err
			}

			return Run(cmd.Context(), path)
		},
	}

	cmd.Flags().StringP(configFlag, "c", config.DefaultConfigFile, "path to the balance config file")

	return cmd
}

// Run loads the config, fetches every configured balance sequentially and
// writes the report to stdout. Any failure aborts the whole run.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadBalanceConfig(configPath)
	if err != nil {
		return err
	}

	client, err := chain.NewRPCClient(cfg.SolanaRPCURL)
	if err != nil {
		return errors.Wrap(err, "failed to create RPC client")
	}
	defer client.Close()

	balanceService := balance.NewService(client)

	results, err := balanceService.GetWalletBalances(ctx, cfg.Wallets, cfg.Tokens)
	if err != nil {
		return errors.Wrap(err, "failed to fetch wallet balances")
	}

	reporter.Write(os.Stdout, results)

	return nil
}
