package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/sol-balance/cmd/env"
	"github/chapool/sol-balance/cmd/report"
	"github/chapool/sol-balance/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "sol-balance",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

Reports SOL and SPL token balances for the wallets listed in config.yaml.`, config.ModuleName),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// running without a subcommand reports against ./config.yaml
		return report.Run(cmd.Context(), config.DefaultConfigFile)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		env.New(),
		report.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
