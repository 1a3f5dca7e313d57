package env

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/sol-balance/internal/config"
)

const (
	configFlag string = "config"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the resolved balance config as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString(configFlag)
			if err != nil {
				return err
			}

			cfg, err := config.LoadBalanceConfig(path)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to marshal config")
			}

			fmt.Println(string(out))

			return nil
		},
	}

	cmd.Flags().StringP(configFlag, "c", config.DefaultConfigFile, "path to the balance config file")

	return cmd
}
