package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/progracyd/debugblocker/internal/config"
)

// newConfigCmd prints the resolved configuration (file + env overrides
// applied on top of config.Default()) as YAML, the way
// jhkimqd-chaos-utils/cmd/chaos-runner's companion tooling lets an
// operator inspect what a run would actually use before starting it.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			out, err := cfg.YAML()
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}
}
