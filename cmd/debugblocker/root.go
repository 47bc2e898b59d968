package main

import (
	"github.com/spf13/cobra"
)

var configPath string

// newRootCmd builds the cobra command tree, mirroring
// jhkimqd-chaos-utils/cmd/chaos-runner's flags-plus-subcommands layout
// generalized from a chaos-scenario runner to a recommend/debug
// runner.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "debugblocker",
		Short: "Recommend record pairs a blocking step likely missed",
		Long: `debugblocker runs a prefix-filtering top-k set-similarity join over
already-tokenized record tables, fused across several field-subset
configurations, to recommend additional candidate pairs for a human
to inspect when debugging recall loss in an entity-matching blocker.`,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML configuration file")

	root.AddCommand(newRecommendCmd())
	root.AddCommand(newConfigsCmd())
	root.AddCommand(newConfigCmd())
	return root
}
