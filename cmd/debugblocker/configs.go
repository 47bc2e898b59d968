package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/progracyd/debugblocker/internal/config"
	"github.com/progracyd/debugblocker/internal/iotable"
	"github.com/progracyd/debugblocker/internal/sim"
)

// newConfigsCmd exposes the field-subset configuration generator in
// isolation, for debugging the configuration policy itself without
// running the full join, mirroring how the original C++ keeps
// generate_config/sort_config independently callable on
// GenerateRecomLists rather than folding them into one opaque entry
// point.
func newConfigsCmd() *cobra.Command {
	var inputPath string
	var sortBySize bool

	cmd := &cobra.Command{
		Use:   "configs",
		Short: "Print the field-subset configuration family for an input document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigs(inputPath, sortBySize)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a JSON input document (required)")
	cmd.Flags().BoolVar(&sortBySize, "sort-by-size", false, "resequence the family the way the original sort_config does")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runConfigs(inputPath string, sortBySize bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("configs: opening input: %w", err)
	}
	defer in.Close()

	doc, err := iotable.ReadDocument(in)
	if err != nil {
		return err
	}

	families := sim.GenerateConfigs(doc.Fields, doc.LeftTokenSums, doc.RightTokenSums, cfg.Join.FieldRemoveRatio, len(doc.LeftTokens), len(doc.RightTokens))
	if sortBySize {
		families = sim.SortConfigsBySize(families)
	}

	for i, f := range families {
		fmt.Printf("%3d: %v\n", i, f)
	}
	return nil
}
