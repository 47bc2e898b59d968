package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/progracyd/debugblocker/internal/config"
	"github.com/progracyd/debugblocker/internal/iotable"
	"github.com/progracyd/debugblocker/internal/logging"
	"github.com/progracyd/debugblocker/internal/metrics"
	"github.com/progracyd/debugblocker/internal/sim"
)

func newRecommendCmd() *cobra.Command {
	var inputPath, outputPath, metricsPath string

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Run the top-k join across configurations and write the fused recommendation list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(inputPath, outputPath, metricsPath)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a JSON input document (required)")
	cmd.Flags().StringVar(&outputPath, "output", "-", "path to write the ranked JSON output, or - for stdout")
	cmd.Flags().StringVar(&metricsPath, "metrics", "", "optional path to dump Prometheus text-exposition metrics")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runRecommend(inputPath, outputPath, metricsPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: logging.Format(cfg.Logging.Format),
	})

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("recommend: opening input: %w", err)
	}
	defer in.Close()

	doc, err := iotable.ReadDocument(in)
	if err != nil {
		return err
	}

	req := sim.Request{
		L:                doc.LeftTokens,
		R:                doc.RightTokens,
		Xl:               doc.LeftFieldIDs,
		Xr:               doc.RightFieldIDs,
		SumL:             doc.LeftTokenSums,
		SumR:             doc.RightTokenSums,
		Fields:           doc.Fields,
		Candidates:       doc.CandidateSet(),
		FieldRemoveRatio: cfg.Join.FieldRemoveRatio,
		OutputSize:       cfg.Join.OutputSize,
	}

	recorder := metrics.NewRecorder()
	logger.Info("starting recommend run")
	pairs, err := sim.RecommendConcurrent(req, cfg.Concurrency.Workers, logger, recorder)
	if err != nil {
		return err
	}
	logger.With("pairs", len(pairs)).Info("recommend run complete")

	out := os.Stdout
	if outputPath != "-" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("recommend: opening output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := iotable.WriteRecPairs(out, pairs); err != nil {
		return err
	}

	if metricsPath != "" {
		mf, err := os.Create(metricsPath)
		if err != nil {
			return fmt.Errorf("recommend: opening metrics file: %w", err)
		}
		defer mf.Close()
		if err := recorder.WriteTo(mf); err != nil {
			return fmt.Errorf("recommend: writing metrics: %w", err)
		}
	}

	return nil
}
