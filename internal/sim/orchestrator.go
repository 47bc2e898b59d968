package sim

import (
	"sync"

	"github.com/gammazero/workerpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/progracyd/debugblocker/internal/logging"
	"github.com/progracyd/debugblocker/internal/metrics"
	"github.com/progracyd/debugblocker/internal/token"
)

// Request bundles the inputs Recommend and RecommendConcurrent share.
type Request struct {
	L, R             token.Table
	Xl, Xr           token.FieldTable
	SumL, SumR       token.TokenSums
	Fields           []int
	Candidates       token.CandidateSet
	FieldRemoveRatio float64
	OutputSize       int
}

// Recommend generates the configuration family, runs the top-k join
// per configuration against that configuration's projected tables, and
// fuses the results by per-pair rank median. Configurations are
// evaluated sequentially; see RecommendConcurrent for the
// worker-pool-dispatched variant.
func Recommend(req Request) ([]RecPair, error) {
	if err := validateInputs(req.L, req.R, req.Xl, req.Xr, req.SumL, req.SumR, req.Fields, req.FieldRemoveRatio, req.OutputSize); err != nil {
		return nil, err
	}

	configs := GenerateConfigs(req.Fields, req.SumL, req.SumR, req.FieldRemoveRatio, len(req.L), len(req.R))

	lists := make([]RankList, len(configs))
	for i, cfg := range configs {
		lists[i], _ = runConfig(req, cfg)
	}

	return AggregateRanks(lists), nil
}

// RecommendConcurrent has the identical contract to Recommend, but
// dispatches each configuration's top-k join to a gammazero/workerpool,
// since the configurations are independent and each worker owns its
// own heaps, inverted indices and compared-set (via runConfig) with no
// mutable state crossing configurations. logger and recorder may be
// nil.
func RecommendConcurrent(req Request, workers int, logger *logging.Logger, recorder *metrics.Recorder) ([]RecPair, error) {
	if err := validateInputs(req.L, req.R, req.Xl, req.Xr, req.SumL, req.SumR, req.Fields, req.FieldRemoveRatio, req.OutputSize); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	configs := GenerateConfigs(req.Fields, req.SumL, req.SumR, req.FieldRemoveRatio, len(req.L), len(req.R))
	lists := make([]RankList, len(configs))

	pool := workerpool.New(workers)
	var wg sync.WaitGroup
	wg.Add(len(configs))

	for i, cfg := range configs {
		i, cfg := i, cfg
		pool.Submit(func() {
			defer wg.Done()

			var timer *prometheus.Timer
			if recorder != nil {
				timer = prometheus.NewTimer(recorder.JoinDuration)
			}

			var stats Stats
			lists[i], stats = runConfig(req, cfg)

			if recorder != nil {
				timer.ObserveDuration()
				recorder.ConfigsEvaluated.Inc()
				recorder.PrefixEventsProcessed.Add(float64(stats.EventsProcessed))
				recorder.PairsScored.Add(float64(stats.PairsScored))
			}
			if logger != nil {
				logger.With("config", cfg).With("pairs", len(lists[i])).Info("configuration evaluated")
			}
		})
	}

	wg.Wait()
	pool.StopWait()

	return AggregateRanks(lists), nil
}

// runConfig projects both tables onto cfg and runs the top-k join,
// converting the result into a RankList keyed by the pair alongside
// the join's Stats for the caller to fold into its metrics.
func runConfig(req Request, cfg []int) (RankList, Stats) {
	fields := fieldSet(cfg)
	lProj, _ := ProjectFields(fields, req.L, req.Xl)
	rProj, _ := ProjectFields(fields, req.R, req.Xr)

	pairs, stats := TopK(lProj, rProj, req.Candidates, req.OutputSize)
	return rankListFromTopK(pairs), stats
}
