package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/searchlab/statesearch-go/puzzle"
	"github.com/searchlab/statesearch-go/search"
	"github.com/searchlab/statesearch-go/search/journal"
)

var benchFlags struct {
	configPath  string
	runs        int
	sizes       []int
	algo        string
	seed        int64
	maxDepth    int
	maxExpand   int
	journalKind string
	db          string
	metricsAddr string
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a benchmark campaign and tabulate per-size results",
	Long: "Bench generates random instances for each configured size, solves every\n" +
		"instance with the selected algorithm(s), records outcomes to a journal,\n" +
		"and prints a per-size summary table.",
	RunE: runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchFlags.configPath, "config", "", "YAML config file")
	benchCmd.Flags().IntVar(&benchFlags.runs, "runs", 10, "instances per size")
	benchCmd.Flags().IntSliceVar(&benchFlags.sizes, "sizes", []int{2, 3, 4}, "grid sizes to benchmark")
	benchCmd.Flags().StringVar(&benchFlags.algo, "algo", "both", "algorithm: astar, iddfs, or both")
	benchCmd.Flags().Int64Var(&benchFlags.seed, "seed", 0, "base RNG seed (0 = time-based)")
	benchCmd.Flags().IntVar(&benchFlags.maxDepth, "max-depth", 0, "iddfs depth ceiling (0 = default)")
	benchCmd.Flags().IntVar(&benchFlags.maxExpand, "max-expansions", 0, "iddfs expansion budget (0 = default)")
	benchCmd.Flags().StringVar(&benchFlags.journalKind, "journal", "memory", "journal backend: memory, sqlite, or mysql")
	benchCmd.Flags().StringVar(&benchFlags.db, "db", "./tilebench.db", "sqlite path or mysql DSN for the journal")
	benchCmd.Flags().StringVar(&benchFlags.metricsAddr, "metrics-addr", "", "expose prometheus metrics on this address (e.g. :9090)")
}

func runBench(cmd *cobra.Command, _ []string) error {
	cfg, err := benchConfig(cmd)
	if err != nil {
		return err
	}

	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	var metrics *search.PrometheusMetrics
	if benchFlags.metricsAddr != "" {
		registry := prometheus.NewRegistry()
		metrics = search.NewPrometheusMetrics(registry)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		go func() {
			_ = http.ListenAndServe(benchFlags.metricsAddr, mux)
		}()
	}

	for _, n := range cfg.Sizes {
		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(runtime.NumCPU())
		for r := 0; r < cfg.Runs; r++ {
			r := r
			g.Go(func() error {
				return benchOne(ctx, j, metrics, cfg, n, r)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	summaries, err := j.Summaries(cmd.Context())
	if err != nil {
		return err
	}
	printSummaryTable(summaries)
	return nil
}

// benchConfig merges the config file (if any) with explicitly set flags;
// flags win.
func benchConfig(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()
	if benchFlags.configPath != "" {
		loaded, err := LoadConfig(benchFlags.configPath)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("runs") {
		cfg.Runs = benchFlags.runs
	}
	if flags.Changed("sizes") {
		cfg.Sizes = benchFlags.sizes
	}
	if flags.Changed("algo") {
		cfg.Algorithm = benchFlags.algo
	}
	if flags.Changed("seed") {
		cfg.Seed = benchFlags.seed
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = benchFlags.maxDepth
	}
	if flags.Changed("max-expansions") {
		cfg.MaxExpansions = benchFlags.maxExpand
	}
	if flags.Changed("journal") {
		cfg.Journal = benchFlags.journalKind
	}
	if flags.Changed("db") {
		cfg.DB = benchFlags.db
	}

	switch cfg.Algorithm {
	case "astar", "iddfs", "both":
	default:
		return Config{}, fmt.Errorf("unknown algorithm %q (want astar, iddfs, or both)", cfg.Algorithm)
	}
	return cfg, nil
}

func openJournal(cfg Config) (journal.Journal, error) {
	switch cfg.Journal {
	case "memory", "":
		return journal.NewMemJournal(), nil
	case "sqlite":
		return journal.NewSQLiteJournal(cfg.DB)
	case "mysql":
		return journal.NewMySQLJournal(cfg.DB)
	default:
		return nil, fmt.Errorf("unknown journal backend %q (want memory, sqlite, or mysql)", cfg.Journal)
	}
}

// benchOne generates one instance and solves it with each selected
// algorithm. Every engine instance is private to this goroutine; only
// the journal is shared, and it is thread-safe.
func benchOne(ctx context.Context, j journal.Journal, metrics *search.PrometheusMetrics, cfg Config, n, run int) error {
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed + int64(n)*1000 + int64(run)))
	}

	start, goal, err := puzzle.Random(n, rng)
	if err != nil {
		return err
	}
	prob, err := puzzle.New(n, goal)
	if err != nil {
		return err
	}

	runID := fmt.Sprintf("bench-%dx%d-%03d", n, n, run)

	if cfg.Algorithm == "astar" || cfg.Algorithm == "both" {
		engine := search.NewAStar[puzzle.Grid, puzzle.Swap](prob, nil, metrics)
		began := time.Now()
		res, err := engine.Search(ctx, runID, start)
		if err != nil {
			return err
		}
		if err := recordResult(ctx, j, runID, "astar", n, res, time.Since(began)); err != nil {
			return err
		}
	}

	if cfg.Algorithm == "iddfs" || cfg.Algorithm == "both" {
		driver := search.NewIterativeDeepening[puzzle.Grid, puzzle.Swap](prob, nil, metrics, search.Options{
			MaxDepth:      cfg.MaxDepth,
			MaxExpansions: cfg.MaxExpansions,
		})
		began := time.Now()
		res, err := driver.Search(ctx, runID, start)
		if err != nil {
			return err
		}
		if err := recordResult(ctx, j, runID, "iddfs", n, res, time.Since(began)); err != nil {
			return err
		}
	}

	return nil
}

func recordResult(ctx context.Context, j journal.Journal, runID, algo string, n int, res search.Result[puzzle.Swap], elapsed time.Duration) error {
	rec := journal.RunRecord{
		RunID:       runID,
		Algorithm:   algo,
		Size:        n,
		Expanded:    res.Expanded,
		SolutionLen: len(res.Actions),
		Solved:      res.Found,
		Elapsed:     elapsed,
	}
	if res.Found {
		rec.Cost = res.Cost
	}
	return j.Record(ctx, rec)
}

func printSummaryTable(summaries []journal.Summary) {
	fmt.Println("| Size | Algo  | Runs | Solved | Avg expanded | Avg time |")
	fmt.Println("|------|-------|------|--------|--------------|----------|")
	for _, s := range summaries {
		fmt.Printf("| %dx%d  | %-5s | %4d | %6d | %12.0f | %8s |\n",
			s.Size, s.Size, s.Algorithm, s.Runs, s.Solved, s.AvgExpanded, s.AvgElapsed.Round(time.Millisecond))
	}
}
