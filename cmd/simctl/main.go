// Command simctl drives the simulation engine from the command line:
// scripted scenarios, Monte Carlo batches, random walks, and session export.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jpritikin/urbb-web-sub002/internal/controller"
	"github.com/jpritikin/urbb-web-sub002/internal/headless"
	"github.com/jpritikin/urbb-web-sub002/internal/montecarlo"
	"github.com/jpritikin/urbb-web-sub002/internal/randomwalk"
	"github.com/jpritikin/urbb-web-sub002/internal/replay"
	"github.com/jpritikin/urbb-web-sub002/internal/scenario"
	"github.com/jpritikin/urbb-web-sub002/internal/session"
)

// #region root

func main() {
	root := &cobra.Command{
		Use:           "simctl",
		Short:         "Drive the parts-conference simulation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(scenarioCmd(), montecarloCmd(), randomwalkCmd(), exportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion root

// #region scenario

func scenarioCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "scenario <file>",
		Short: "Run a scripted scenario and evaluate its assertions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.LoadFile(args[0])
			if err != nil {
				return err
			}
			if seed != 0 {
				sc.Seed = seed
			}
			result, err := replay.RunScenario(sc, headless.DefaultConfig())
			if err != nil {
				return err
			}

			fmt.Printf("Scenario: %s\n", result.Name)
			for i, res := range result.StepResults {
				status := "ok"
				if !res.Success {
					status = "rejected: " + res.Message
				}
				fmt.Printf("  step %d: %s\n", i, status)
			}
			if result.Passed() {
				fmt.Printf("PASS (%d assertions)\n", len(sc.Assertions))
				return nil
			}
			for _, f := range result.Failures {
				fmt.Printf("  FAIL %s\n", f)
			}
			return fmt.Errorf("%d of %d assertions failed", len(result.Failures), len(sc.Assertions))
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "override the scenario's seed")
	return cmd
}

// #endregion scenario

// #region montecarlo

func montecarloCmd() *cobra.Command {
	cfg := montecarlo.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "montecarlo <file>",
		Short: "Run a scenario across many seeds and aggregate metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.LoadFile(args[0])
			if err != nil {
				return err
			}
			runner := montecarlo.New(sc, cfg, headless.DefaultConfig())
			runner.AddMetric("mean_trust", montecarlo.MeanTrust)
			runner.AddMetric("blended", montecarlo.BlendedCount)
			runner.AddMetric("messages", montecarlo.MessageCount)
			runner.AddMetric("victory", montecarlo.VictoryRate)

			result, err := runner.Run()
			if err != nil {
				return err
			}
			printStats(result)
			return nil
		},
	}
	cmd.Flags().IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "number of seeds to run")
	cmd.Flags().Int64Var(&cfg.BaseSeed, "seed", cfg.BaseSeed, "seed of iteration 0")
	cmd.Flags().BoolVar(&cfg.StopOnError, "stop-on-error", cfg.StopOnError, "abort on the first edge case")
	cmd.Flags().IntVar(&cfg.HistogramBins, "bins", cfg.HistogramBins, "histogram bin count (0 disables)")
	return cmd
}

func printStats(result *montecarlo.Result) {
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("Iterations: %d\n", result.Iterations)
	fmt.Printf("%-12s  %10s  %10s  %10s  %10s  %10s\n",
		"Metric", "Min", "Max", "Mean", "Median", "StdDev")
	for _, name := range names {
		s := result.Metrics[name]
		fmt.Printf("%-12s  %10.4f  %10.4f  %10.4f  %10.4f  %10.4f\n",
			name, s.Min, s.Max, s.Mean, s.Median, s.StdDev)
	}
	if len(result.EdgeCases) > 0 {
		fmt.Printf("\nEdge cases (%d):\n", len(result.EdgeCases))
		for _, ec := range result.EdgeCases {
			fmt.Printf("  seed %d: %s\n", ec.Seed, ec.Message)
		}
	}
}

// #endregion montecarlo

// #region randomwalk

func randomwalkCmd() *cobra.Command {
	cfg := randomwalk.DefaultConfig()
	var mode string
	var seed int64

	cmd := &cobra.Command{
		Use:   "randomwalk <file>",
		Short: "Explore the action space and report coverage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.LoadFile(args[0])
			if err != nil {
				return err
			}
			cfg.Mode = randomwalk.Mode(mode)
			if cfg.Mode != randomwalk.ModeRandom && cfg.Mode != randomwalk.ModeHeuristic {
				return fmt.Errorf("unknown mode %q", mode)
			}
			sim, err := headless.FromScenario(sc, seed, headless.DefaultConfig())
			if err != nil {
				return err
			}
			runner := randomwalk.New(sim, cfg)
			result, err := runner.Run()
			if err != nil {
				return err
			}
			printWalk(result)
			return nil
		},
	}
	cmd.Flags().IntVar(&cfg.Steps, "steps", cfg.Steps, "step budget")
	cmd.Flags().StringVar(&mode, "mode", string(cfg.Mode), "random or heuristic")
	cmd.Flags().Int64Var(&cfg.WalkSeed, "walk-seed", cfg.WalkSeed, "seed of the selection RNG")
	cmd.Flags().Int64Var(&seed, "seed", 0, "override the scenario's model seed")
	cmd.Flags().Float64Var(&cfg.Temperature, "temperature", cfg.Temperature, "softmax temperature (heuristic mode)")
	cmd.Flags().IntVar(&cfg.IntervalEvery, "interval-every", cfg.IntervalEvery, "advance time after every N actions")
	return cmd
}

func printWalk(result *randomwalk.Result) {
	fmt.Printf("Steps taken: %d\n", result.StepsTaken)
	if result.Victory {
		fmt.Printf("Victory at step %d\n", result.VictoryStep)
	} else if result.Stalled {
		fmt.Println("Stalled: no valid actions")
	}

	fmt.Println("\nAction counts:")
	actions := make([]controller.Action, 0, len(result.Coverage.PickedCounts))
	for a := range result.Coverage.PickedCounts {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	for _, a := range actions {
		fmt.Printf("  %-20s %d\n", a, result.Coverage.PickedCounts[a])
	}

	if nv := result.Coverage.NeverValid(); len(nv) > 0 {
		fmt.Printf("\nNever valid: %v\n", nv)
	}
	if np := result.Coverage.NeverPicked(); len(np) > 0 {
		fmt.Printf("Valid but never picked: %v\n", np)
	}
}

// #endregion randomwalk

// #region export

func exportCmd() *cobra.Command {
	var dbPath, out string

	cmd := &cobra.Command{
		Use:   "export <session-id>",
		Short: "Export a stored recording as JSON for file-mode replay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.NewStore(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			rec, err := store.LoadRecording(args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal recording: %w", err)
			}
			if out == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Printf("exported %s (%d steps) to %s\n", args[0], len(rec.Actions), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "sessions.db", "path to sessions.db")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	return cmd
}

// #endregion export
