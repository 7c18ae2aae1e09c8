// Package main runs every scenario file in a directory and collects
// per-run metrics into a CSV table plus an aligned console summary.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/elektrokombinacija/wmr-sim/internal/core"
	"github.com/elektrokombinacija/wmr-sim/internal/sim"
)

// BatchResult stores the outcome of a single scenario run.
type BatchResult struct {
	Scenario       string
	Variant        string
	Status         string
	Steps          int
	SimTime        float64
	Distance       float64
	Energy         float64
	PeakPower      float64
	SaturatedSteps int
	MinMargin      float64
	WallMs         float64
	Err            string
}

func runScenarioFile(path string, timeout time.Duration) *BatchResult {
	sc, err := core.LoadScenario(path)
	if err != nil {
		return &BatchResult{Scenario: filepath.Base(path), Status: sim.StatusFailed, Err: err.Error()}
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	res, err := sim.RunScenario(ctx, *sc, nil)
	wallMs := float64(time.Since(start).Microseconds()) / 1000.0

	if err != nil {
		return &BatchResult{
			Scenario: sc.Name,
			Variant:  sc.Variant,
			Status:   sim.StatusFailed,
			WallMs:   wallMs,
			Err:      err.Error(),
		}
	}

	m := res.Metrics
	return &BatchResult{
		Scenario:       m.Scenario,
		Variant:        m.Variant,
		Status:         m.Status,
		Steps:          m.Steps,
		SimTime:        m.SimTime,
		Distance:       m.Distance,
		Energy:         m.Energy,
		PeakPower:      m.PeakPower,
		SaturatedSteps: m.SaturatedSteps,
		MinMargin:      m.MinStabilityMargin,
		WallMs:         wallMs,
	}
}

func writeCSV(results []*BatchResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"scenario", "variant", "status", "steps", "sim_time_s",
		"distance_m", "energy_j", "peak_power_w", "saturated_steps",
		"min_stability_margin", "wall_ms", "error",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.Scenario, r.Variant, r.Status,
			fmt.Sprintf("%d", r.Steps), fmt.Sprintf("%.3f", r.SimTime),
			fmt.Sprintf("%.3f", r.Distance), fmt.Sprintf("%.3f", r.Energy),
			fmt.Sprintf("%.3f", r.PeakPower), fmt.Sprintf("%d", r.SaturatedSteps),
			fmt.Sprintf("%.4f", r.MinMargin), fmt.Sprintf("%.3f", r.WallMs),
			r.Err,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func printSummary(results []*BatchResult) {
	groups := lo.GroupBy(results, func(r *BatchResult) string { return r.Variant })
	names := lo.Keys(groups)
	sort.Strings(names)

	fmt.Println("\n=== BATCH SUMMARY ===")
	fmt.Printf("%-22s %6s %10s %12s %14s %13s %10s\n",
		"Variant", "Runs", "Completed", "Avg Dist(m)", "Avg Energy(J)", "Peak Pwr(W)", "Min Margin")
	fmt.Println(strings.Repeat("-", 92))

	for _, name := range names {
		rs := groups[name]
		completed := lo.CountBy(rs, func(r *BatchResult) bool { return r.Status == sim.StatusCompleted })
		avgDist := lo.SumBy(rs, func(r *BatchResult) float64 { return r.Distance }) / float64(len(rs))
		avgEnergy := lo.SumBy(rs, func(r *BatchResult) float64 { return r.Energy }) / float64(len(rs))
		peak := lo.Max(lo.Map(rs, func(r *BatchResult, _ int) float64 { return r.PeakPower }))
		margin := lo.Min(lo.Map(rs, func(r *BatchResult, _ int) float64 { return r.MinMargin }))

		fmt.Printf("%-22s %6d %10d %12.3f %14.3f %13.3f %10.4f\n",
			name, len(rs), completed, avgDist, avgEnergy, peak, margin)
	}
}

func main() {
	inputDir := flag.String("input", "testdata", "Directory containing scenario JSON files")
	outputFile := flag.String("output", "results/batch_results.csv", "Output CSV file")
	timeout := flag.Duration("timeout", time.Minute, "Timeout per scenario run")
	verbose := flag.Bool("verbose", false, "Verbose output")

	flag.Parse()

	outputDir := filepath.Dir(*outputFile)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	pattern := filepath.Join(*inputDir, "*.json")
	files, err := filepath.Glob(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding scenario files: %v\n", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No scenario files found in %s\n", *inputDir)
		fmt.Fprintf(os.Stderr, "Run gen_scenarios first: go run ./tools/gen_scenarios -output %s\n", *inputDir)
		os.Exit(1)
	}

	fmt.Printf("Running batch: %d scenarios, timeout %v per run\n\n", len(files), *timeout)

	var results []*BatchResult
	for i, file := range files {
		if *verbose {
			fmt.Printf("[%d/%d] %s ... ", i+1, len(files), filepath.Base(file))
		} else {
			fmt.Printf("\r[%d/%d] Running...", i+1, len(files))
		}

		result := runScenarioFile(file, *timeout)
		results = append(results, result)

		if *verbose {
			if result.Err == "" {
				fmt.Printf("%s (%d steps, %.2f J, %.1fms)\n", result.Status, result.Steps, result.Energy, result.WallMs)
			} else {
				fmt.Printf("FAILED: %s\n", result.Err)
			}
		}
	}

	fmt.Println()

	if err := writeCSV(results, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Results written to: %s\n", *outputFile)

	printSummary(results)
}
