// Command wmrsim runs a wheeled-mobile-robot simulation from a
// scenario file and exports history, metrics and charts.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/wmr-sim/internal/core"
	"github.com/elektrokombinacija/wmr-sim/internal/report"
	"github.com/elektrokombinacija/wmr-sim/internal/sim"
)

func main() {
	scenarioFile := flag.String("scenario", "", "Scenario JSON file to run")
	variantName := flag.String("variant", core.DiffCentered.String(), "Built-in preset to run when no -scenario is given")
	showPreset := flag.Bool("preset", false, "Print the selected scenario as JSON and exit")
	outDir := flag.String("out", "results", "Output directory; artifacts go to <out>/<run id>")
	withCSV := flag.Bool("csv", true, "Write history.csv")
	withCharts := flag.Bool("charts", true, "Write charts/*.png")
	withSummary := flag.Bool("summary", true, "Print the post-run summary")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	sc, err := loadScenario(*scenarioFile, *variantName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		os.Exit(1)
	}

	if *showPreset {
		data, err := json.MarshalIndent(sc, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding scenario: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	if err := sc.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid scenario %q:\n", sc.Name)
		for _, issue := range multierr.Errors(err) {
			fmt.Fprintf(os.Stderr, "  %v\n", issue)
		}
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	if !*verbose {
		logger = logger.WithOptions(zap.IncreaseLevel(zap.InfoLevel))
	}
	defer logger.Sync()

	logger.Debug("scenario loaded",
		zap.String("variant", sc.Variant),
		zap.String("terrain", sc.Terrain.Kind),
		zap.Float64("turn_radius_m", core.TurnRadius(sc.Motion.LinearV, sc.Motion.AngularV)))

	cfg, err := sim.FromScenario(*sc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building simulation: %v\n", err)
		os.Exit(1)
	}
	cfg.Logger = logger
	cfg.Observer = func(p sim.Progress) {
		logger.Debug("progress",
			zap.Int("step", p.Step),
			zap.Int("total", p.Total),
			zap.Float64("sim_time_s", p.State.Elapsed))
	}

	// Ctrl-C stops the run cleanly; whatever history exists is still
	// exported below.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	s := sim.NewSimulator(cfg)
	metrics, err := s.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
		os.Exit(2)
	}

	runDir := filepath.Join(*outDir, metrics.RunID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(2)
	}

	history := s.History()
	labels := cfg.Robot.Variant.WheelLabels()

	if err := s.ExportMetrics(filepath.Join(runDir, "metrics.json")); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing metrics: %v\n", err)
		os.Exit(2)
	}
	if *withCSV {
		if err := report.ExportCSV(filepath.Join(runDir, "history.csv"), history, labels); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing history: %v\n", err)
			os.Exit(2)
		}
	}
	if *withCharts && history.Len() > 0 {
		if err := report.Charts(filepath.Join(runDir, "charts"), cfg.Robot.Variant, cfg.Robot.Geometry, history); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing charts: %v\n", err)
			os.Exit(2)
		}
	}

	if *withSummary {
		fmt.Print(report.Summary(report.RunInfo{
			Scenario:           metrics.Scenario,
			Variant:            metrics.Variant,
			Status:             metrics.Status,
			Steps:              metrics.Steps,
			SimTime:            metrics.SimTime,
			Distance:           metrics.Distance,
			Energy:             metrics.Energy,
			PeakPower:          metrics.PeakPower,
			SaturatedSteps:     metrics.SaturatedSteps,
			MinStabilityMargin: metrics.MinStabilityMargin,
		}, report.Collect(history, labels), history.TotalPower))
	}
	fmt.Printf("Results written to: %s\n", runDir)
}

// loadScenario reads the scenario file when one is given and falls back
// to the built-in preset for the requested variant otherwise.
func loadScenario(path, variant string) (*core.Scenario, error) {
	if path != "" {
		return core.LoadScenario(path)
	}
	v, err := core.ParseVariant(variant)
	if err != nil {
		return nil, err
	}
	sc := core.DefaultScenario(v)
	return &sc, nil
}
