// Package main generates the built-in scenario grid for batch runs.
// Every drive variant is crossed with each terrain kind and motion
// mode, giving 24 deterministic scenario files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/elektrokombinacija/wmr-sim/internal/core"
)

func main() {
	outputDir := flag.String("output", "testdata", "Output directory")
	pitchDeg := flag.Float64("pitch", 10, "Pitch angle for sloped terrains (degrees)")
	rollDeg := flag.Float64("roll", 5, "Roll angle for the pitch_roll terrain (degrees)")
	duration := flag.Float64("duration", 5, "Run duration for fixed-mode scenarios (seconds)")

	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	terrains := []core.TerrainConfig{
		{Kind: core.TerrainFlat},
		{Kind: core.TerrainPitch, PitchDeg: *pitchDeg},
		{Kind: core.TerrainPitchRoll, PitchDeg: *pitchDeg, RollDeg: *rollDeg},
	}
	modes := []string{core.ModeRamp, core.ModeFixed}

	count := 0
	for _, base := range core.Presets() {
		for _, terrain := range terrains {
			for _, mode := range modes {
				sc := base
				sc.Name = fmt.Sprintf("%s_%s_%s", base.Variant, terrain.Kind, mode)
				sc.Terrain = terrain
				if mode == core.ModeFixed {
					sc.Motion.Mode = core.ModeFixed
					sc.Motion.AccelTime = 0
					sc.Motion.ConstTime = 0
					sc.Motion.DecelTime = 0
					sc.Motion.Duration = *duration
				}

				if err := sc.Validate(); err != nil {
					fmt.Fprintf(os.Stderr, "Error validating %s: %v\n", sc.Name, err)
					continue
				}

				path := filepath.Join(*outputDir, sc.Name+".json")
				if err := sc.Save(path); err != nil {
					fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
					continue
				}

				fmt.Printf("Generated: %s\n", path)
				count++
			}
		}
	}

	fmt.Printf("%d scenarios written to %s\n", count, *outputDir)
}
