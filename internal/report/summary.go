package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// RunInfo carries the headline numbers for the console summary.
type RunInfo struct {
	Scenario           string
	Variant            string
	Status             string
	Steps              int
	SimTime            float64
	Distance           float64
	Energy             float64
	PeakPower          float64
	SaturatedSteps     int
	MinStabilityMargin float64
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(22)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	columnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
)

// Summary renders the post-run console block: headline numbers, a
// sparkline of total power, and the per-variable statistics table.
func Summary(info RunInfo, stats []SeriesStats, power []float64) string {
	var b strings.Builder

	title := info.Scenario
	if title == "" {
		title = info.Variant
	}
	b.WriteString(titleStyle.Render(strings.ToUpper(title)) + "\n\n")

	kv := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	kv("Status", info.Status)
	kv("Variant", info.Variant)
	kv("Steps", fmt.Sprintf("%d", info.Steps))
	kv("Sim time", fmt.Sprintf("%.2f s", info.SimTime))
	kv("Distance", fmt.Sprintf("%.3f m", info.Distance))
	kv("Energy", fmt.Sprintf("%.2f J", info.Energy))
	kv("Peak power", fmt.Sprintf("%.2f W", info.PeakPower))
	if info.SaturatedSteps > 0 {
		b.WriteString(labelStyle.Render("Saturated steps") +
			warnStyle.Render(fmt.Sprintf("%d (traction limit hit)", info.SaturatedSteps)) + "\n")
	} else {
		kv("Saturated steps", "0")
	}
	kv("Min stability margin", fmt.Sprintf("%.3f", info.MinStabilityMargin))

	if len(power) > 1 {
		chart := asciigraph.Plot(power,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("total power (W)"))
		b.WriteString(graphStyle.Render(chart) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(columnStyle.Render(fmt.Sprintf("%-26s %-8s %12s %12s %12s %12s",
		"variable", "unit", "min", "max", "mean", "mode")) + "\n")
	b.WriteString(strings.Repeat("-", 87) + "\n")
	for _, s := range stats {
		b.WriteString(fmt.Sprintf("%-26s %-8s %12.4f %12.4f %12.4f %12.4f\n",
			s.Variable, s.Unit, s.Min, s.Max, s.Mean, s.Mode))
	}
	return b.String()
}
