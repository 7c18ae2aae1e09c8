package report

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/elektrokombinacija/wmr-sim/internal/core"
)

// line is one named series on a time chart.
type line struct {
	name string
	ys   []float64
}

// Charts renders the standard chart set for a run into dir, one PNG per
// chart: trajectory, platform velocity and acceleration, and the
// per-wheel speed, force, torque, and power series.
func Charts(dir string, v core.Variant, g core.Geometry, h *core.History) error {
	if h.Len() == 0 {
		return errors.New("empty history")
	}
	labels := v.WheelLabels()

	wheelLines := func(rows [][]float64) []line {
		ls := make([]line, len(labels))
		for w, label := range labels {
			ls[w] = line{name: label, ys: column(rows, w)}
		}
		return ls
	}

	if err := trajectoryChart(filepath.Join(dir, "trajectory.png"), v, g, h); err != nil {
		return err
	}

	charts := []struct {
		file   string
		title  string
		ylabel string
		lines  []line
	}{
		{"velocity.png", "Platform Velocity", "v (m/s), omega (rad/s)",
			[]line{{"v", h.V}, {"omega", h.Omega}}},
		{"wheel_speeds.png", "Wheel Speeds", "omega_w (rad/s)", wheelLines(h.WheelSpeeds)},
		{"forces_tangential.png", "Tangential Forces", "F_t (N)", wheelLines(h.Tangentials)},
		{"forces_normal.png", "Normal Forces", "N (N)", wheelLines(h.Normals)},
		{"accelerations.png", "Platform Acceleration", "a (m/s2), alpha (rad/s2)",
			[]line{{"a", h.AccelLin}, {"alpha", h.AccelAng}}},
		{"torques.png", "Wheel Torques", "tau (N*m)", wheelLines(h.Torques)},
		{"power.png", "Power", "P (W)", append(wheelLines(h.Powers), line{"total", h.TotalPower})},
	}
	for _, c := range charts {
		if err := timeChart(filepath.Join(dir, c.file), c.title, c.ylabel, h.Time, c.lines); err != nil {
			return errors.Wrap(err, c.file)
		}
	}
	return nil
}

// trajectoryChart draws the XY path with start/end markers plus the
// ground traces of every contact point (wheels, and the caster on
// two-wheel variants), on axes padded to a common span so distances
// read the same in x and y. Offset variants also get the track swept
// by the displaced center of mass.
func trajectoryChart(path string, v core.Variant, g core.Geometry, h *core.History) error {
	p := newPlot("Trajectory", "x (m)", "y (m)")

	mounts := core.WheelPositions(v, g)
	if v.WheelCount() == 2 {
		mounts = append(mounts, core.CasterPosition(g))
	}
	for _, mount := range mounts {
		trace, err := plotter.NewLine(groundTrace(h, mount))
		if err != nil {
			return err
		}
		trace.LineStyle.Width = vg.Points(0.5)
		trace.LineStyle.Color = color.Gray{Y: 200}
		p.Add(trace)
	}

	center, err := plotter.NewLine(points(h.X, h.Y))
	if err != nil {
		return err
	}
	center.LineStyle.Width = vg.Points(2)
	center.LineStyle.Color = plotutil.Color(0)
	p.Add(center)
	p.Legend.Add("path", center)

	if v.HasOffset() {
		com, err := plotter.NewLine(groundTrace(h, g.CenterOfMass()))
		if err != nil {
			return err
		}
		com.LineStyle.Width = vg.Points(1)
		com.LineStyle.Color = plotutil.Color(1)
		com.LineStyle.Dashes = plotutil.Dashes(1)
		p.Add(com)
		p.Legend.Add("center of mass", com)
	}

	last := h.Len() - 1
	start, err := marker(h.X[0], h.Y[0], draw.RingGlyph{}, plotutil.Color(2))
	if err != nil {
		return err
	}
	end, err := marker(h.X[last], h.Y[last], draw.CircleGlyph{}, plotutil.Color(3))
	if err != nil {
		return err
	}
	p.Add(start)
	p.Legend.Add("start", start)
	p.Add(end)
	p.Legend.Add("end", end)

	squareRanges(p, h.X, h.Y)
	return savePNG(p, path)
}

// groundTrace projects a robot-frame point into the world frame at
// every recorded pose.
func groundTrace(h *core.History, p mgl64.Vec3) plotter.XYs {
	xy := make(plotter.XYs, h.Len())
	for i := range xy {
		s := core.State{X: h.X[i], Y: h.Y[i], Heading: h.Heading[i]}
		world := core.ToWorld(s, p)
		xy[i].X, xy[i].Y = world.X(), world.Y()
	}
	return xy
}

func timeChart(path, title, ylabel string, t []float64, lines []line) error {
	p := newPlot(title, "time (s)", ylabel)
	for i, ln := range lines {
		l, err := plotter.NewLine(points(t, ln.ys))
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = plotutil.Color(i)
		p.Add(l)
		if len(lines) > 1 {
			p.Legend.Add(ln.name, l)
		}
	}
	return savePNG(p, path)
}

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.TextStyle.Font.Size = vg.Points(11)
	p.Y.Label.TextStyle.Font.Size = vg.Points(11)
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

func marker(x, y float64, shape draw.GlyphDrawer, c color.Color) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
	if err != nil {
		return nil, err
	}
	s.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(5), Shape: shape}
	return s, nil
}

// squareRanges pads both axes to the larger data span.
func squareRanges(p *plot.Plot, xs, ys []float64) {
	span := math.Max(lo.Max(xs)-lo.Min(xs), lo.Max(ys)-lo.Min(ys))
	if span <= 0 {
		span = 1
	}
	pad := span * 0.05
	cx := (lo.Min(xs) + lo.Max(xs)) / 2
	cy := (lo.Min(ys) + lo.Max(ys)) / 2
	p.X.Min, p.X.Max = cx-span/2-pad, cx+span/2+pad
	p.Y.Min, p.Y.Max = cy-span/2-pad, cy+span/2+pad
}

func savePNG(p *plot.Plot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create chart dir")
	}

	c := vgimg.NewWith(
		vgimg.UseWH(8*vg.Inch, 6*vg.Inch),
		vgimg.UseDPI(150),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	pc := vgimg.PngCanvas{Canvas: c}
	if _, err := pc.WriteTo(f); err != nil {
		return errors.Wrap(err, "encode png")
	}
	return nil
}

func points(xs, ys []float64) plotter.XYs {
	xy := make(plotter.XYs, len(xs))
	for i := range xs {
		xy[i].X, xy[i].Y = xs[i], ys[i]
	}
	return xy
}
