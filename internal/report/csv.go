package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/elektrokombinacija/wmr-sim/internal/core"
)

// WriteCSV writes the full history table, one row per recorded step.
// Column order matches the recording order: pose, velocities,
// accelerations, then per-wheel speed/tangential/normal/torque/power
// blocks, then total power.
func WriteCSV(w io.Writer, h *core.History, labels []string) error {
	cw := csv.NewWriter(w)

	header := []string{"time", "x", "y", "z", "heading", "v", "omega", "accel_linear", "accel_angular"}
	for _, block := range []string{"wheel_speed", "force_tangential", "force_normal", "torque", "power"} {
		for _, label := range labels {
			header = append(header, block+"_"+label)
		}
	}
	header = append(header, "total_power")
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write header")
	}

	for i := 0; i < h.Len(); i++ {
		row := make([]string, 0, len(header))
		row = append(row,
			cell(h.Time[i]), cell(h.X[i]), cell(h.Y[i]), cell(h.Z[i]), cell(h.Heading[i]),
			cell(h.V[i]), cell(h.Omega[i]), cell(h.AccelLin[i]), cell(h.AccelAng[i]))
		for _, rows := range [][][]float64{h.WheelSpeeds, h.Tangentials, h.Normals, h.Torques, h.Powers} {
			for k := range labels {
				row = append(row, cell(rows[i][k]))
			}
		}
		row = append(row, cell(h.TotalPower[i]))
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write row %d", i)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the history table to a file, creating parent
// directories as needed.
func ExportCSV(path string, h *core.History, labels []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create output dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	return WriteCSV(f, h, labels)
}

func cell(x float64) string {
	return fmt.Sprintf("%.15g", x)
}
