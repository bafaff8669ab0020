// Package export streams recorded runs as CSV or JSON. Callers choose the
// writer; nothing here touches the filesystem.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/pendulum/internal/dynamo"
	"github.com/san-kum/pendulum/internal/physics"
)

var csvHeader = []string{"time", "theta1", "theta2", "omega1", "omega2", "x1", "y1", "x2", "y2"}

type Run struct {
	Integrator  string             `json:"integrator"`
	Dt          float64            `json:"dt"`
	Steps       int                `json:"steps"`
	Params      map[string]float64 `json:"params"`
	Metrics     map[string]float64 `json:"metrics"`
	EnergyDrift float64            `json:"energy_drift"`
	Times       []float64          `json:"times"`
	States      [][]float64        `json:"states"`
}

// NewRun collects a result and the model that produced it.
func NewRun(integrator string, dt float64, dp *physics.DoublePendulum, result *dynamo.Result) Run {
	run := Run{
		Integrator:  integrator,
		Dt:          dt,
		Steps:       result.StepsTaken,
		Params:      dp.GetParams(),
		Metrics:     finiteOnly(result.Metrics),
		EnergyDrift: result.EnergyDrift,
		Times:       result.Times,
		States:      make([][]float64, len(result.States)),
	}
	for i, s := range result.States {
		run.States[i] = s
	}
	return run
}

// encoding/json rejects NaN and Inf, which a diverged run can produce.
func finiteOnly(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		if !dynamo.IsFinite(v) {
			continue
		}
		out[k] = v
	}
	return out
}

func WriteJSON(w io.Writer, run Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(run); err != nil {
		return fmt.Errorf("encode run: %w", err)
	}
	return nil
}

// WriteCSV writes one row per recorded state with the bob positions
// alongside the angles.
func WriteCSV(w io.Writer, dp *physics.DoublePendulum, result *dynamo.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(csvHeader))
	for i, s := range result.States {
		if len(s) != 4 {
			return fmt.Errorf("%w: row %d has %d components", dynamo.ErrDimensionMismatch, i, len(s))
		}
		pos := dp.Positions(s[0], s[1])
		values := []float64{result.Times[i], s[0], s[1], s[2], s[3], pos.X1, pos.Y1, pos.X2, pos.Y2}
		for j, v := range values {
			row[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
