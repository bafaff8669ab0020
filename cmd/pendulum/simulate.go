package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/pendulum/internal/analysis"
	"github.com/san-kum/pendulum/internal/dynamo"
	"github.com/san-kum/pendulum/internal/export"
	"github.com/san-kum/pendulum/internal/integrators"
	"github.com/san-kum/pendulum/internal/metrics"
	"github.com/san-kum/pendulum/internal/pendulum"
	"github.com/san-kum/pendulum/internal/physics"
	"github.com/san-kum/pendulum/internal/render"
)

var (
	runSteps      int
	plotSteps     int
	compareSteps  int
	snapshotSteps int
	trailSteps    int
	duration      float64
	integrator    string
	format        string
	perturb       float64
	trailStroke   string
)

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate from the default start and print the trajectory",
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&runSteps, "steps", 1000, "number of steps")
	runCmd.Flags().StringVar(&integrator, "integrator", integrators.Default, "integrator ("+strings.Join(integrators.Names(), ", ")+")")
	runCmd.Flags().StringVar(&format, "format", "summary", "output format (summary, csv, json)")
	return runCmd
}

func newPlotCmd() *cobra.Command {
	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot angles and energy over a run",
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotSteps, "steps", 1000, "number of steps")
	return plotCmd
}

func newAnalyzeCmd() *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "lyapunov exponent, spectrum and poincare section",
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().Float64Var(&duration, "time", 60, "simulated seconds")
	analyzeCmd.Flags().Float64Var(&perturb, "perturbation", 1e-8, "initial separation for the lyapunov estimate")
	return analyzeCmd
}

func newCompareCmd() *cobra.Command {
	compareCmd := &cobra.Command{
		Use:   "compare [integrator...]",
		Short: "compare integrators on the default start",
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().IntVar(&compareSteps, "steps", 1000, "number of steps")
	return compareCmd
}

func newSnapshotCmd() *cobra.Command {
	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "write an svg of the pendulum after some steps",
		RunE:  snapshot,
	}
	snapshotCmd.Flags().IntVar(&snapshotSteps, "steps", 0, "steps to advance before drawing")
	return snapshotCmd
}

func newTrailCmd() *cobra.Command {
	trailCmd := &cobra.Command{
		Use:   "trail",
		Short: "write an svg of the second bob's path",
		RunE:  trail,
	}
	trailCmd.Flags().IntVar(&trailSteps, "steps", 2000, "number of steps")
	trailCmd.Flags().StringVar(&trailStroke, "stroke", render.Color, "path color")
	return trailCmd
}

// simulate runs the default pendulum through the dynamo simulator with
// drift and finiteness metrics attached.
func simulate(cmd *cobra.Command, integName string, n int) (*dynamo.Result, *physics.DoublePendulum, error) {
	integ, err := integrators.New(integName)
	if err != nil {
		return nil, nil, err
	}

	params := pendulum.DefaultParams()
	in := pendulum.New(params)
	dp := in.Model()

	sim := dynamo.New(dp, integ)
	sim.AddMetric(metrics.NewEnergyDrift(dp))
	sim.AddMetric(metrics.NewFinite())

	s := in.State()
	x0 := dynamo.State{s.Theta1, s.Theta2, s.Omega1, s.Omega2}

	result, err := sim.Run(cmd.Context(), x0, dynamo.Config{Dt: params.Dt, Steps: n, ValidateState: true})
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("simulated",
		zap.String("integrator", integName),
		zap.Int("steps", result.StepsTaken),
		zap.Duration("elapsed", result.Elapsed),
	)
	for _, e := range result.Errors {
		logger.Warn("run stopped early", zap.Error(e))
	}
	return result, dp, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	result, dp, err := simulate(cmd, integrator, runSteps)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "csv":
		return export.WriteCSV(out, dp, result)
	case "json":
		return export.WriteJSON(out, export.NewRun(integrator, pendulum.DefaultDt, dp, result))
	case "summary":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	last := result.States[len(result.States)-1]
	pos := dp.Positions(last[0], last[1])
	fmt.Fprintf(out, "integrator:   %s\n", integrator)
	fmt.Fprintf(out, "steps:        %d (t=%.2fs)\n", result.StepsTaken, result.Times[len(result.Times)-1])
	fmt.Fprintf(out, "state:        theta1=%.6f theta2=%.6f omega1=%.6f omega2=%.6f\n", last[0], last[1], last[2], last[3])
	fmt.Fprintf(out, "bobs:         (%.3f, %.3f) (%.3f, %.3f)\n", pos.X1, pos.Y1, pos.X2, pos.Y2)
	fmt.Fprintf(out, "energy drift: %.3e\n", result.EnergyDrift)
	fmt.Fprintf(out, "finite:       %.3f\n", result.Metrics["finite"])
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	result, dp, err := simulate(cmd, integrators.Default, plotSteps)
	if err != nil {
		return err
	}

	energy := make([]float64, len(result.States))
	for i, s := range result.States {
		energy[i] = dp.Energy(s)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "samples: %d\n\n", len(result.States))
	plots := []struct {
		caption string
		data    []float64
	}{
		{"theta1 (rad)", analysis.Series(result.States, 0)},
		{"theta2 (rad)", analysis.Series(result.States, 1)},
		{"energy", energy},
	}
	for _, p := range plots {
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	params := pendulum.DefaultParams()
	n := int(duration / params.Dt)
	result, dp, err := simulate(cmd, integrators.Default, n)
	if err != nil {
		return err
	}

	lambda := analysis.LyapunovExponent(dp, integrators.NewVerlet(), result.States[0], params.Dt, duration, perturb)
	bins := analysis.PowerSpectrum(analysis.Series(result.States, 0), params.Dt)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "duration:           %.1fs (%d steps)\n", duration, result.StepsTaken)
	fmt.Fprintf(out, "lyapunov exponent:  %.4f /s\n", lambda)
	fmt.Fprintf(out, "dominant frequency: %.4f Hz (theta1)\n", analysis.DominantFrequency(bins))
	fmt.Fprintf(out, "energy drift:       %.3e\n\n", result.EnergyDrift)

	if len(bins) > 1 {
		power := make([]float64, 0, len(bins))
		for _, b := range bins[1:min(len(bins), 200)] {
			power = append(power, b.Power)
		}
		fmt.Fprintln(out, asciigraph.Plot(power, asciigraph.Height(8), asciigraph.Width(80), asciigraph.Caption("theta1 power spectrum")))
		fmt.Fprintln(out)
	}

	section := analysis.PoincareSection(result.States, 0, 0, 1, 3)
	fmt.Fprintf(out, "poincare section theta1=0 upward (theta2 vs omega2), %d crossings\n", len(section))
	fmt.Fprint(out, analysis.Scatter(section, 60, 20))
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = integrators.Names()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "comparing integrators (dt=%.4f, steps=%d)\n\n", pendulum.DefaultDt, compareSteps)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "integrator\tfinal_theta1\tfinal_theta2\tenergy_drift\ttime_ms")

	in := pendulum.New(pendulum.DefaultParams())
	s := in.State()
	x0 := dynamo.State{s.Theta1, s.Theta2, s.Omega1, s.Omega2}

	jobs := make([]dynamo.Job, 0, len(names))
	for _, name := range names {
		integ, err := integrators.New(name)
		if err != nil {
			fmt.Fprintf(tw, "%s\terror: %v\n", name, err)
			continue
		}
		jobs = append(jobs, dynamo.Job{
			Name:       name,
			System:     in.Model(),
			Integrator: integ,
			X0:         x0,
			Config:     dynamo.Config{Dt: pendulum.DefaultDt, Steps: compareSteps},
		})
	}

	results, err := dynamo.RunEnsemble(cmd.Context(), jobs, 0)
	if err != nil {
		return err
	}
	for i, res := range results {
		last := res.States[len(res.States)-1]
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.2e\t%.2f\n", jobs[i].Name, last[0], last[1], res.EnergyDrift, float64(res.Elapsed.Microseconds())/1000)
	}
	return tw.Flush()
}

func snapshot(cmd *cobra.Command, args []string) error {
	in := pendulum.New(pendulum.DefaultParams())
	for i := 0; i < snapshotSteps; i++ {
		in.Step()
	}
	return render.NewSVGRenderer(cmd.OutOrStdout(), cfg.Scene()).Render(in.Position())
}

func trail(cmd *cobra.Command, args []string) error {
	if trailSteps < 2 {
		return fmt.Errorf("trail needs at least 2 steps, got %d", trailSteps)
	}

	scene := cfg.Scene()
	in := pendulum.New(pendulum.DefaultParams())
	frames := make([]render.Shapes, 0, trailSteps)
	for i := 0; i < trailSteps; i++ {
		frames = append(frames, scene.Shapes(in.Step()))
	}

	svg := render.TrajectorySVG(scene.TrailOf(frames), scene.Width, scene.Height, trailStroke)
	_, err := fmt.Fprintln(cmd.OutOrStdout(), svg)
	return err
}
