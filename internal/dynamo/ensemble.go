package dynamo

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Job is one independent run of an ensemble. Each job gets its own
// Simulator, so integrators and metrics must not be shared between jobs.
type Job struct {
	Name       string
	System     System
	Integrator Integrator
	X0         State
	Config     Config
	Metrics    []Metric
}

// RunEnsemble runs jobs concurrently, at most limit at a time (no limit if
// limit <= 0). Results are in job order. The first failing job cancels
// the rest and its error is returned.
func RunEnsemble(ctx context.Context, jobs []Job, limit int) ([]*Result, error) {
	results := make([]*Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, job := range jobs {
		g.Go(func() error {
			sim := New(job.System, job.Integrator)
			for _, m := range job.Metrics {
				sim.AddMetric(m)
			}
			res, err := sim.Run(ctx, job.X0, job.Config)
			if err != nil {
				return fmt.Errorf("job %q: %w", job.Name, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
