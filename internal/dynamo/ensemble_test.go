package dynamo

import (
	"context"
	"errors"
	"testing"
)

func TestRunEnsembleKeepsJobOrder(t *testing.T) {
	jobs := make([]Job, 5)
	for i := range jobs {
		jobs[i] = Job{
			Name:       "decay",
			System:     &decay{},
			Integrator: &eulerStep{},
			X0:         State{float64(i + 1)},
			Config:     Config{Dt: 0.1, Steps: 10},
		}
	}

	results, err := RunEnsemble(context.Background(), jobs, 2)
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != len(jobs) {
		t.Fatalf("expected %d results, got %d", len(jobs), len(results))
	}
	for i, res := range results {
		if res.States[0][0] != float64(i+1) {
			t.Errorf("result %d starts at %v", i, res.States[0][0])
		}
		if res.StepsTaken != 10 {
			t.Errorf("result %d took %d steps", i, res.StepsTaken)
		}
	}
}

func TestRunEnsembleReportsFailure(t *testing.T) {
	jobs := []Job{
		{Name: "ok", System: &decay{}, Integrator: &eulerStep{}, X0: State{1}, Config: Config{Dt: 0.1, Steps: 5}},
		{Name: "bad", System: &decay{}, Integrator: &eulerStep{}, X0: State{1, 2}, Config: Config{Dt: 0.1, Steps: 5}},
	}

	_, err := RunEnsemble(context.Background(), jobs, 0)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestRunEnsembleMetricsPerJob(t *testing.T) {
	a, b := &countMetric{}, &countMetric{}
	jobs := []Job{
		{Name: "a", System: &decay{}, Integrator: &eulerStep{}, X0: State{1}, Config: Config{Dt: 0.1, Steps: 3}, Metrics: []Metric{a}},
		{Name: "b", System: &decay{}, Integrator: &eulerStep{}, X0: State{1}, Config: Config{Dt: 0.1, Steps: 7}, Metrics: []Metric{b}},
	}

	results, err := RunEnsemble(context.Background(), jobs, 0)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Metrics["count"] != 4 || results[1].Metrics["count"] != 8 {
		t.Errorf("unexpected counts %v %v", results[0].Metrics, results[1].Metrics)
	}
}
