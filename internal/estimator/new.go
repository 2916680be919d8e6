package estimator

import (
	"context"

	"smart-daily-planner/pkg/llmprovider"
	"smart-daily-planner/pkg/log"
)

// Estimator refines task durations.
type Estimator interface {
	Estimate(ctx context.Context, in Input) (Output, error)
}

type implEstimator struct {
	llm llmprovider.TextGenerator
	l   log.Logger
}

var _ Estimator = (*implEstimator)(nil)

// New creates an Estimator backed by llm.
func New(llm llmprovider.TextGenerator, l log.Logger) *implEstimator {
	return &implEstimator{
		llm: llm,
		l:   l,
	}
}
