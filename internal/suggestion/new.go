package suggestion

import (
	"context"

	"smart-daily-planner/pkg/llmprovider"
	"smart-daily-planner/pkg/log"
)

// Generator proposes optimisation suggestions for a day's tasks.
type Generator interface {
	Generate(ctx context.Context, in Input) (Output, error)
}

type implGenerator struct {
	llm llmprovider.TextGenerator
	l   log.Logger
}

var _ Generator = (*implGenerator)(nil)

func New(llm llmprovider.TextGenerator, l log.Logger) *implGenerator {
	return &implGenerator{
		llm: llm,
		l:   l,
	}
}
