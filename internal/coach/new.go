package coach

import (
	"context"

	"smart-daily-planner/pkg/llmprovider"
	"smart-daily-planner/pkg/log"
)

// Generator writes note summaries and productivity tips.
type Generator interface {
	Summarize(ctx context.Context, in SummaryInput) (Summary, error)
	Advise(ctx context.Context, in AdviceInput) (Advice, error)
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
