package schedule

import (
	"context"

	"smart-daily-planner/pkg/llmprovider"
	"smart-daily-planner/pkg/log"
)

// Builder turns tasks and fixed commitments into a day of time blocks.
type Builder interface {
	Build(ctx context.Context, in Input) (Result, error)
}

type implBuilder struct {
	llm llmprovider.TextGenerator
	l   log.Logger
	cfg Config
}

var _ Builder = (*implBuilder)(nil)

func New(llm llmprovider.TextGenerator, l log.Logger, cfg Config) *implBuilder {
	if cfg.DayStart <= 0 {
		cfg.DayStart = DefaultDayStart
	}
	if cfg.DayEnd <= cfg.DayStart {
		cfg.DayEnd = DefaultDayEnd
	}
	return &implBuilder{
		llm: llm,
		l:   l,
		cfg: cfg,
	}
}
