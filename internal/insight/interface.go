package insight

import (
	"context"

	"smart-daily-planner/internal/coach"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Summarize loads the caller's notes by id and summarises them.
	Summarize(ctx context.Context, input SummarizeInput) (coach.Summary, error)
	// Advise coaches over the given tasks and notes. For a signed-in caller
	// an empty list is filled from the stores.
	Advise(ctx context.Context, input AdviseInput) (coach.Advice, error)
}
