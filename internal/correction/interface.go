package correction

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Record(ctx context.Context, input RecordInput) (RecordOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	// Patterns analyses the user's most recent corrections. Anonymous
	// callers get nil without error.
	Patterns(ctx context.Context, userID string) (*Patterns, error)
}
