package classifier

import (
	"context"

	"smart-daily-planner/pkg/llmprovider"
	"smart-daily-planner/pkg/log"
)

// Classifier infers a task category. Implementations never fail: when they
// cannot decide they return CategoryGeneral.
type Classifier interface {
	Classify(ctx context.Context, in Input) Category
}

// KeywordClassifier matches keywords in the title, then the description.
type KeywordClassifier struct{}

// LLMClassifier asks the model and falls back to keywords.
type LLMClassifier struct {
	llm      llmprovider.TextGenerator
	fallback Classifier
	l        log.Logger
}

var (
	_ Classifier = KeywordClassifier{}
	_ Classifier = (*LLMClassifier)(nil)
)

// NewKeyword creates the heuristic classifier.
func NewKeyword() KeywordClassifier {
	return KeywordClassifier{}
}

// NewLLM creates a model-backed classifier.
func NewLLM(llm llmprovider.TextGenerator, l log.Logger) *LLMClassifier {
	return &LLMClassifier{
		llm:      llm,
		fallback: KeywordClassifier{},
		l:        l,
	}
}

// New picks the implementation for mode; unknown modes use keywords.
func New(mode string, llm llmprovider.TextGenerator, l log.Logger) Classifier {
	if mode == ModeLLM && llm != nil {
		return NewLLM(llm, l)
	}
	return NewKeyword()
}
