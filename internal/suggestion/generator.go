package suggestion

import (
	"context"
	"encoding/json"
	"fmt"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/pkg/llmprovider"
	"smart-daily-planner/pkg/structured"
)

// Generate asks the model for suggestions and falls back to a static pair
// when the call fails or the answer is unusable.
func (g *implGenerator) Generate(ctx context.Context, in Input) (Output, error) {
	if len(in.Tasks) == 0 {
		return Output{}, ErrNoTasks
	}

	tasks, err := json.MarshalIndent(in.Tasks, "", "  ")
	if err != nil {
		return Output{}, fmt.Errorf("%s: marshal tasks: %w", LogPrefixGenerate, err)
	}

	raw, callErr := g.llm.GenerateText(ctx, llmprovider.TextRequest{
		Prompt:      fmt.Sprintf(PromptSuggest, in.Date, tasks),
		Temperature: SuggestionTemperature,
		MaxTokens:   SuggestionMaxTokens,
		JSON:        true,
	})

	p, usedFallback := structured.ParseOrFallback(raw, callErr, func(cause error) payload {
		g.l.Warnf(ctx, "%s: using default suggestions: %v", LogPrefixGenerate, cause)
		return payload{Suggestions: Fallback()}
	})

	source := model.SourceAI
	if usedFallback {
		source = model.SourceFallback
	}
	return Output{Suggestions: p.Suggestions, Source: source}, nil
}

// Fallback returns a fresh copy of the default suggestions.
func Fallback() []model.Suggestion {
	out := make([]model.Suggestion, len(fallbackSuggestions))
	copy(out, fallbackSuggestions)
	return out
}
