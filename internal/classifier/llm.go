package classifier

import (
	"context"
	"fmt"
	"strings"

	"smart-daily-planner/pkg/llmprovider"
	"smart-daily-planner/pkg/structured"
)

// Classify implements Classifier.
func (c *LLMClassifier) Classify(ctx context.Context, in Input) Category {
	names := make([]string, len(Categories))
	for i, cat := range Categories {
		names[i] = string(cat)
	}

	raw, err := c.llm.GenerateText(ctx, llmprovider.TextRequest{
		Prompt:      fmt.Sprintf(PromptClassify, in.Title, in.Description, strings.Join(names, ", ")),
		Temperature: ClassifierTemperature,
		MaxTokens:   ClassifierMaxTokens,
		JSON:        true,
	})

	out, usedFallback := structured.ParseOrFallback(raw, err, func(cause error) llmOutput {
		c.l.Warnf(ctx, "%s: falling back to keywords: %v", LogPrefixClassify, cause)
		return llmOutput{Category: c.fallback.Classify(ctx, in), Confidence: 100}
	})

	if !usedFallback && out.Confidence < MinConfidence {
		heuristic := c.fallback.Classify(ctx, in)
		if heuristic != CategoryGeneral {
			c.l.Debugf(ctx, "%s: low confidence %d for %s, keywords say %s", LogPrefixClassify, out.Confidence, out.Category, heuristic)
			return heuristic
		}
	}

	return out.Category
}
