package estimator

import (
	"context"
	"encoding/json"
	"fmt"

	"smart-daily-planner/internal/correction"
	"smart-daily-planner/internal/model"
	"smart-daily-planner/pkg/llmprovider"
	"smart-daily-planner/pkg/structured"
)

// Estimate asks the model for refined durations. Upstream and parse failures
// never surface: affected tasks keep their current duration.
func (e *implEstimator) Estimate(ctx context.Context, in Input) (Output, error) {
	if len(in.Tasks) == 0 {
		return Output{}, ErrNoTasks
	}

	prompt, err := buildPrompt(in)
	if err != nil {
		return Output{}, fmt.Errorf("%s: build prompt: %w", LogPrefixEstimate, err)
	}

	raw, callErr := e.llm.GenerateText(ctx, llmprovider.TextRequest{
		Prompt:      prompt,
		Temperature: EstimatorTemperature,
		MaxTokens:   EstimatorMaxTokens,
		JSON:        true,
	})

	p, usedFallback := structured.ParseOrFallback(raw, callErr, func(cause error) payload {
		e.l.Warnf(ctx, "%s: using current durations: %v", LogPrefixEstimate, cause)
		return payload{}
	})

	out := merge(in.Tasks, p.TaskAnalyses)
	if usedFallback || out.matched == 0 {
		out.Source = model.SourceFallback
	} else {
		out.Source = model.SourceAI
		e.l.Infof(ctx, "%s: analysed %d/%d tasks", LogPrefixEstimate, out.matched, len(in.Tasks))
	}
	return out.Output, nil
}

type merged struct {
	Output
	matched int
}

// merge keeps one analysis per input task in input order. Analyses for
// unknown ids are dropped; tasks without one get the identity fallback.
func merge(tasks []Task, analyses []Analysis) merged {
	byID := make(map[string]Analysis, len(analyses))
	for _, a := range analyses {
		if _, dup := byID[a.TaskID]; !dup {
			byID[a.TaskID] = a
		}
	}

	var m merged
	m.Analyses = make([]Analysis, len(tasks))
	for i, t := range tasks {
		a, ok := byID[t.ID]
		if !ok {
			m.Analyses[i] = Fallback(t)
			continue
		}
		if a.Category == "" {
			a.Category = model.DefaultCategory
		}
		m.Analyses[i] = a
		m.matched++
	}
	return m
}

// Fallback is the identity analysis for t.
func Fallback(t Task) Analysis {
	return Analysis{
		TaskID:           t.ID,
		EstimatedMinutes: t.CurrentDuration,
		Reasoning:        FallbackReasoning,
		VariabilityNote:  FallbackVariabilityNote,
		Category:         model.DefaultCategory,
	}
}

func buildPrompt(in Input) (string, error) {
	tasks, err := json.MarshalIndent(in.Tasks, "", "  ")
	if err != nil {
		return "", err
	}

	var extra string
	if desc := correction.Describe(in.Patterns); desc != "" {
		extra += promptLearningHeader + desc
	}
	if len(in.Fixed) > 0 {
		fixed := make([]fixedContext, len(in.Fixed))
		for i, f := range in.Fixed {
			fixed[i] = fixedContext{Title: f.Title, StartTime: f.StartTime, EndTime: f.EndTime, DaysOfWeek: f.DaysOfWeek}
		}
		b, err := json.MarshalIndent(fixed, "", "  ")
		if err != nil {
			return "", err
		}
		extra += promptFixedHeader + string(b) + "\n"
	}

	return fmt.Sprintf(PromptEstimate, extra, tasks), nil
}
