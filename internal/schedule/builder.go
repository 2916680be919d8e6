package schedule

import (
	"context"
	"encoding/json"
	"fmt"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/pkg/llmprovider"
	"smart-daily-planner/pkg/structured"
	"smart-daily-planner/pkg/wallclock"
)

// Build asks the model for a schedule, falls back to greedy placement when
// that fails, then merges the date's fixed commitments.
func (b *implBuilder) Build(ctx context.Context, in Input) (Result, error) {
	if len(in.Tasks) == 0 {
		return Result{}, ErrNoTasks
	}
	weekday, err := wallclock.Weekday(in.Date)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	fixed, warnings := FixedBlocks(in.Fixed, weekday)

	prompt, err := b.buildPrompt(in, fixed)
	if err != nil {
		return Result{}, fmt.Errorf("%s: build prompt: %w", LogPrefixBuild, err)
	}

	raw, callErr := b.llm.GenerateText(ctx, llmprovider.TextRequest{
		Prompt:      prompt,
		Temperature: ScheduleTemperature,
		MaxTokens:   ScheduleMaxTokens,
		JSON:        true,
	})

	p, usedFallback := structured.ParseOrFallback(raw, callErr, func(cause error) payload {
		b.l.Warnf(ctx, "%s: using greedy placement: %v", LogPrefixBuild, cause)
		return payload{TimeBlocks: Fallback(in.Tasks, b.cfg.DayStart)}
	})

	source := model.SourceFallback
	if !usedFallback {
		source = model.SourceAI
	}
	uniqueIDs(p.TimeBlocks)

	blocks := Merge(fixed, p.TimeBlocks)
	warnings = append(warnings, Check(blocks, b.cfg.DayEnd)...)
	if len(warnings) > 0 {
		b.l.Infof(ctx, "%s: %d warnings for %s", LogPrefixBuild, len(warnings), in.Date)
	}

	return Result{
		Blocks:       blocks,
		Source:       source,
		Warnings:     warnings,
		TotalMinutes: TotalMinutes(blocks),
	}, nil
}

func (b *implBuilder) buildPrompt(in Input, fixed []model.TimeBlock) (string, error) {
	tasks, err := json.MarshalIndent(in.Tasks, "", "  ")
	if err != nil {
		return "", err
	}

	accepted := make([]model.Suggestion, 0, len(in.Suggestions))
	for _, s := range in.Suggestions {
		if s.Accepted {
			accepted = append(accepted, s)
		}
	}
	suggestions, err := json.MarshalIndent(accepted, "", "  ")
	if err != nil {
		return "", err
	}

	type fixedEntry struct {
		Title     string `json:"title"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	}
	entries := make([]fixedEntry, len(fixed))
	for i, f := range fixed {
		entries[i] = fixedEntry{Title: f.TaskTitle, StartTime: f.StartTime, EndTime: f.EndTime}
	}
	fixedJSON, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(PromptSchedule, in.Date, tasks, suggestions, fixedJSON,
		wallclock.Format(b.cfg.DayStart), wallclock.Format(b.cfg.DayEnd)), nil
}
