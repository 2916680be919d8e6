package coach

import (
	"context"
	"fmt"
	"strings"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/pkg/llmprovider"
	"smart-daily-planner/pkg/structured"
)

// Summarize condenses the notes into key points, connections and tips. A
// failed or unusable answer yields an outline built from the notes.
func (g *implGenerator) Summarize(ctx context.Context, in SummaryInput) (Summary, error) {
	if len(in.Notes) == 0 {
		return Summary{}, ErrNoNotes
	}

	blocks := make([]string, len(in.Notes))
	for i, n := range in.Notes {
		blocks[i] = fmt.Sprintf("Title: %s\nContent: %s", n.Title, excerpt(n.Content, summaryNoteRunes))
	}

	raw, callErr := g.llm.GenerateText(ctx, llmprovider.TextRequest{
		Prompt:      fmt.Sprintf(PromptSummarize, strings.Join(blocks, "\n\n---\n\n")),
		Temperature: SummaryTemperature,
		MaxTokens:   SummaryMaxTokens,
		JSON:        true,
	})

	p, usedFallback := structured.ParseOrFallback(raw, callErr, func(cause error) summaryPayload {
		g.l.Warnf(ctx, "%s: using outline: %v", LogPrefixSummarize, cause)
		return fallbackSummary(in.Notes)
	})

	source := model.SourceAI
	if usedFallback {
		source = model.SourceFallback
	}
	return Summary{
		Summary:     p.Summary,
		KeyPoints:   p.KeyPoints,
		Connections: p.Connections,
		Tips:        p.Tips,
		Source:      source,
	}, nil
}

// Advise returns up to five tips over the tasks and notes. A failed or
// unusable answer yields FallbackTips.
func (g *implGenerator) Advise(ctx context.Context, in AdviceInput) (Advice, error) {
	taskLines := make([]string, len(in.Tasks))
	for i, t := range in.Tasks {
		due := t.DueDate
		if due == "" {
			due = "no date"
		}
		taskLines[i] = fmt.Sprintf("- %s (priority: %s, status: %s, due: %s)", t.Title, t.Priority, t.Status, due)
	}
	noteLines := make([]string, len(in.Notes))
	for i, n := range in.Notes {
		noteLines[i] = fmt.Sprintf("- %s: %s", n.Title, excerpt(n.Content, adviceNoteRunes))
	}

	raw, callErr := g.llm.GenerateText(ctx, llmprovider.TextRequest{
		Prompt:      fmt.Sprintf(PromptAdvise, orLine(taskLines, noTasksLine), orLine(noteLines, noNotesLine)),
		Temperature: AdviceTemperature,
		MaxTokens:   AdviceMaxTokens,
		JSON:        true,
	})

	p, usedFallback := structured.ParseOrFallback(raw, callErr, func(cause error) advicePayload {
		g.l.Warnf(ctx, "%s: using default tips: %v", LogPrefixAdvise, cause)
		return advicePayload{Tips: FallbackTips(in.Tasks)}
	})

	source := model.SourceAI
	if usedFallback {
		source = model.SourceFallback
	}
	return Advice{Tips: p.Tips, Source: source}, nil
}

// fallbackSummary lists the note titles and the opening of each note.
func fallbackSummary(notes []Note) summaryPayload {
	titles := make([]string, len(notes))
	points := make([]string, 0, len(notes))
	for i, n := range notes {
		titles[i] = n.Title
		if body := excerpt(n.Content, adviceNoteRunes); body != "" {
			points = append(points, fmt.Sprintf("%s: %s", n.Title, body))
		} else {
			points = append(points, n.Title)
		}
	}
	return summaryPayload{
		Summary:     fmt.Sprintf("%d notes: %s.", len(notes), strings.Join(titles, ", ")),
		KeyPoints:   points,
		Connections: []string{},
		Tips:        append([]string(nil), fallbackSummaryTips...),
	}
}

// FallbackTips gives five tips. The first two refer to the tasks when they
// allow it.
func FallbackTips(tasks []Task) []string {
	var (
		pressing string
		dated    int
	)
	for _, t := range tasks {
		if t.Status == model.TaskStatusCompleted {
			continue
		}
		if pressing == "" && t.Priority.Rank() == model.PriorityUrgent.Rank() {
			pressing = t.Title
		}
		if t.DueDate != "" {
			dated++
		}
	}

	tips := make([]string, 0, MaxTips)
	if pressing != "" {
		tips = append(tips, fmt.Sprintf("Start the day with %q, your most pressing open task.", pressing))
	} else {
		tips = append(tips, "Pick the one task that matters most each morning and finish it first.")
	}
	if dated > 0 {
		tips = append(tips, fmt.Sprintf("Reserve time this week for the %d open tasks that have a due date.", dated))
	} else {
		tips = append(tips, "Give open tasks a due date so they can be planned around.")
	}
	return append(tips, fallbackAdviceTips...)
}

// excerpt cuts s to n runes on one line, marking the cut with "...".
func excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func orLine(lines []string, empty string) string {
	if len(lines) == 0 {
		return empty
	}
	return strings.Join(lines, "\n")
}
