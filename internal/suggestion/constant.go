package suggestion

import "smart-daily-planner/internal/model"

// Log prefixes
const (
	LogPrefixGenerate = "internal.suggestion.Generate"
)

const (
	SuggestionTemperature = 0.7
	SuggestionMaxTokens   = 1000
	MaxSuggestions        = 5
)

const PromptSuggest = `You are an expert productivity assistant. Analyse the following tasks and propose concrete suggestions to optimise the user's daily plan.

Tasks for %s:
%s

Produce 3 to 5 optimisation suggestions. Each suggestion has:
- type: "reorder", "break" or "focus_time"
- title: a short title
- description: a detailed explanation of why it helps

Consider task priorities, estimated durations, due dates, productivity patterns (hard tasks in the morning) and the need for breaks between long tasks.

Respond ONLY with valid JSON in this format:
{
  "suggestions": [
    {
      "type": "reorder",
      "title": "Suggestion title",
      "description": "Detailed description"
    }
  ]
}`

// fallbackSuggestions are returned when the model is unavailable.
var fallbackSuggestions = []model.Suggestion{
	{
		Type:        model.SuggestionReorder,
		Title:       "Prioritize urgent tasks",
		Description: "Reorder tasks by priority and due date to get the most important work done first.",
	},
	{
		Type:        model.SuggestionBreak,
		Title:       "Include regular breaks",
		Description: "Add 10-15 minute breaks between long tasks to keep your focus.",
	},
}
