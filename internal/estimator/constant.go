package estimator

// Log prefixes
const (
	LogPrefixEstimate = "internal.estimator.Estimate"
)

// Fallback texts for tasks the model could not analyse.
const (
	FallbackReasoning       = "Automatic analysis unavailable"
	FallbackVariabilityNote = "Adjust manually based on your experience"
)

const (
	EstimatorTemperature = 0.3
	EstimatorMaxTokens   = 1500
)

const PromptEstimate = `You are an expert in time analysis and personal productivity. Estimate a realistic duration for each task, considering:

1. Type of activity: physical, mental, creative, administrative
2. Complexity: simple, moderate, complex
3. Personal factors: typical experience, individual variability
4. Context: preparation, cleanup, interruptions
%s
Tasks to analyse:
%s

For each task provide:
- estimated_minutes: realistic estimate in whole minutes
- reasoning: short explanation
- variability_note: factors that could change the time
- category: one of study, exercise, personal, work, food, general

Examples:
- "Take a shower": 15-45 min (depends on personal routine)
- "Study mathematics": 60-90 min (needs deep focus)
- "Exercise": 30-60 min (includes warm-up and cool-down)

Respond ONLY with valid JSON:
{
  "task_analyses": [
    {
      "task_id": "task id",
      "estimated_minutes": 30,
      "reasoning": "analysis",
      "variability_note": "what may change the time",
      "category": "category"
    }
  ]
}`

const (
	promptLearningHeader = "\nUSER LEARNING CONTEXT (how the user's real durations compare to past estimates):\n"
	promptFixedHeader    = "\nFIXED COMMITMENTS (do not overlap with these):\n"
)
