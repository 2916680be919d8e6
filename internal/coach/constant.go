package coach

// Log prefixes
const (
	LogPrefixSummarize = "internal.coach.Summarize"
	LogPrefixAdvise    = "internal.coach.Advise"
)

const (
	SummaryTemperature = 0.4
	SummaryMaxTokens   = 1200
	AdviceTemperature  = 0.7
	AdviceMaxTokens    = 800

	MaxTips        = 5
	MaxSummaryTips = 3

	// Note bodies are cut to these many characters inside prompts.
	summaryNoteRunes = 4000
	adviceNoteRunes  = 100
)

const PromptSummarize = `You are a productivity assistant who summarises academic and professional notes.

Analyse the notes below and provide:
1. A concise summary of the key points
2. Important connections between the ideas
3. 3 specific suggestions to improve productivity based on the content

Notes:
%s

Respond ONLY with valid JSON in this format:
{
  "summary": "one paragraph",
  "key_points": ["point"],
  "connections": ["connection"],
  "tips": ["tip"]
}`

const PromptAdvise = `You are a productivity coach for students and professionals.

Analyse the user's information and give 5 specific, actionable suggestions to improve their productivity.

CURRENT TASKS:
%s

RECENT NOTES:
%s

The suggestions must be specific and actionable, based on the information above, focused on organisation and productivity.

Respond ONLY with valid JSON in this format:
{
  "tips": ["suggestion 1", "suggestion 2", "suggestion 3", "suggestion 4", "suggestion 5"]
}`

const (
	noTasksLine = "No tasks available"
	noNotesLine = "No notes available"
)

var fallbackSummaryTips = []string{
	"Turn each key point into a task with a due date.",
	"Review these notes again within two days to keep them fresh.",
	"Link notes to the tasks they support so they show up when you plan.",
}

var fallbackAdviceTips = []string{
	"Time-box each task in your daily plan and stop when the block ends.",
	"Take a 10-15 minute break after every long stretch of focused work.",
	"Review your notes at the end of the day and turn loose ideas into tasks.",
}
