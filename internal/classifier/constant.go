package classifier

import "errors"

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// Modes selectable from config.
const (
	ModeKeyword = "keyword"
	ModeLLM     = "llm"
)

// Classifier prompt
const (
	PromptClassify = `You label personal tasks with exactly one category.

Task title: "%s"
Task description: "%s"

Allowed categories: %s

Return JSON only:
{
  "category": "<one of the allowed categories>",
  "confidence": 0-100
}`

	ClassifierTemperature = 0.1
	ClassifierMaxTokens   = 100
	// MinConfidence below which the keyword heuristic is preferred.
	MinConfidence = 40
)

var errUnknownCategory = errors.New("unknown category")

// keywordRules are checked in order; the first rule with a matching keyword wins.
var keywordRules = []struct {
	category Category
	keywords []string
}{
	{CategoryStudy, []string{"study", "exam", "homework", "lecture", "estudi", "examen", "tarea"}},
	{CategoryExercise, []string{"exercise", "gym", "workout", "sport", "ejercicio", "deporte"}},
	{CategoryPersonal, []string{"shower", "bath", "personal", "baño", "ducha"}},
	{CategoryWork, []string{"work", "meeting", "project", "trabajo", "reunión", "reunion", "proyecto"}},
	{CategoryFood, []string{"cook", "meal", "lunch", "dinner", "cocinar", "comida", "almuerzo"}},
}
