package classifier

import (
	"context"
	"errors"
	"testing"

	"smart-daily-planner/pkg/llmprovider"
	"smart-daily-planner/pkg/log"
)

type fakeLLM struct {
	text string
	err  error
	req  llmprovider.TextRequest
}

func (f *fakeLLM) GenerateText(_ context.Context, req llmprovider.TextRequest) (string, error) {
	f.req = req
	return f.text, f.err
}

func TestKeywordClassifier(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want Category
	}{
		{name: "Study", in: Input{Title: "Study for the math exam"}, want: CategoryStudy},
		{name: "Spanish study", in: Input{Title: "Tarea de historia"}, want: CategoryStudy},
		{name: "Exercise", in: Input{Title: "Gym session"}, want: CategoryExercise},
		{name: "Personal", in: Input{Title: "Ducha"}, want: CategoryPersonal},
		{name: "Work", in: Input{Title: "Project meeting"}, want: CategoryWork},
		{name: "Food", in: Input{Title: "Cook dinner"}, want: CategoryFood},
		{name: "Description fallback", in: Input{Title: "Misc", Description: "weekly team meeting"}, want: CategoryWork},
		{name: "Case insensitive", in: Input{Title: "WORKOUT"}, want: CategoryExercise},
		{name: "First rule wins", in: Input{Title: "Study lunch"}, want: CategoryStudy},
		{name: "General", in: Input{Title: "Call grandma"}, want: CategoryGeneral},
		{name: "Empty", in: Input{}, want: CategoryGeneral},
	}

	c := NewKeyword()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(context.Background(), tt.in); got != tt.want {
				t.Errorf("Classify(%+v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLLMClassifier(t *testing.T) {
	tests := []struct {
		name string
		llm  *fakeLLM
		in   Input
		want Category
	}{
		{
			name: "Model answer",
			llm:  &fakeLLM{text: "```json\n{\"category\": \"work\", \"confidence\": 90}\n```"},
			in:   Input{Title: "Quarterly review"},
			want: CategoryWork,
		},
		{
			name: "Upstream failure uses keywords",
			llm:  &fakeLLM{err: errors.New("timeout")},
			in:   Input{Title: "Gym"},
			want: CategoryExercise,
		},
		{
			name: "Unknown category uses keywords",
			llm:  &fakeLLM{text: `{"category": "hobbies", "confidence": 99}`},
			in:   Input{Title: "Cook pasta"},
			want: CategoryFood,
		},
		{
			name: "Low confidence defers to a keyword hit",
			llm:  &fakeLLM{text: `{"category": "personal", "confidence": 10}`},
			in:   Input{Title: "Exam prep"},
			want: CategoryStudy,
		},
		{
			name: "Low confidence kept without keyword hit",
			llm:  &fakeLLM{text: `{"category": "personal", "confidence": 10}`},
			in:   Input{Title: "Call grandma"},
			want: CategoryPersonal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLLM(tt.llm, log.NewNop())
			if got := c.Classify(context.Background(), tt.in); got != tt.want {
				t.Errorf("Classify = %q, want %q", got, tt.want)
			}
			if tt.llm.req.Temperature != ClassifierTemperature || !tt.llm.req.JSON {
				t.Errorf("unexpected request %+v", tt.llm.req)
			}
		})
	}
}

func TestNew(t *testing.T) {
	if _, ok := New(ModeKeyword, &fakeLLM{}, log.NewNop()).(KeywordClassifier); !ok {
		t.Errorf("keyword mode should return KeywordClassifier")
	}
	if _, ok := New(ModeLLM, &fakeLLM{}, log.NewNop()).(*LLMClassifier); !ok {
		t.Errorf("llm mode should return *LLMClassifier")
	}
	if _, ok := New(ModeLLM, nil, log.NewNop()).(KeywordClassifier); !ok {
		t.Errorf("llm mode without a generator should degrade to keywords")
	}
}
