package plan

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"smart-daily-planner/internal/model"
)

func TestCanRun(t *testing.T) {
	stages := []model.SessionStage{model.StageSelect, model.StageOptimize, model.StageSchedule, model.StageReview}
	allowed := map[Operation][]model.SessionStage{
		OpAnalyze:       {model.StageSelect},
		OpAdjust:        {model.StageSelect, model.StageOptimize},
		OpSuggest:       {model.StageSelect, model.StageOptimize},
		OpSetSuggestion: {model.StageOptimize},
		OpSchedule:      {model.StageOptimize, model.StageSchedule},
		OpSave:          {model.StageSchedule},
	}

	for op, from := range allowed {
		for _, s := range stages {
			assert.Equal(t, slices.Contains(from, s), CanRun(s, op), "%s from %s", op, s)
		}
	}
	assert.False(t, CanRun(model.StageSelect, Operation("unknown")))
}

func TestNext(t *testing.T) {
	assert.Equal(t, model.StageSelect, Next(model.StageSelect, OpAnalyze))
	assert.Equal(t, model.StageOptimize, Next(model.StageOptimize, OpAdjust))
	assert.Equal(t, model.StageSelect, Next(model.StageSelect, OpAdjust))
	assert.Equal(t, model.StageOptimize, Next(model.StageSelect, OpSuggest))
	assert.Equal(t, model.StageSchedule, Next(model.StageOptimize, OpSchedule))
	assert.Equal(t, model.StageReview, Next(model.StageSchedule, OpSave))
}
