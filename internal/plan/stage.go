package plan

import "smart-daily-planner/internal/model"

// Operation names a session step.
type Operation string

const (
	OpAnalyze       Operation = "analyze_durations"
	OpAdjust        Operation = "adjust_duration"
	OpSuggest       Operation = "generate_suggestions"
	OpSetSuggestion Operation = "set_suggestion"
	OpSchedule      Operation = "generate_schedule"
	OpSave          Operation = "save"
)

type transition struct {
	from []model.SessionStage
	// to is empty when the stage is left unchanged.
	to model.SessionStage
}

var transitions = map[Operation]transition{
	OpAnalyze:       {from: []model.SessionStage{model.StageSelect}, to: model.StageSelect},
	OpAdjust:        {from: []model.SessionStage{model.StageSelect, model.StageOptimize}},
	OpSuggest:       {from: []model.SessionStage{model.StageSelect, model.StageOptimize}, to: model.StageOptimize},
	OpSetSuggestion: {from: []model.SessionStage{model.StageOptimize}, to: model.StageOptimize},
	OpSchedule:      {from: []model.SessionStage{model.StageOptimize, model.StageSchedule}, to: model.StageSchedule},
	OpSave:          {from: []model.SessionStage{model.StageSchedule}, to: model.StageReview},
}

// CanRun reports whether op is allowed from stage.
func CanRun(stage model.SessionStage, op Operation) bool {
	t, ok := transitions[op]
	if !ok {
		return false
	}
	for _, s := range t.from {
		if s == stage {
			return true
		}
	}
	return false
}

// Next returns the stage after op succeeds from stage.
func Next(stage model.SessionStage, op Operation) model.SessionStage {
	if t, ok := transitions[op]; ok && t.to != "" {
		return t.to
	}
	return stage
}
