package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan"
	"smart-daily-planner/pkg/llmprovider"
)

const monday = "2026-10-19"

func baseDeps() testDeps {
	return testDeps{
		tasks: &fakeTaskUC{tasks: map[string]model.Task{
			"t1": {ID: "t1", UserID: "u1", Title: "Write report", Priority: model.PriorityHigh, EstimatedDuration: 90},
			"t2": {ID: "t2", UserID: "u1", Title: "Gym", Priority: model.PriorityLow, EstimatedDuration: 30},
			"t9": {ID: "t9", UserID: "u2", Title: "Not mine", EstimatedDuration: 30},
		}},
		fixed: &fakeFixedUC{list: []model.FixedSchedule{
			{ID: "f1", Title: "Class", StartTime: "08:00", EndTime: "09:00", DaysOfWeek: []int{1, 3}},
			{ID: "f2", Title: "Weekend", StartTime: "10:00", EndTime: "11:00", DaysOfWeek: []int{0, 6}},
		}},
		corrections: &fakeCorrectionUC{},
		plans:       &fakePlanRepo{},
		publisher:   &fakePublisher{},
	}
}

func start(t *testing.T, uc *implUseCase) model.PlanningSession {
	t.Helper()
	s, err := uc.StartSession(context.Background(), plan.StartInput{UserID: "u1", Date: monday, TaskIDs: []string{"t1", "t2", "t9", "missing"}})
	require.NoError(t, err)
	return s
}

func TestFullFlow_Fallback(t *testing.T) {
	d := baseDeps()
	uc := newTestUseCase(d)
	ctx := context.Background()

	s := start(t, uc)
	assert.Equal(t, model.StageSelect, s.Stage)
	require.Len(t, s.Tasks, 2)
	require.Len(t, s.Fixed, 1)
	assert.Equal(t, "f1", s.Fixed[0].ID)
	require.NotNil(t, d.fixed.listIn[0].Weekday)
	assert.Equal(t, 1, *d.fixed.listIn[0].Weekday)

	s, err := uc.AnalyzeDurations(ctx, "u1", s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StageSelect, s.Stage)
	assert.Equal(t, model.SourceFallback, s.AnalysisSource)
	require.Len(t, s.Analyses, 2)
	assert.Equal(t, 90, s.Tasks[0].Duration)

	s, err = uc.AdjustDuration(ctx, plan.AdjustDurationInput{UserID: "u1", SessionID: s.ID, TaskID: "t2", Duration: 45})
	require.NoError(t, err)
	assert.Equal(t, 45, s.Tasks[1].Duration)
	require.Len(t, d.corrections.recorded, 1)
	assert.Equal(t, 30, d.corrections.recorded[0].AIEstimatedDuration)
	assert.Equal(t, 45, d.corrections.recorded[0].UserCorrectedDuration)
	assert.Equal(t, "Gym", d.corrections.recorded[0].TaskTitle)

	s, err = uc.GenerateSuggestions(ctx, "u1", s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StageOptimize, s.Stage)
	assert.Equal(t, model.SourceFallback, s.SuggestionSource)
	require.Len(t, s.Suggestions, 2)

	s, err = uc.SetSuggestion(ctx, plan.SetSuggestionInput{UserID: "u1", SessionID: s.ID, Index: 1, Accepted: true})
	require.NoError(t, err)
	assert.True(t, s.Suggestions[1].Accepted)
	assert.False(t, s.Suggestions[0].Accepted)

	s, err = uc.GenerateSchedule(ctx, "u1", s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StageSchedule, s.Stage)
	assert.Equal(t, model.SourceFallback, s.ScheduleSource)
	require.Len(t, s.Blocks, 3)
	assert.Equal(t, "fixed-f1", s.Blocks[0].ID)
	assert.Equal(t, "block_t1", s.Blocks[1].ID)
	assert.Equal(t, "09:00", s.Blocks[1].StartTime)
	assert.Equal(t, "10:30", s.Blocks[1].EndTime)
	assert.Equal(t, "10:45", s.Blocks[2].StartTime)
	assert.Equal(t, "11:30", s.Blocks[2].EndTime)
	assert.Empty(t, s.Warnings)

	out, err := uc.Save(ctx, "u1", s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StageReview, out.Session.Stage)
	assert.Equal(t, out.Plan.ID, out.Session.PlanID)
	assert.Equal(t, "Plan for 19/10/2026", out.Plan.Title)
	assert.Equal(t, 2, out.Plan.TotalTasks)
	assert.Equal(t, 60+90+45, out.Plan.EstimatedDuration)
	assert.Equal(t, model.PlanStatusActive, out.Plan.Status)

	require.Len(t, d.plans.upserts, 1)
	assigned := d.plans.upserts[0].Assignments
	require.Len(t, assigned, 2)
	assert.Equal(t, "t1", assigned[0].TaskID)
	assert.False(t, assigned[0].AIOptimized)
	require.Len(t, d.publisher.published, 1)

	// The stored session reflects the save.
	got, err := uc.GetSession(ctx, "u1", s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StageReview, got.Stage)
}

func TestGenerateSchedule_AIPath(t *testing.T) {
	d := baseDeps()
	d.llm = &fakeLLM{respond: func(req llmprovider.TextRequest) string {
		switch {
		case strings.Contains(req.Prompt, "timeBlocks"):
			return `{"timeBlocks":[{"task_id":"t1","task_title":"Write report","start_time":"9:00","end_time":"10:30"},{"id":"x","task_id":"t2","task_title":"Gym","start_time":"17:00","end_time":"17:30"}]}`
		case strings.Contains(req.Prompt, "suggestions"):
			return `{"suggestions":[{"type":"focus_time","title":"Deep work","description":"Morning block"}]}`
		default:
			return `not json`
		}
	}}
	uc := newTestUseCase(d)
	ctx := context.Background()

	s := start(t, uc)
	s, err := uc.GenerateSuggestions(ctx, "u1", s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SourceAI, s.SuggestionSource)

	s, err = uc.GenerateSchedule(ctx, "u1", s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SourceAI, s.ScheduleSource)
	require.Len(t, s.Blocks, 3)
	assert.Equal(t, "09:00", s.Blocks[1].StartTime)
	assert.NotEmpty(t, s.Blocks[1].ID)

	// Regenerating from the schedule stage is allowed.
	s, err = uc.GenerateSchedule(ctx, "u1", s.ID)
	require.NoError(t, err)

	out, err := uc.Save(ctx, "u1", s.ID)
	require.NoError(t, err)
	require.Len(t, d.plans.upserts[0].Assignments, 2)
	assert.True(t, d.plans.upserts[0].Assignments[0].AIOptimized)
	assert.Equal(t, 60+90+30, out.Plan.EstimatedDuration)
}

func TestStageGuards(t *testing.T) {
	uc := newTestUseCase(baseDeps())
	ctx := context.Background()
	s := start(t, uc)

	_, err := uc.Save(ctx, "u1", s.ID)
	assert.ErrorIs(t, err, plan.ErrInvalidStage)
	_, err = uc.SetSuggestion(ctx, plan.SetSuggestionInput{UserID: "u1", SessionID: s.ID})
	assert.ErrorIs(t, err, plan.ErrInvalidStage)
	_, err = uc.GenerateSchedule(ctx, "u1", s.ID)
	assert.ErrorIs(t, err, plan.ErrInvalidStage)

	_, err = uc.GenerateSuggestions(ctx, "u1", s.ID)
	require.NoError(t, err)
	_, err = uc.AnalyzeDurations(ctx, "u1", s.ID)
	assert.ErrorIs(t, err, plan.ErrInvalidStage)

	// A failed guard leaves the stored stage untouched.
	got, err := uc.GetSession(ctx, "u1", s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StageOptimize, got.Stage)
}

func TestSessionOwnership(t *testing.T) {
	uc := newTestUseCase(baseDeps())
	ctx := context.Background()
	s := start(t, uc)

	_, err := uc.GetSession(ctx, "u2", s.ID)
	assert.ErrorIs(t, err, plan.ErrSessionNotFound)
	_, err = uc.AnalyzeDurations(ctx, "u2", s.ID)
	assert.ErrorIs(t, err, plan.ErrSessionNotFound)
	_, err = uc.GetSession(ctx, "u1", "unknown")
	assert.ErrorIs(t, err, plan.ErrSessionNotFound)
	_, err = uc.GetSession(ctx, "", s.ID)
	assert.ErrorIs(t, err, plan.ErrUnauthorized)
}

func TestStartSession_Validation(t *testing.T) {
	uc := newTestUseCase(baseDeps())
	ctx := context.Background()

	tests := []struct {
		name    string
		input   plan.StartInput
		wantErr error
	}{
		{name: "Anonymous", input: plan.StartInput{Date: monday, TaskIDs: []string{"t1"}}, wantErr: plan.ErrUnauthorized},
		{name: "Bad date", input: plan.StartInput{UserID: "u1", Date: "19/10/2026", TaskIDs: []string{"t1"}}, wantErr: plan.ErrInvalidDate},
		{name: "No ids", input: plan.StartInput{UserID: "u1", Date: monday}, wantErr: plan.ErrNoTasks},
		{name: "Foreign ids only", input: plan.StartInput{UserID: "u1", Date: monday, TaskIDs: []string{"t9"}}, wantErr: plan.ErrNoTasks},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.StartSession(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAdjustDuration(t *testing.T) {
	d := baseDeps()
	d.corrections.recordErr = assert.AnError
	uc := newTestUseCase(d)
	ctx := context.Background()
	s := start(t, uc)

	_, err := uc.AdjustDuration(ctx, plan.AdjustDurationInput{UserID: "u1", SessionID: s.ID, TaskID: "t1", Duration: 0})
	assert.ErrorIs(t, err, plan.ErrInvalidDuration)
	_, err = uc.AdjustDuration(ctx, plan.AdjustDurationInput{UserID: "u1", SessionID: s.ID, TaskID: "zzz", Duration: 10})
	assert.ErrorIs(t, err, plan.ErrTaskNotInSession)

	// Same as the stored estimate: nothing to learn.
	_, err = uc.AdjustDuration(ctx, plan.AdjustDurationInput{UserID: "u1", SessionID: s.ID, TaskID: "t1", Duration: 90})
	require.NoError(t, err)
	assert.Empty(t, d.corrections.recorded)

	// Correction log failures do not fail the adjustment.
	s, err = uc.AdjustDuration(ctx, plan.AdjustDurationInput{UserID: "u1", SessionID: s.ID, TaskID: "t1", Duration: 120, Reason: "always longer"})
	require.NoError(t, err)
	assert.Equal(t, 120, s.Tasks[0].Duration)
	require.Len(t, d.corrections.recorded, 1)
	assert.Equal(t, "always longer", d.corrections.recorded[0].CorrectionReason)
}

func TestSetSuggestion_OutOfRange(t *testing.T) {
	uc := newTestUseCase(baseDeps())
	ctx := context.Background()
	s := start(t, uc)
	_, err := uc.GenerateSuggestions(ctx, "u1", s.ID)
	require.NoError(t, err)

	for _, idx := range []int{-1, 2} {
		_, err = uc.SetSuggestion(ctx, plan.SetSuggestionInput{UserID: "u1", SessionID: s.ID, Index: idx, Accepted: true})
		assert.ErrorIs(t, err, plan.ErrSuggestionNotFound)
	}
}

func TestSave_PublisherFailureIsNotSurfaced(t *testing.T) {
	d := baseDeps()
	d.publisher.err = assert.AnError
	uc := newTestUseCase(d)
	ctx := context.Background()

	s := start(t, uc)
	_, err := uc.GenerateSuggestions(ctx, "u1", s.ID)
	require.NoError(t, err)
	_, err = uc.GenerateSchedule(ctx, "u1", s.ID)
	require.NoError(t, err)
	_, err = uc.Save(ctx, "u1", s.ID)
	assert.NoError(t, err)
	assert.Len(t, d.publisher.published, 1)
}

func TestPlans(t *testing.T) {
	d := baseDeps()
	uc := newTestUseCase(d)
	ctx := context.Background()

	_, err := uc.GetPlan(ctx, "u1", monday)
	assert.ErrorIs(t, err, plan.ErrPlanNotFound)
	_, err = uc.GetPlan(ctx, "u1", "tomorrow")
	assert.ErrorIs(t, err, plan.ErrInvalidDate)
	_, err = uc.GetPlan(ctx, "", monday)
	assert.ErrorIs(t, err, plan.ErrUnauthorized)

	d.plans.plans = map[string]model.DailyPlan{"u1/" + monday: {ID: "p1", UserID: "u1", PlanDate: monday}}
	p, err := uc.GetPlan(ctx, "u1", monday)
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	_, err = uc.ListPlans(ctx, plan.ListPlansInput{UserID: "u1", Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, plan.MaxListLimit, d.plans.listOpt.Limit)
	_, err = uc.ListPlans(ctx, plan.ListPlansInput{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, plan.DefaultListLimit, d.plans.listOpt.Limit)
}

func TestBuildSchedule_Stateless(t *testing.T) {
	d := baseDeps()
	uc := newTestUseCase(d)
	ctx := context.Background()
	tasks := []plan.ScheduleTask{{ID: "a", Title: "A", Priority: model.PriorityMedium, EstimatedDuration: 60}}

	res, err := uc.BuildSchedule(ctx, plan.ScheduleInput{UserID: "u1", Date: monday, Tasks: tasks})
	require.NoError(t, err)
	require.Len(t, res.Blocks, 2)
	assert.True(t, res.Blocks[0].IsFixed)

	// Anonymous callers get no stored commitments.
	res, err = uc.BuildSchedule(ctx, plan.ScheduleInput{Date: monday, Tasks: tasks})
	require.NoError(t, err)
	require.Len(t, res.Blocks, 1)
	assert.Equal(t, "block_a", res.Blocks[0].ID)
}
