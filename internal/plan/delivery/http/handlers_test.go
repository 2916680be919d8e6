package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-daily-planner/internal/estimator"
	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan"
	"smart-daily-planner/internal/schedule"
	"smart-daily-planner/internal/suggestion"
	"smart-daily-planner/pkg/log"
	"smart-daily-planner/pkg/scope"
)

type mockUseCase struct {
	plan.UseCase
	err        error
	startIn    plan.StartInput
	adjustIn   plan.AdjustDurationInput
	setIn      plan.SetSuggestionInput
	estimateIn plan.EstimateInput
	scheduleIn plan.ScheduleInput
}

func (m *mockUseCase) session() model.PlanningSession {
	return model.PlanningSession{ID: "s1", Date: "2026-10-19", Stage: model.StageSelect}
}

func (m *mockUseCase) StartSession(_ context.Context, in plan.StartInput) (model.PlanningSession, error) {
	m.startIn = in
	return m.session(), m.err
}

func (m *mockUseCase) GetSession(context.Context, string, string) (model.PlanningSession, error) {
	return m.session(), m.err
}

func (m *mockUseCase) AdjustDuration(_ context.Context, in plan.AdjustDurationInput) (model.PlanningSession, error) {
	m.adjustIn = in
	return m.session(), m.err
}

func (m *mockUseCase) SetSuggestion(_ context.Context, in plan.SetSuggestionInput) (model.PlanningSession, error) {
	m.setIn = in
	return m.session(), m.err
}

func (m *mockUseCase) Save(context.Context, string, string) (plan.SaveOutput, error) {
	return plan.SaveOutput{Plan: model.DailyPlan{ID: "p1"}, Session: m.session()}, m.err
}

func (m *mockUseCase) GetPlan(_ context.Context, _, date string) (model.DailyPlan, error) {
	return model.DailyPlan{ID: "p1", PlanDate: date}, m.err
}

func (m *mockUseCase) EstimateDurations(_ context.Context, in plan.EstimateInput) (estimator.Output, error) {
	m.estimateIn = in
	return estimator.Output{Source: model.SourceFallback}, m.err
}

func (m *mockUseCase) Suggest(context.Context, suggestion.Input) (suggestion.Output, error) {
	return suggestion.Output{}, m.err
}

func (m *mockUseCase) BuildSchedule(_ context.Context, in plan.ScheduleInput) (schedule.Result, error) {
	m.scheduleIn = in
	return schedule.Result{Source: model.SourceAI}, m.err
}

func newTestRouter(uc plan.UseCase, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), scope.Scope{UserID: userID}))
		}
	})
	h := New(log.NewNop(), uc)
	r.GET("/plans/:date", h.GetPlan)
	r.POST("/plans/sessions", h.StartSession)
	r.GET("/plans/sessions/:id", h.GetSession)
	r.PUT("/plans/sessions/:id/tasks/:task_id/duration", h.AdjustDuration)
	r.PUT("/plans/sessions/:id/suggestions/:index", h.SetSuggestion)
	r.POST("/plans/sessions/:id/save", h.Save)
	r.POST("/ai/analyze-durations", h.EstimateDurations)
	r.POST("/ai/schedule", h.BuildSchedule)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))
	return w
}

func TestStartSessionHandler(t *testing.T) {
	const (
		task1 = "9c1f4a2e-3b7d-4e8a-a5c6-1d2e3f4a5b01"
		task2 = "9c1f4a2e-3b7d-4e8a-a5c6-1d2e3f4a5b02"
	)
	uc := &mockUseCase{}
	w := do(newTestRouter(uc, "u1"), http.MethodPost, "/plans/sessions",
		`{"date":"2026-10-19","task_ids":["`+task1+`","`+task2+`"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", uc.startIn.UserID)
	assert.Equal(t, []string{task1, task2}, uc.startIn.TaskIDs)

	var body struct {
		Data sessionResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "select", body.Data.Stage)
	assert.NotNil(t, body.Data.TimeBlocks)

	tests := []struct {
		name string
		body string
	}{
		{name: "No tasks", body: `{"date":"2026-10-19","task_ids":[]}`},
		{name: "Malformed task id", body: `{"date":"2026-10-19","task_ids":["` + task1 + `","t2"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := do(newTestRouter(uc, "u1"), http.MethodPost, "/plans/sessions", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, uc.startIn.TaskIDs)
		})
	}
}

func TestAdjustAndSetSuggestionHandlers(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc, "u1")

	w := do(r, http.MethodPut, "/plans/sessions/s1/tasks/t2/duration", `{"duration":45}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, plan.AdjustDurationInput{UserID: "u1", SessionID: "s1", TaskID: "t2", Duration: 45}, uc.adjustIn)

	w = do(r, http.MethodPut, "/plans/sessions/s1/suggestions/1", `{"accepted":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, uc.setIn.Index)
	assert.True(t, uc.setIn.Accepted)

	w = do(r, http.MethodPut, "/plans/sessions/s1/suggestions/x", `{"accepted":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = do(r, http.MethodPut, "/plans/sessions/s1/suggestions/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "Stage", err: plan.ErrInvalidStage, wantCode: http.StatusConflict},
		{name: "Session", err: plan.ErrSessionNotFound, wantCode: http.StatusNotFound},
		{name: "Unauthorized", err: plan.ErrUnauthorized, wantCode: http.StatusUnauthorized},
		{name: "No tasks", err: plan.ErrNoTasks, wantCode: http.StatusBadRequest},
		{name: "Storage", err: assert.AnError, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&mockUseCase{err: tt.err}, "u1")
			assert.Equal(t, tt.wantCode, do(r, http.MethodPost, "/plans/sessions/s1/save", "").Code)
			assert.Equal(t, tt.wantCode, do(r, http.MethodGet, "/plans/sessions/s1", "").Code)
		})
	}
}

func TestGetPlanHandler(t *testing.T) {
	w := do(newTestRouter(&mockUseCase{}, "u1"), http.MethodGet, "/plans/2026-10-19", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"plan_date":"2026-10-19"`)

	w = do(newTestRouter(&mockUseCase{err: plan.ErrPlanNotFound}, "u1"), http.MethodGet, "/plans/2026-10-20", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAIHandlers_Anonymous(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc, "")

	w := do(r, http.MethodPost, "/ai/analyze-durations", `{"tasks":[{"id":"a","title":"Read"}]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, uc.estimateIn.UserID)
	require.Len(t, uc.estimateIn.Tasks, 1)
	assert.Equal(t, model.DefaultEstimatedDuration, uc.estimateIn.Tasks[0].CurrentDuration)
	assert.Contains(t, w.Body.String(), `"source":"fallback"`)

	w = do(r, http.MethodPost, "/ai/schedule", `{"date":"2026-10-19","tasks":[{"id":"a","title":"Read","priority":"high","estimated_duration":30}]}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, uc.scheduleIn.Tasks, 1)
	assert.Equal(t, model.PriorityHigh, uc.scheduleIn.Tasks[0].Priority)

	w = do(newTestRouter(&mockUseCase{err: schedule.ErrInvalidDate}, ""), http.MethodPost, "/ai/schedule", `{"date":"soon","tasks":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
