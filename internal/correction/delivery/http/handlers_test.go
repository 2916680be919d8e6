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

	"smart-daily-planner/internal/correction"
	"smart-daily-planner/internal/model"
	"smart-daily-planner/pkg/log"
	"smart-daily-planner/pkg/response"
	"smart-daily-planner/pkg/scope"
)

type mockUseCase struct {
	recordIn correction.RecordInput
	err      error
}

func (m *mockUseCase) Record(_ context.Context, in correction.RecordInput) (correction.RecordOutput, error) {
	m.recordIn = in
	if m.err != nil {
		return correction.RecordOutput{}, m.err
	}
	return correction.RecordOutput{Correction: model.DurationCorrection{ID: "c1", TaskTitle: in.TaskTitle, TaskCategory: "work"}}, nil
}

func (m *mockUseCase) List(_ context.Context, in correction.ListInput) (correction.ListOutput, error) {
	if m.err != nil {
		return correction.ListOutput{}, m.err
	}
	return correction.ListOutput{Corrections: []model.DurationCorrection{{ID: "c1"}}}, nil
}

func (m *mockUseCase) Patterns(context.Context, string) (*correction.Patterns, error) {
	return nil, nil
}

func newTestRouter(uc correction.UseCase, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), scope.Scope{UserID: userID}))
		}
	})
	h := New(log.NewNop(), uc)
	r.POST("/corrections", h.Record)
	r.GET("/corrections", h.List)
	return r
}

func TestRecordHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		ucErr    error
		wantCode int
	}{
		{name: "OK", body: `{"task_title":"Report","ai_estimated_duration":30,"user_corrected_duration":50}`, wantCode: http.StatusOK},
		{name: "Bad JSON", body: `{`, wantCode: http.StatusBadRequest},
		{name: "Missing title", body: `{"ai_estimated_duration":30,"user_corrected_duration":50}`, wantCode: http.StatusBadRequest},
		{name: "Domain validation", body: `{"task_title":"x","ai_estimated_duration":-3,"user_corrected_duration":50}`, ucErr: correction.ErrInvalidDuration, wantCode: http.StatusBadRequest},
		{name: "Storage failure", body: `{"task_title":"x","ai_estimated_duration":3,"user_corrected_duration":5}`, ucErr: assert.AnError, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.ucErr}
			r := newTestRouter(uc, "u1")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/corrections", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, "u1", uc.recordIn.UserID)
				var resp response.Resp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, 0, resp.ErrorCode)
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	r := newTestRouter(&mockUseCase{}, "u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/corrections?limit=5", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"corrections"`)

	r = newTestRouter(&mockUseCase{err: correction.ErrUnauthorized}, "")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/corrections", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
