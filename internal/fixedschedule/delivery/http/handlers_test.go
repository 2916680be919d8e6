package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-daily-planner/internal/fixedschedule"
	"smart-daily-planner/internal/model"
	"smart-daily-planner/pkg/log"
	"smart-daily-planner/pkg/scope"
)

type mockUseCase struct {
	err      error
	createIn fixedschedule.CreateInput
	listIn   fixedschedule.ListInput
}

func (m *mockUseCase) Create(_ context.Context, in fixedschedule.CreateInput) (model.FixedSchedule, error) {
	m.createIn = in
	return model.FixedSchedule{ID: "f1"}, m.err
}

func (m *mockUseCase) List(_ context.Context, in fixedschedule.ListInput) ([]model.FixedSchedule, error) {
	m.listIn = in
	return nil, m.err
}

func (m *mockUseCase) Update(_ context.Context, in fixedschedule.UpdateInput) (model.FixedSchedule, error) {
	return model.FixedSchedule{ID: in.ID}, m.err
}

func (m *mockUseCase) Delete(context.Context, string, string) error { return m.err }

func newTestRouter(uc fixedschedule.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), scope.Scope{UserID: "u1"}))
	})
	h := New(log.NewNop(), uc)
	r.POST("/fixed-schedules", h.Create)
	r.GET("/fixed-schedules", h.List)
	r.PUT("/fixed-schedules/:id", h.Update)
	r.DELETE("/fixed-schedules/:id", h.Delete)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))
	return w
}

func TestCreateHandler(t *testing.T) {
	uc := &mockUseCase{}
	w := do(newTestRouter(uc), http.MethodPost, "/fixed-schedules",
		`{"title":"Class","start_time":"08:00","end_time":"10:00","days_of_week":[1,3]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", uc.createIn.UserID)
	assert.True(t, uc.createIn.IsRecurring)
	assert.Equal(t, []int{1, 3}, uc.createIn.DaysOfWeek)

	w = do(newTestRouter(&mockUseCase{}), http.MethodPost, "/fixed-schedules", `{"title":"Class"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListHandler_Weekday(t *testing.T) {
	uc := &mockUseCase{}
	w := do(newTestRouter(uc), http.MethodGet, "/fixed-schedules?weekday=4", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.listIn.Weekday)
	assert.Equal(t, 4, *uc.listIn.Weekday)

	w = do(newTestRouter(&mockUseCase{}), http.MethodGet, "/fixed-schedules?weekday=8", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "Not found", err: fixedschedule.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "Range", err: fixedschedule.ErrInvalidTimeRange, wantCode: http.StatusBadRequest},
		{name: "Unauthorized", err: fixedschedule.ErrUnauthorized, wantCode: http.StatusUnauthorized},
		{name: "Storage", err: assert.AnError, wantCode: http.StatusInternalServerError},
	}
	body := `{"title":"Class","start_time":"08:00","end_time":"10:00","days_of_week":[1]}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&mockUseCase{err: tt.err})
			assert.Equal(t, tt.wantCode, do(r, http.MethodPut, "/fixed-schedules/f1", body).Code)
		})
	}
}
