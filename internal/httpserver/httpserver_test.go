package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-daily-planner/config"
	"smart-daily-planner/internal/schedule"
	"smart-daily-planner/pkg/log"
	"smart-daily-planner/pkg/scope"
)

// newTestServer registers the system routes after applying opts. Handlers
// have value receivers, so fields must be set before registration.
func newTestServer(t *testing.T, opts ...func(*HTTPServer)) HTTPServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager, err := scope.New("test-secret", "test", time.Hour)
	require.NoError(t, err)

	srv := HTTPServer{
		gin:        gin.New(),
		l:          log.NewNop(),
		jwtManager: jwtManager,
	}
	for _, opt := range opts {
		opt(&srv)
	}
	srv.registerSystemRoutes()
	return srv
}

func withDevLogin(srv *HTTPServer) { srv.devLogin = true }

func withRedis(client *goredis.Client) func(*HTTPServer) {
	return func(srv *HTTPServer) { srv.redis = client }
}

func do(srv HTTPServer, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/live", "/ready"} {
		w := do(srv, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName, path)
	}
}

func TestReadyCheck_RedisDown(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	srv := newTestServer(t, withRedis(client))

	w := do(srv, http.MethodGet, "/ready", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":"down"`)
	assert.Contains(t, w.Body.String(), `"status":"not_ready"`)
}

func TestIssueToken(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		srv := newTestServer(t)
		w := do(srv, http.MethodPost, "/api/v1/auth/token", map[string]string{"user_id": "u1"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Missing user id", func(t *testing.T) {
		srv := newTestServer(t, withDevLogin)
		w := do(srv, http.MethodPost, "/api/v1/auth/token", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Issued", func(t *testing.T) {
		srv := newTestServer(t, withDevLogin)
		w := do(srv, http.MethodPost, "/api/v1/auth/token", map[string]string{"user_id": "u1", "email": "a@b.co"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data tokenResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Bearer", resp.Data.TokenType)

		payload, err := srv.jwtManager.Verify(resp.Data.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "u1", payload.UserID)
		assert.Equal(t, "a@b.co", payload.Email)
	})
}

func TestWorkday(t *testing.T) {
	tests := []struct {
		name    string
		planner config.PlannerConfig
		want    schedule.Config
		wantErr bool
	}{
		{
			name: "Defaults",
			want: schedule.Config{DayStart: schedule.DefaultDayStart, DayEnd: schedule.DefaultDayEnd},
		},
		{
			name:    "Configured",
			planner: config.PlannerConfig{WorkdayStart: "08:30", WorkdayEnd: "17:00"},
			want:    schedule.Config{DayStart: 8*60 + 30, DayEnd: 17 * 60},
		},
		{
			name:    "End before start",
			planner: config.PlannerConfig{WorkdayStart: "10:00", WorkdayEnd: "09:00"},
			want:    schedule.Config{DayStart: 10 * 60, DayEnd: schedule.DefaultDayEnd},
		},
		{
			name:    "Invalid",
			planner: config.PlannerConfig{WorkdayStart: "9am"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := HTTPServer{planner: tt.planner}
			got, err := srv.workday()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
