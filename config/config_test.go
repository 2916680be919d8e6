package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Model: "gemini-2.5-flash", Enabled: true, Priority: 1},
				{Name: "groq", Model: "llama-3.3-70b-versatile", Enabled: true, Priority: 2},
			}},
		},
		{
			name:    "missing model",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1}}},
			wantErr: true,
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Model: "m", Enabled: true, Priority: 1},
				{Name: "qwen", Model: "m", Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
		{
			name: "disabled provider skips priority check",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Model: "m", Enabled: false, Priority: 0},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"http://a", "http://b"}, splitList(" http://a , ,http://b"))
	assert.Nil(t, splitList(""))
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("PLANNER_TEST_KEY", "secret-value")

	assert.Equal(t, "secret-value", expandEnvVar("${PLANNER_TEST_KEY}"))
	assert.Equal(t, "plain", expandEnvVar("plain"))
	assert.Equal(t, "", expandEnvVar(""))
}

func TestPostgresDSN(t *testing.T) {
	cfg := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "planner", SSLMode: "disable"}
	require.Equal(t, "host=db port=5432 user=u password=p dbname=planner sslmode=disable", cfg.DSN())
}
