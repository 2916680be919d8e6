package gemini

import (
	"errors"
	"time"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	mimeTypeJSON  = "application/json"
	roleAssistant = "assistant"
	roleModel     = "model"
)

var (
	ErrMissingAPIKey = errors.New("gemini: api key is required")
	ErrNoCandidates  = errors.New("gemini: response has no candidates")
)
