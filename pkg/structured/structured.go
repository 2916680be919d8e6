// Package structured turns free-form model output into typed values,
// falling back to a caller-supplied value when the output cannot be used.
package structured

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoObject means the text holds no {...} span.
	ErrNoObject = errors.New("structured: no JSON object in output")

	// ErrMalformed means an object was found but did not decode or validate.
	ErrMalformed = errors.New("structured: malformed output")
)

// Validator is implemented by payload types that can reject a decoded value.
type Validator interface {
	Validate() error
}

// ExtractObject strips markdown code fences and returns the substring from
// the first '{' to the last '}' inclusive.
func ExtractObject(raw string) (string, bool) {
	text := stripFences(raw)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// Parse extracts the JSON object from raw, decodes it into T and, when *T
// implements Validator, validates it.
func Parse[T any](raw string) (T, error) {
	var out T

	obj, ok := ExtractObject(raw)
	if !ok {
		return out, ErrNoObject
	}

	if err := json.Unmarshal([]byte(obj), &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if v, ok := any(&out).(Validator); ok {
		if err := v.Validate(); err != nil {
			return out, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	return out, nil
}

// ParseOrFallback is the single entry point for generative call sites.
// callErr is the error from the upstream call; when it is non-nil, or raw
// cannot be parsed into T, fallback receives the cause and its value is
// returned with usedFallback set.
func ParseOrFallback[T any](raw string, callErr error, fallback func(cause error) T) (value T, usedFallback bool) {
	if callErr != nil {
		return fallback(callErr), true
	}

	parsed, err := Parse[T](raw)
	if err != nil {
		return fallback(err), true
	}

	return parsed, false
}
