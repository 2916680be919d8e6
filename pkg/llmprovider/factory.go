package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"smart-daily-planner/config"
	"smart-daily-planner/pkg/gemini"
	"smart-daily-planner/pkg/log"
	"smart-daily-planner/pkg/openaicompat"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped; initErrors lists why.
func InitializeProviders(cfg *config.LLMConfig) (providers []Provider, initErrors []string, err error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors,
				fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, initErrors, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, initErrors, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	if cfg.Name == "gemini" {
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient(cfg.Timeout),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiProvider(client), nil
	}

	client, err := openaicompat.New(openaicompat.Config{
		Vendor:     cfg.Name,
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    cfg.BaseURL,
		HTTPClient: httpClient(cfg.Timeout),
	})
	if err != nil {
		if errors.Is(err, openaicompat.ErrUnknownVendor) {
			return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
		}
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
	}
	return NewChatProvider(client), nil
}

// httpClient honours the per-provider timeout; nil lets the client use its default.
func httpClient(timeout string) *http.Client {
	d := parseDuration(timeout, 0)
	if d <= 0 {
		return nil
	}
	return &http.Client{Timeout: d}
}

// NewManagerFromConfig wires providers and retry settings from config.
// A config with no usable provider still yields a Manager; every call on it
// fails with ErrNoProvidersConfigured so callers take their local fallback.
func NewManagerFromConfig(ctx context.Context, cfg *config.LLMConfig, logger log.Logger) *Manager {
	providers, initErrors, err := InitializeProviders(cfg)
	for _, msg := range initErrors {
		logger.Warnf(ctx, "llmprovider.NewManagerFromConfig: %s", msg)
	}
	if err != nil {
		logger.Warnf(ctx, "llmprovider.NewManagerFromConfig: running without LLM providers: %v", err)
	}

	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      parseDuration(cfg.RetryDelay, 0),
		MaxTotalTimeout: parseDuration(cfg.MaxTotalTimeout, 0),
	}, logger)
}

func parseDuration(raw string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}
