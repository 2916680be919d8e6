package http

import (
	"smart-daily-planner/internal/insight"
	"smart-daily-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc insight.UseCase
}

// New creates the HTTP handler for note summaries and coaching.
func New(l log.Logger, uc insight.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
