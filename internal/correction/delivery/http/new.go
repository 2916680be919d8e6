package http

import (
	"smart-daily-planner/internal/correction"
	"smart-daily-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc correction.UseCase
}

// New creates a new HTTP handler for the correction log.
func New(l log.Logger, uc correction.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
