package http

import (
	"smart-daily-planner/internal/plan"
	"smart-daily-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc plan.UseCase
}

// New creates the HTTP handler for planning sessions, stored plans and the
// stateless generation endpoints.
func New(l log.Logger, uc plan.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
