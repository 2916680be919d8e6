package http

import (
	"smart-daily-planner/internal/fixedschedule"
	"smart-daily-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc fixedschedule.UseCase
}

// New creates a new HTTP handler for fixed schedules.
func New(l log.Logger, uc fixedschedule.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
