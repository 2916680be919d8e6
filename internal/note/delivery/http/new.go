package http

import (
	"smart-daily-planner/internal/note"
	"smart-daily-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc note.UseCase
}

// New creates the HTTP handler for notes.
func New(l log.Logger, uc note.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
