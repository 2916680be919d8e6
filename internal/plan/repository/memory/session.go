package memory

import (
	"context"
	"encoding/json"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan/repository"
)

func (r *implRepository) Get(ctx context.Context, id string) (model.PlanningSession, error) {
	raw, ok := r.sessions.Get(id)
	if !ok {
		return model.PlanningSession{}, nil
	}

	var s model.PlanningSession
	if err := json.Unmarshal(raw, &s); err != nil {
		r.l.Errorf(ctx, "plan/repository/memory.Get %s: %v", id, err)
		return model.PlanningSession{}, repository.ErrFailedToGetSession
	}
	return s, nil
}

func (r *implRepository) Put(ctx context.Context, s model.PlanningSession) error {
	raw, err := json.Marshal(s)
	if err != nil {
		r.l.Errorf(ctx, "plan/repository/memory.Put %s: %v", s.ID, err)
		return repository.ErrFailedToPutSession
	}
	r.sessions.Add(s.ID, raw)
	return nil
}
