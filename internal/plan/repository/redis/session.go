package redis

import (
	"context"
	"encoding/json"
	"errors"

	goredis "github.com/go-redis/redis/v8"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan/repository"
)

func (r *implRepository) Get(ctx context.Context, id string) (model.PlanningSession, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return model.PlanningSession{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Get"), err)
		return model.PlanningSession{}, repository.ErrFailedToGetSession
	}

	var s model.PlanningSession
	if err := json.Unmarshal(raw, &s); err != nil {
		r.l.Errorf(ctx, "%s decode %s: %v", r.dsn("Get"), id, err)
		return model.PlanningSession{}, repository.ErrFailedToGetSession
	}
	return s, nil
}

func (r *implRepository) Put(ctx context.Context, s model.PlanningSession) error {
	raw, err := json.Marshal(s)
	if err != nil {
		r.l.Errorf(ctx, "%s encode %s: %v", r.dsn("Put"), s.ID, err)
		return repository.ErrFailedToPutSession
	}
	if err := r.client.Set(ctx, r.key(s.ID), raw, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Put"), err)
		return repository.ErrFailedToPutSession
	}
	return nil
}
