package usecase

import (
	"context"
	"errors"
	"time"

	"smart-daily-planner/internal/correction"
	"smart-daily-planner/internal/estimator"
	"smart-daily-planner/internal/fixedschedule"
	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan/repository"
	"smart-daily-planner/internal/plan/repository/memory"
	"smart-daily-planner/internal/schedule"
	"smart-daily-planner/internal/suggestion"
	"smart-daily-planner/internal/task"
	"smart-daily-planner/pkg/llmprovider"
	"smart-daily-planner/pkg/log"
)

var errUpstream = errors.New("upstream unavailable")

// fakeLLM answers every prompt with respond, or fails when respond is nil.
type fakeLLM struct {
	respond func(req llmprovider.TextRequest) string
}

func (f *fakeLLM) GenerateText(_ context.Context, req llmprovider.TextRequest) (string, error) {
	if f.respond == nil {
		return "", errUpstream
	}
	return f.respond(req), nil
}

type fakeTaskUC struct {
	task.UseCase
	tasks map[string]model.Task
}

func (f *fakeTaskUC) GetByIDs(_ context.Context, userID string, ids []string) ([]model.Task, error) {
	var out []model.Task
	for _, id := range ids {
		if t, ok := f.tasks[id]; ok && t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeFixedUC struct {
	fixedschedule.UseCase
	list   []model.FixedSchedule
	listIn []fixedschedule.ListInput
}

func (f *fakeFixedUC) List(_ context.Context, in fixedschedule.ListInput) ([]model.FixedSchedule, error) {
	f.listIn = append(f.listIn, in)
	if in.Weekday == nil {
		return f.list, nil
	}
	var out []model.FixedSchedule
	for _, fs := range f.list {
		if fs.ActiveOn(*in.Weekday) {
			out = append(out, fs)
		}
	}
	return out, nil
}

type fakeCorrectionUC struct {
	correction.UseCase
	recorded  []correction.RecordInput
	recordErr error
}

func (f *fakeCorrectionUC) Record(_ context.Context, in correction.RecordInput) (correction.RecordOutput, error) {
	f.recorded = append(f.recorded, in)
	return correction.RecordOutput{}, f.recordErr
}

func (f *fakeCorrectionUC) Patterns(context.Context, string) (*correction.Patterns, error) {
	return nil, nil
}

type fakePlanRepo struct {
	upserts []repository.UpsertOptions
	plans   map[string]model.DailyPlan
	listOpt repository.ListOptions
}

func (f *fakePlanRepo) Upsert(_ context.Context, opt repository.UpsertOptions) (model.DailyPlan, error) {
	f.upserts = append(f.upserts, opt)
	p := opt.Plan
	p.ID = "plan-" + p.PlanDate
	if f.plans == nil {
		f.plans = make(map[string]model.DailyPlan)
	}
	f.plans[p.UserID+"/"+p.PlanDate] = p
	return p, nil
}

func (f *fakePlanRepo) GetByDate(_ context.Context, opt repository.GetByDateOptions) (model.DailyPlan, error) {
	return f.plans[opt.UserID+"/"+opt.Date], nil
}

func (f *fakePlanRepo) List(_ context.Context, opt repository.ListOptions) ([]model.DailyPlan, error) {
	f.listOpt = opt
	return nil, nil
}

type fakePublisher struct {
	published []model.DailyPlan
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, p model.DailyPlan) error {
	f.published = append(f.published, p)
	return f.err
}

type testDeps struct {
	llm         *fakeLLM
	tasks       *fakeTaskUC
	fixed       *fakeFixedUC
	corrections *fakeCorrectionUC
	plans       *fakePlanRepo
	publisher   *fakePublisher
}

// newTestUseCase wires real estimator, generator and builder over a fake
// model, with in-memory sessions.
func newTestUseCase(d testDeps) *implUseCase {
	if d.llm == nil {
		d.llm = &fakeLLM{}
	}
	l := log.NewNop()
	uc := New(
		l,
		memory.New(100, time.Hour, l),
		d.plans,
		d.tasks,
		d.fixed,
		d.corrections,
		estimator.New(d.llm, l),
		suggestion.New(d.llm, l),
		schedule.New(d.llm, l, schedule.Config{}),
		nil,
	)
	// A nil *fakePublisher must stay a nil interface.
	if d.publisher != nil {
		uc.publisher = d.publisher
	}
	return uc
}
