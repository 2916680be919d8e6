package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-daily-planner/internal/fixedschedule"
	"smart-daily-planner/internal/fixedschedule/repository"
	"smart-daily-planner/internal/model"
	"smart-daily-planner/pkg/log"
)

type mockRepo struct {
	created repository.CreateOptions
	listOpt repository.ListOptions
	updated bool
	deleted bool
	stored  []model.FixedSchedule
	calls   int
}

func (m *mockRepo) Create(_ context.Context, opt repository.CreateOptions) (model.FixedSchedule, error) {
	m.created = opt
	return model.FixedSchedule{ID: "f1", UserID: opt.UserID, Title: opt.Title, StartTime: opt.StartTime, EndTime: opt.EndTime, DaysOfWeek: opt.DaysOfWeek}, nil
}

func (m *mockRepo) List(_ context.Context, opt repository.ListOptions) ([]model.FixedSchedule, error) {
	m.listOpt = opt
	return m.stored, nil
}

func (m *mockRepo) Update(_ context.Context, opt repository.UpdateOptions) (model.FixedSchedule, error) {
	m.calls++
	if !m.updated {
		return model.FixedSchedule{}, nil
	}
	return model.FixedSchedule{ID: opt.ID}, nil
}

func (m *mockRepo) Delete(context.Context, repository.DeleteOptions) (bool, error) {
	m.calls++
	return m.deleted, nil
}

func TestCreate_Validation(t *testing.T) {
	valid := fixedschedule.Fields{Title: "Class", StartTime: "8:00", EndTime: "10:30", DaysOfWeek: []int{3, 1, 3}}

	tests := []struct {
		name    string
		mutate  func(f *fixedschedule.Fields)
		wantErr error
	}{
		{name: "Valid", mutate: func(*fixedschedule.Fields) {}},
		{name: "No title", mutate: func(f *fixedschedule.Fields) { f.Title = "" }, wantErr: fixedschedule.ErrTitleRequired},
		{name: "Bad time", mutate: func(f *fixedschedule.Fields) { f.StartTime = "25:00" }, wantErr: fixedschedule.ErrInvalidTime},
		{name: "End before start", mutate: func(f *fixedschedule.Fields) { f.EndTime = "07:00" }, wantErr: fixedschedule.ErrInvalidTimeRange},
		{name: "Zero length", mutate: func(f *fixedschedule.Fields) { f.EndTime = "08:00" }, wantErr: fixedschedule.ErrInvalidTimeRange},
		{name: "No days", mutate: func(f *fixedschedule.Fields) { f.DaysOfWeek = nil }, wantErr: fixedschedule.ErrInvalidWeekday},
		{name: "Day out of range", mutate: func(f *fixedschedule.Fields) { f.DaysOfWeek = []int{7} }, wantErr: fixedschedule.ErrInvalidWeekday},
		{name: "Bad priority", mutate: func(f *fixedschedule.Fields) { f.PriorityLevel = 4 }, wantErr: fixedschedule.ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := valid
			fields.DaysOfWeek = append([]int(nil), valid.DaysOfWeek...)
			tt.mutate(&fields)

			repo := &mockRepo{}
			_, err := New(repo, log.NewNop()).Create(context.Background(), fixedschedule.CreateInput{UserID: "u1", Fields: fields})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "08:00", repo.created.StartTime)
			assert.Equal(t, "10:30", repo.created.EndTime)
			assert.Equal(t, []int{1, 3}, repo.created.DaysOfWeek)
			assert.Equal(t, model.FixedPriorityMedium, repo.created.PriorityLevel)
		})
	}
}

func TestCreate_Anonymous(t *testing.T) {
	_, err := New(&mockRepo{}, log.NewNop()).Create(context.Background(), fixedschedule.CreateInput{})
	assert.ErrorIs(t, err, fixedschedule.ErrUnauthorized)
}

func TestList(t *testing.T) {
	repo := &mockRepo{stored: []model.FixedSchedule{{ID: "f1"}}}
	uc := New(repo, log.NewNop())

	weekday := 2
	list, err := uc.List(context.Background(), fixedschedule.ListInput{UserID: "u1", Weekday: &weekday})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	require.NotNil(t, repo.listOpt.Weekday)
	assert.Equal(t, 2, *repo.listOpt.Weekday)

	bad := 9
	_, err = uc.List(context.Background(), fixedschedule.ListInput{UserID: "u1", Weekday: &bad})
	assert.ErrorIs(t, err, fixedschedule.ErrInvalidWeekday)
}

func TestUpdateAndDelete_NotFound(t *testing.T) {
	const (
		stored  = "5d1e7c3a-9f5b-4a61-8a2e-6c0b7e9d1f01"
		unknown = "5d1e7c3a-9f5b-4a61-8a2e-6c0b7e9d1fff"
	)
	fields := fixedschedule.Fields{Title: "x", StartTime: "09:00", EndTime: "10:00", DaysOfWeek: []int{1}}

	uc := New(&mockRepo{}, log.NewNop())
	_, err := uc.Update(context.Background(), fixedschedule.UpdateInput{UserID: "u1", ID: unknown, Fields: fields})
	assert.ErrorIs(t, err, fixedschedule.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(context.Background(), "u1", unknown), fixedschedule.ErrNotFound)

	uc = New(&mockRepo{updated: true, deleted: true}, log.NewNop())
	f, err := uc.Update(context.Background(), fixedschedule.UpdateInput{UserID: "u1", ID: stored, Fields: fields})
	require.NoError(t, err)
	assert.Equal(t, stored, f.ID)
	assert.NoError(t, uc.Delete(context.Background(), "u1", stored))
}

func TestUpdateAndDelete_MalformedID(t *testing.T) {
	repo := &mockRepo{updated: true, deleted: true}
	uc := New(repo, log.NewNop())
	fields := fixedschedule.Fields{Title: "x", StartTime: "09:00", EndTime: "10:00", DaysOfWeek: []int{1}}

	for _, id := range []string{"nope", "42", ""} {
		_, err := uc.Update(context.Background(), fixedschedule.UpdateInput{UserID: "u1", ID: id, Fields: fields})
		assert.ErrorIs(t, err, fixedschedule.ErrNotFound, id)
		assert.ErrorIs(t, uc.Delete(context.Background(), "u1", id), fixedschedule.ErrNotFound, id)
	}
	assert.Zero(t, repo.calls)
}
