package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/pkg/llmprovider"
	"smart-daily-planner/pkg/log"
	"smart-daily-planner/pkg/wallclock"
)

// 2026-10-19 is a Monday.
const monday = "2026-10-19"

type fakeLLM struct {
	text  string
	err   error
	calls int
	req   llmprovider.TextRequest
}

func (f *fakeLLM) GenerateText(_ context.Context, req llmprovider.TextRequest) (string, error) {
	f.calls++
	f.req = req
	return f.text, f.err
}

type span struct {
	id, start, end string
}

func spans(blocks []model.TimeBlock) []span {
	out := make([]span, len(blocks))
	for i, b := range blocks {
		out[i] = span{b.ID, b.StartTime, b.EndTime}
	}
	return out
}

func TestFallback(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		want  []span
	}{
		{
			name: "Priority order with breaks",
			tasks: []Task{
				{ID: "b", EstimatedDuration: 30, Priority: model.PriorityLow},
				{ID: "a", EstimatedDuration: 90, Priority: model.PriorityHigh},
			},
			want: []span{
				{"block_a", "09:00", "10:30"},
				{"block_b", "10:45", "11:15"},
			},
		},
		{
			name: "Lunch inserted when the clock lands in the lunch hour",
			tasks: []Task{
				{ID: "t1", EstimatedDuration: 150, Priority: model.PriorityMedium},
				{ID: "t2", EstimatedDuration: 20, Priority: model.PriorityMedium},
				{ID: "t3", EstimatedDuration: 30, Priority: model.PriorityMedium},
			},
			want: []span{
				{"block_t1", "09:00", "11:30"},
				{"block_t2", "11:45", "12:05"},
				{"lunch_break", "12:00", "13:00"},
				{"block_t3", "13:00", "13:30"},
			},
		},
		{
			name: "Urgent and high share a rank, ties keep input order",
			tasks: []Task{
				{ID: "low", EstimatedDuration: 10},
				{ID: "high", EstimatedDuration: 10, Priority: model.PriorityHigh},
				{ID: "mid", EstimatedDuration: 10, Priority: model.PriorityMedium},
				{ID: "urgent", EstimatedDuration: 10, Priority: model.PriorityUrgent},
			},
			want: []span{
				{"block_high", "09:00", "09:10"},
				{"block_urgent", "09:25", "09:35"},
				{"block_mid", "09:50", "10:00"},
				{"block_low", "10:15", "10:25"},
			},
		},
		{
			name:  "No wraparound past midnight",
			tasks: []Task{{ID: "long", EstimatedDuration: 900}, {ID: "late", EstimatedDuration: 10}},
			want: []span{
				{"block_long", "09:00", "24:00"},
				{"block_late", "24:15", "24:25"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fallback(tt.tasks, DefaultDayStart)
			assert.Equal(t, tt.want, spans(got))

			for _, b := range got {
				d, err := wallclock.Between(b.StartTime, b.EndTime)
				require.NoError(t, err)
				assert.Equal(t, d, b.Duration, "block %s", b.ID)
				assert.False(t, b.IsFixed)
			}
		})
	}
}

func TestFallback_LunchBlock(t *testing.T) {
	got := Fallback([]Task{{ID: "x", EstimatedDuration: 165}}, DefaultDayStart)
	require.Len(t, got, 2)
	assert.Equal(t, model.TaskIDLunch, got[1].TaskID)
	assert.Equal(t, 60, got[1].Duration)
}

func TestMerge_SortsFixedAndGenerated(t *testing.T) {
	fixed, warnings := FixedBlocks([]model.FixedSchedule{
		{ID: "f1", Title: "Class", StartTime: "10:00", EndTime: "11:00", DaysOfWeek: []int{1, 3}},
		{ID: "f2", Title: "Tuesday gym", StartTime: "08:00", EndTime: "09:00", DaysOfWeek: []int{2}},
		{ID: "f3", Title: "Standup", StartTime: "8:30", EndTime: "8:45", DaysOfWeek: []int{1}},
		{ID: "f4", Title: "Broken", StartTime: "12:00", EndTime: "11:00", DaysOfWeek: []int{1}},
	}, 1)
	require.Len(t, warnings, 1)

	generated := []model.TimeBlock{
		{ID: "block_a", StartTime: "09:00", EndTime: "10:30", Duration: 90},
		{ID: "block_b", StartTime: "10:45", EndTime: "11:15", Duration: 30},
	}
	got := Merge(fixed, generated)

	assert.Equal(t, []span{
		{"fixed-f3", "08:30", "08:45"},
		{"block_a", "09:00", "10:30"},
		{"fixed-f1", "10:00", "11:00"},
		{"block_b", "10:45", "11:15"},
	}, spans(got))
	assert.True(t, got[0].IsFixed)
	assert.Equal(t, 15, got[0].Duration)

	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].StartTime, got[i].StartTime)
	}

	overlaps := Check(got, DefaultDayEnd)
	assert.Len(t, overlaps, 2)
}

func TestCheck_WorkdayEnd(t *testing.T) {
	blocks := []model.TimeBlock{{ID: "x", TaskTitle: "Long", StartTime: "17:00", EndTime: "18:30", Duration: 90}}
	warnings := Check(blocks, DefaultDayEnd)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "18:30")

	assert.Empty(t, Check([]model.TimeBlock{{StartTime: "17:00", EndTime: "18:00"}}, DefaultDayEnd))
}

func TestCheck_Lunch(t *testing.T) {
	lunch := LunchBlock()
	tests := []struct {
		name   string
		blocks []model.TimeBlock
		want   []string
	}{
		{
			name: "Task running into lunch",
			blocks: []model.TimeBlock{
				{ID: "block_a", TaskID: "a", TaskTitle: "Report", StartTime: "09:00", EndTime: "12:20"},
				lunch,
			},
			want: []string{`"Report" (09:00-12:20) runs into lunch (12:00-13:00)`},
		},
		{
			name: "Task after lunch",
			blocks: []model.TimeBlock{
				lunch,
				{ID: "block_a", TaskID: "a", TaskTitle: "Report", StartTime: "13:00", EndTime: "14:00"},
			},
		},
		{
			name: "Breaks are not tasks",
			blocks: []model.TimeBlock{
				{ID: "b1", TaskID: model.TaskIDBreak, TaskTitle: "Break", StartTime: "11:50", EndTime: "12:05"},
				lunch,
			},
			want: []string{`"Break" (11:50-12:05) runs into lunch (12:00-13:00)`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.blocks, DefaultDayEnd))
		})
	}
}

func TestBuild_FallbackLongTaskWarnsAboutLunch(t *testing.T) {
	b := New(&fakeLLM{err: errors.New("timeout")}, log.NewNop(), Config{})

	res, err := b.Build(context.Background(), Input{
		Date:  monday,
		Tasks: []Task{{ID: "a", Title: "A", EstimatedDuration: 200}},
	})
	require.NoError(t, err)

	assert.Equal(t, []span{
		{"block_a", "09:00", "12:20"},
		{"lunch_break", "12:00", "13:00"},
	}, spans(res.Blocks))
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "lunch")
}

func TestBlockIDsAreUnique(t *testing.T) {
	t.Run("Fallback with a repeated task", func(t *testing.T) {
		got := Fallback([]Task{
			{ID: "d", EstimatedDuration: 10},
			{ID: "d", EstimatedDuration: 10},
			{ID: "d", EstimatedDuration: 10},
		}, DefaultDayStart)
		assert.Equal(t, []span{
			{"block_d", "09:00", "09:10"},
			{"block_d-2", "09:25", "09:35"},
			{"block_d-3", "09:50", "10:00"},
		}, spans(got))
	})

	t.Run("Model reusing an id", func(t *testing.T) {
		llm := &fakeLLM{text: `{"timeBlocks":[
			{"id":"x","task_id":"a","task_title":"A","start_time":"09:00","end_time":"10:00"},
			{"id":"x","task_id":"b","task_title":"B","start_time":"10:00","end_time":"11:00"},
			{"task_id":"c","task_title":"C","start_time":"11:00","end_time":"11:30"}
		]}`}
		res, err := New(llm, log.NewNop(), Config{}).Build(context.Background(), Input{
			Date:  monday,
			Tasks: []Task{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		})
		require.NoError(t, err)
		require.Len(t, res.Blocks, 3)

		seen := map[string]bool{}
		for _, blk := range res.Blocks {
			assert.NotEmpty(t, blk.ID)
			assert.False(t, seen[blk.ID], "duplicate id %s", blk.ID)
			seen[blk.ID] = true
		}
		assert.Equal(t, "x", res.Blocks[0].ID)
		assert.Equal(t, "x-2", res.Blocks[1].ID)
	})
}

func TestBuild_Validation(t *testing.T) {
	llm := &fakeLLM{}
	b := New(llm, log.NewNop(), Config{})

	_, err := b.Build(context.Background(), Input{Date: monday})
	assert.ErrorIs(t, err, ErrNoTasks)

	_, err = b.Build(context.Background(), Input{Date: "19/10/2026", Tasks: []Task{{ID: "a"}}})
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Zero(t, llm.calls)
}

func TestBuild_FallbackWithFixed(t *testing.T) {
	llm := &fakeLLM{err: errors.New("all providers failed")}
	b := New(llm, log.NewNop(), Config{})

	res, err := b.Build(context.Background(), Input{
		Date: monday,
		Tasks: []Task{
			{ID: "a", Title: "A", EstimatedDuration: 90, Priority: model.PriorityHigh},
			{ID: "b", Title: "B", EstimatedDuration: 30, Priority: model.PriorityLow},
		},
		Fixed: []model.FixedSchedule{{ID: "f1", Title: "Class", StartTime: "10:00", EndTime: "11:00", DaysOfWeek: []int{1}}},
	})
	require.NoError(t, err)

	assert.Equal(t, model.SourceFallback, res.Source)
	assert.Equal(t, []span{
		{"block_a", "09:00", "10:30"},
		{"fixed-f1", "10:00", "11:00"},
		{"block_b", "10:45", "11:15"},
	}, spans(res.Blocks))
	assert.Equal(t, 180, res.TotalMinutes)
	assert.Len(t, res.Warnings, 2)
	assert.Contains(t, llm.req.Prompt, `"title": "Class"`)
}

func TestBuild_AIPath(t *testing.T) {
	llm := &fakeLLM{text: "Sure!\n```json\n" + `{"timeBlocks":[
		{"id":"x1","task_id":"a","task_title":"A","start_time":"9:00","end_time":"10:00","duration":999},
		{"task_id":"break","task_title":"Break","start_time":"10:00","end_time":"10:15","duration":15}
	]}` + "\n```"}
	b := New(llm, log.NewNop(), Config{})

	res, err := b.Build(context.Background(), Input{
		Date:        monday,
		Tasks:       []Task{{ID: "a", Title: "A", EstimatedDuration: 60}},
		Suggestions: []model.Suggestion{{Title: "Deep work first", Accepted: true}, {Title: "Ignored"}},
	})
	require.NoError(t, err)

	assert.Equal(t, model.SourceAI, res.Source)
	require.Len(t, res.Blocks, 2)
	assert.Equal(t, "09:00", res.Blocks[0].StartTime)
	assert.Equal(t, 60, res.Blocks[0].Duration)
	assert.NotEmpty(t, res.Blocks[1].ID)
	assert.Equal(t, 75, res.TotalMinutes)
	assert.Empty(t, res.Warnings)

	assert.Contains(t, llm.req.Prompt, "Deep work first")
	assert.NotContains(t, llm.req.Prompt, "Ignored")
	assert.Equal(t, ScheduleTemperature, llm.req.Temperature)
}

func TestBuild_MalformedBlocksFallBack(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "Empty list", text: `{"timeBlocks":[]}`},
		{name: "Bad clock", text: `{"timeBlocks":[{"task_id":"a","start_time":"nine","end_time":"10:00"}]}`},
		{name: "End before start", text: `{"timeBlocks":[{"task_id":"a","start_time":"10:00","end_time":"09:00"}]}`},
		{name: "No object", text: `I could not build a schedule.`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := New(&fakeLLM{text: tt.text}, log.NewNop(), Config{}).Build(context.Background(), Input{
				Date:  monday,
				Tasks: []Task{{ID: "a", Title: "A", EstimatedDuration: 30}},
			})
			require.NoError(t, err)
			assert.Equal(t, model.SourceFallback, res.Source)
			assert.Equal(t, []span{{"block_a", "09:00", "09:30"}}, spans(res.Blocks))
		})
	}
}
