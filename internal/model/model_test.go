package model

import "testing"

func TestPriorityRank(t *testing.T) {
	tests := map[Priority]int{
		PriorityUrgent: 3,
		PriorityHigh:   3,
		PriorityMedium: 2,
		PriorityLow:    1,
		"":             1,
		"whatever":     1,
	}
	for p, want := range tests {
		if got := p.Rank(); got != want {
			t.Errorf("Rank(%q) = %d, want %d", p, got, want)
		}
	}
}

func TestTimeBlockIsTask(t *testing.T) {
	tests := []struct {
		name  string
		block TimeBlock
		want  bool
	}{
		{name: "Task", block: TimeBlock{TaskID: "t1"}, want: true},
		{name: "Break", block: TimeBlock{TaskID: TaskIDBreak}},
		{name: "Lunch", block: TimeBlock{TaskID: TaskIDLunch}},
		{name: "Fixed", block: TimeBlock{TaskID: "f1", IsFixed: true}},
		{name: "Empty", block: TimeBlock{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.block.IsTask(); got != tt.want {
				t.Errorf("IsTask() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFixedScheduleActiveOn(t *testing.T) {
	f := FixedSchedule{DaysOfWeek: []int{1, 3, 5}}
	if !f.ActiveOn(3) || f.ActiveOn(0) {
		t.Errorf("ActiveOn returned wrong result for %v", f.DaysOfWeek)
	}
}
