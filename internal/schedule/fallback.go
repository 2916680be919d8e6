package schedule

import (
	"sort"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/pkg/wallclock"
)

// Fallback places tasks greedily from dayStart: highest rank first, a
// 15 minute gap after each task and the lunch hour when the clock lands
// inside it. Overlaps with fixed commitments are not avoided. A task id
// listed twice yields suffixed block ids.
func Fallback(tasks []Task, dayStart int) []model.TimeBlock {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority.Rank() > sorted[j].Priority.Rank()
	})

	blocks := make([]model.TimeBlock, 0, len(sorted)+1)
	clock := dayStart
	for _, t := range sorted {
		duration := t.EstimatedDuration
		if duration <= 0 {
			duration = model.DefaultEstimatedDuration
		}

		end := clock + duration
		blocks = append(blocks, model.TimeBlock{
			ID:        TaskBlockPrefix + t.ID,
			TaskID:    t.ID,
			TaskTitle: t.Title,
			StartTime: wallclock.Format(clock),
			EndTime:   wallclock.Format(end),
			Duration:  duration,
		})

		clock = end + BreakMinutes
		if clock >= LunchStart && clock < LunchEnd {
			blocks = append(blocks, LunchBlock())
			clock = LunchEnd
		}
	}
	uniqueIDs(blocks)
	return blocks
}

// LunchBlock is the fixed 12:00-13:00 lunch slot.
func LunchBlock() model.TimeBlock {
	return model.TimeBlock{
		ID:        LunchBlockID,
		TaskID:    model.TaskIDLunch,
		TaskTitle: LunchTitle,
		StartTime: wallclock.Format(LunchStart),
		EndTime:   wallclock.Format(LunchEnd),
		Duration:  LunchEnd - LunchStart,
	}
}
