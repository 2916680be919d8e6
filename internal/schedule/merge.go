package schedule

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/pkg/wallclock"
)

// FixedBlocks converts the commitments active on weekday into fixed blocks.
// Entries with unusable times are skipped and reported.
func FixedBlocks(fixed []model.FixedSchedule, weekday int) ([]model.TimeBlock, []string) {
	var (
		blocks   []model.TimeBlock
		warnings []string
	)
	for _, f := range fixed {
		if !f.ActiveOn(weekday) {
			continue
		}
		span, err := wallclock.NewSpan(f.StartTime, f.EndTime)
		if err != nil || span.End <= span.Start {
			warnings = append(warnings, fmt.Sprintf("fixed commitment %q skipped: invalid time range %s-%s", f.Title, f.StartTime, f.EndTime))
			continue
		}
		blocks = append(blocks, model.TimeBlock{
			ID:        FixedBlockPrefix + f.ID,
			TaskID:    f.ID,
			TaskTitle: f.Title,
			StartTime: wallclock.Format(span.Start),
			EndTime:   wallclock.Format(span.End),
			Duration:  span.Duration(),
			IsFixed:   true,
		})
	}
	return blocks, warnings
}

// Merge puts fixed blocks ahead of generated ones and sorts the union by
// start time. Equal start times keep fixed blocks first.
func Merge(fixed, generated []model.TimeBlock) []model.TimeBlock {
	all := make([]model.TimeBlock, 0, len(fixed)+len(generated))
	all = append(all, fixed...)
	all = append(all, generated...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].StartTime < all[j].StartTime
	})
	return all
}

// Check reports overlaps of generated blocks with fixed commitments or with
// a lunch block, and a schedule running past dayEnd. Nothing is moved.
func Check(blocks []model.TimeBlock, dayEnd int) []string {
	var warnings []string

	type placed struct {
		block model.TimeBlock
		span  wallclock.Span
	}
	var fixed, lunch, generated []placed
	latest := 0
	for _, b := range blocks {
		span, err := wallclock.NewSpan(b.StartTime, b.EndTime)
		if err != nil {
			continue
		}
		if span.End > latest && !b.IsFixed {
			latest = span.End
		}
		switch {
		case b.IsFixed:
			fixed = append(fixed, placed{b, span})
		case b.TaskID == model.TaskIDLunch:
			lunch = append(lunch, placed{b, span})
			generated = append(generated, placed{b, span})
		default:
			generated = append(generated, placed{b, span})
		}
	}

	for _, g := range generated {
		for _, f := range fixed {
			if g.span.Overlaps(f.span) {
				warnings = append(warnings, fmt.Sprintf("%q (%s-%s) overlaps fixed commitment %q (%s-%s)",
					g.block.TaskTitle, g.block.StartTime, g.block.EndTime,
					f.block.TaskTitle, f.block.StartTime, f.block.EndTime))
			}
		}
		if g.block.TaskID == model.TaskIDLunch {
			continue
		}
		for _, l := range lunch {
			if g.span.Overlaps(l.span) {
				warnings = append(warnings, fmt.Sprintf("%q (%s-%s) runs into lunch (%s-%s)",
					g.block.TaskTitle, g.block.StartTime, g.block.EndTime,
					l.block.StartTime, l.block.EndTime))
			}
		}
	}

	if latest > dayEnd {
		warnings = append(warnings, fmt.Sprintf("schedule ends at %s, after the workday end %s",
			wallclock.Format(latest), wallclock.Format(dayEnd)))
	}
	return warnings
}

// uniqueIDs gives every block a distinct id. Blank ids get a UUID and
// repeated ones get a numeric suffix.
func uniqueIDs(blocks []model.TimeBlock) {
	seen := make(map[string]bool, len(blocks))
	for i := range blocks {
		id := blocks[i].ID
		if id == "" {
			id = uuid.NewString()
		}
		for n := 2; seen[id]; n++ {
			id = fmt.Sprintf("%s-%d", blocks[i].ID, n)
		}
		seen[id] = true
		blocks[i].ID = id
	}
}

// TotalMinutes sums block durations.
func TotalMinutes(blocks []model.TimeBlock) int {
	total := 0
	for _, b := range blocks {
		total += b.Duration
	}
	return total
}
