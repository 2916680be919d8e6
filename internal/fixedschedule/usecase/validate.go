package usecase

import (
	"sort"
	"strings"

	"smart-daily-planner/internal/fixedschedule"
	"smart-daily-planner/internal/fixedschedule/repository"
	"smart-daily-planner/internal/model"
	"smart-daily-planner/pkg/wallclock"
)

// normalize validates f and returns it in stored form: trimmed title,
// zero-padded times, sorted unique weekdays, default priority.
func normalize(userID string, f fixedschedule.Fields) (repository.CreateOptions, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return repository.CreateOptions{}, fixedschedule.ErrTitleRequired
	}

	start, err := wallclock.Parse(f.StartTime)
	if err != nil {
		return repository.CreateOptions{}, fixedschedule.ErrInvalidTime
	}
	end, err := wallclock.Parse(f.EndTime)
	if err != nil {
		return repository.CreateOptions{}, fixedschedule.ErrInvalidTime
	}
	if end <= start {
		return repository.CreateOptions{}, fixedschedule.ErrInvalidTimeRange
	}

	if len(f.DaysOfWeek) == 0 {
		return repository.CreateOptions{}, fixedschedule.ErrInvalidWeekday
	}
	seen := make(map[int]bool, len(f.DaysOfWeek))
	days := make([]int, 0, len(f.DaysOfWeek))
	for _, d := range f.DaysOfWeek {
		if !wallclock.ValidWeekday(d) {
			return repository.CreateOptions{}, fixedschedule.ErrInvalidWeekday
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Ints(days)

	priority := f.PriorityLevel
	if priority == 0 {
		priority = model.FixedPriorityMedium
	}
	if priority < model.FixedPriorityHigh || priority > model.FixedPriorityLow {
		return repository.CreateOptions{}, fixedschedule.ErrInvalidPriority
	}

	return repository.CreateOptions{
		UserID:        userID,
		Title:         title,
		Description:   f.Description,
		StartTime:     wallclock.Format(start),
		EndTime:       wallclock.Format(end),
		DaysOfWeek:    days,
		IsRecurring:   f.IsRecurring,
		PriorityLevel: priority,
		IsMovable:     f.IsMovable,
	}, nil
}
