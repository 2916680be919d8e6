package correction

import (
	"fmt"
	"sort"
	"strings"

	"smart-daily-planner/internal/model"
)

const (
	// RecentTrendWindow is how many of the newest corrections feed RecentTrend.
	RecentTrendWindow = 10

	slowerThreshold = 1.2
	fasterThreshold = 0.8
)

// Analyze aggregates corrections, ordered most recent first, into
// per-category running means. Records whose AI estimate is not positive
// are skipped. Returns nil when nothing usable remains.
func Analyze(corrections []model.DurationCorrection) *Patterns {
	var (
		categories = make(map[string]CategoryPattern)
		trendSum   float64
		trendCount int
		total      int
	)

	for _, c := range corrections {
		if c.AIEstimatedDuration <= 0 {
			continue
		}
		sample := float64(c.UserCorrectedDuration) / float64(c.AIEstimatedDuration)

		category := c.TaskCategory
		if category == "" {
			category = model.DefaultCategory
		}

		p := categories[category]
		p.AvgMultiplier = (p.AvgMultiplier*float64(p.Count) + sample) / float64(p.Count+1)
		p.Count++
		categories[category] = p

		if trendCount < RecentTrendWindow {
			trendSum += sample
			trendCount++
		}
		total++
	}

	if total == 0 {
		return nil
	}

	return &Patterns{
		Categories:       categories,
		RecentTrend:      trendSum / float64(trendCount),
		TotalCorrections: total,
	}
}

// Describe renders one prompt line per category, sorted by name, telling the
// model how the user's real durations compare to past estimates.
func Describe(p *Patterns) string {
	if p == nil || len(p.Categories) == 0 {
		return ""
	}

	names := make([]string, 0, len(p.Categories))
	for name := range p.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		cp := p.Categories[name]
		var verdict string
		switch {
		case cp.AvgMultiplier > slowerThreshold:
			verdict = "usually needs more time than estimated"
		case cp.AvgMultiplier < fasterThreshold:
			verdict = "is usually faster than estimated"
		default:
			verdict = "is close to the estimates"
		}
		fmt.Fprintf(&sb, "- %s: %s (factor %.2f, %d corrections)\n", name, verdict, cp.AvgMultiplier, cp.Count)
	}
	fmt.Fprintf(&sb, "- overall recent trend: factor %.2f\n", p.RecentTrend)

	return sb.String()
}
