package publisher

import (
	"context"
	"fmt"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan"
	"smart-daily-planner/pkg/gcalendar"
	"smart-daily-planner/pkg/log"
)

// EventInserter creates one calendar event. *gcalendar.Client satisfies it.
type EventInserter interface {
	InsertBlock(ctx context.Context, req gcalendar.BlockEvent) (*gcalendar.Event, error)
}

type calendarPublisher struct {
	client     EventInserter
	calendarID string
	timeZone   string
	l          log.Logger
}

var _ plan.Publisher = (*calendarPublisher)(nil)

// NewCalendar publishes every block except breaks and lunch as a Google
// Calendar event.
func NewCalendar(client EventInserter, calendarID, timeZone string, l log.Logger) *calendarPublisher {
	return &calendarPublisher{
		client:     client,
		calendarID: calendarID,
		timeZone:   timeZone,
		l:          l,
	}
}

// Publish stops at the first failed insert.
func (p *calendarPublisher) Publish(ctx context.Context, dp model.DailyPlan) error {
	published := 0
	for _, b := range dp.TimeBlocks {
		if b.TaskID == model.TaskIDBreak || b.TaskID == model.TaskIDLunch {
			continue
		}
		_, err := p.client.InsertBlock(ctx, gcalendar.BlockEvent{
			CalendarID:  p.calendarID,
			Summary:     b.TaskTitle,
			Description: dp.Title,
			Date:        dp.PlanDate,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			TimeZone:    p.timeZone,
		})
		if err != nil {
			return fmt.Errorf("publish block %s: %w", b.ID, err)
		}
		published++
	}
	p.l.Infof(ctx, "publisher.Publish: %d events for plan %s", published, dp.ID)
	return nil
}
