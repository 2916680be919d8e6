package schedule

// Log prefixes
const (
	LogPrefixBuild = "internal.schedule.Build"
)

const (
	ScheduleTemperature = 0.3
	ScheduleMaxTokens   = 1500
)

// Fallback timing, in minutes since midnight.
const (
	DefaultDayStart = 9 * 60
	DefaultDayEnd   = 18 * 60
	LunchStart      = 12 * 60
	LunchEnd        = 13 * 60
	BreakMinutes    = 15
)

// Ids and titles of generated non-task blocks.
const (
	LunchBlockID     = "lunch_break"
	LunchTitle       = "Lunch"
	TaskBlockPrefix  = "block_"
	FixedBlockPrefix = "fixed-"
)

const PromptSchedule = `You are an expert daily planner. Build an optimised time-blocked schedule for the tasks below.

Date: %s
Tasks:
%s

Suggestions accepted by the user:
%s

Fixed commitments on this date (never move or overlap them):
%s

Rules:
1. Working hours: %s to %s
2. Include a 15 minute break every 2 hours
3. One hour lunch from 12:00 to 13:00
4. High priority tasks first, in the morning
5. Respect each task's estimated duration
6. Apply the accepted suggestions

Respond ONLY with valid JSON:
{
  "timeBlocks": [
    {
      "id": "unique_id",
      "task_id": "task id from the input",
      "task_title": "task title",
      "start_time": "09:00",
      "end_time": "10:30",
      "duration": 90
    }
  ]
}

Include blocks for breaks and lunch with task_id "break" or "lunch". Do not include the fixed commitments.`
