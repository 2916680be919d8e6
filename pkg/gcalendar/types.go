package gcalendar

// DefaultCalendarID is used when an event names no calendar.
const DefaultCalendarID = "primary"

// LayoutLocalDateTime is a wall-clock timestamp without offset. Google
// Calendar resolves it against the event's TimeZone.
const LayoutLocalDateTime = "2006-01-02T15:04:05"

// BlockEvent is one scheduled block to publish. Date is YYYY-MM-DD and the
// times are HH:MM wall-clock values in TimeZone.
type BlockEvent struct {
	CalendarID  string
	Summary     string
	Description string
	Date        string
	StartTime   string
	EndTime     string
	TimeZone    string
}

// Event is the created calendar entry.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
}
