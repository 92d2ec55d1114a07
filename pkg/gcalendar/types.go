package gcalendar

import "time"

// DateLayout is the all-day date format used by the Calendar API.
const DateLayout = "2006-01-02"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA zone, e.g. "Asia/Ho_Chi_Minh"
	// AllDay books whole days. Only the dates of StartTime and EndTime are used and EndTime is exclusive.
	AllDay bool
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	AllDay   bool
}
