package gcalendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
)

// CreateEvent inserts an event and returns its link.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, toCalendarEvent(req)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:       created.Id,
		Summary:  created.Summary,
		HtmlLink: created.HtmlLink,
		AllDay:   req.AllDay,
	}, nil
}

func toCalendarEvent(req CreateEventRequest) *calendar.Event {
	ev := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
	}
	if req.AllDay {
		end := req.EndTime
		if !end.After(req.StartTime) {
			end = req.StartTime.AddDate(0, 0, 1)
		}
		ev.Start = &calendar.EventDateTime{Date: req.StartTime.Format(DateLayout)}
		ev.End = &calendar.EventDateTime{Date: end.Format(DateLayout)}
		return ev
	}
	ev.Start = &calendar.EventDateTime{DateTime: req.StartTime.Format(time.RFC3339), TimeZone: req.Timezone}
	ev.End = &calendar.EventDateTime{DateTime: req.EndTime.Format(time.RFC3339), TimeZone: req.Timezone}
	return ev
}
