package service

import (
	"context"
	"fmt"
	"time"

	"github.com/EpicMandM/calendar-booking/internal/models"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendar talks to the Calendar API on behalf of the token owner.
type GoogleCalendar struct {
	oauth    *oauth2.Config
	endpoint string
}

// NewGoogleCalendar builds a client. endpoint may be empty.
func NewGoogleCalendar(oauthCfg *oauth2.Config, endpoint string) *GoogleCalendar {
	return &GoogleCalendar{oauth: oauthCfg, endpoint: endpoint}
}

func (g *GoogleCalendar) newService(ctx context.Context, token *oauth2.Token) (*calendar.Service, error) {
	opts := []option.ClientOption{option.WithHTTPClient(g.oauth.Client(ctx, token))}
	if g.endpoint != "" {
		opts = append(opts, option.WithEndpoint(g.endpoint))
	}
	srv, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return srv, nil
}

// FreeBusy returns the busy periods of calendarID inside window.
func (g *GoogleCalendar) FreeBusy(ctx context.Context, token *oauth2.Token, calendarID string, window models.TimeWindow, timeZone string) ([]models.TimeWindow, error) {
	srv, err := g.newService(ctx, token)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin:  window.Start.UTC().Format(time.RFC3339Nano),
		TimeMax:  window.End.UTC().Format(time.RFC3339Nano),
		TimeZone: timeZone,
		Items:    []*calendar.FreeBusyRequestItem{{Id: calendarID}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to query free/busy: %w", err)
	}

	cal, ok := resp.Calendars[calendarID]
	if !ok {
		return nil, fmt.Errorf("calendar %s missing from free/busy response", calendarID)
	}
	if len(cal.Errors) > 0 {
		return nil, fmt.Errorf("free/busy error for calendar %s: %s", calendarID, cal.Errors[0].Reason)
	}

	busy := make([]models.TimeWindow, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, fmt.Errorf("invalid busy start %q: %w", period.Start, err)
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, fmt.Errorf("invalid busy end %q: %w", period.End, err)
		}
		busy = append(busy, models.TimeWindow{Start: start, End: end})
	}
	return busy, nil
}

// InsertEvent creates event on calendarID and returns the provider's event ID.
func (g *GoogleCalendar) InsertEvent(ctx context.Context, token *oauth2.Token, calendarID string, event *calendar.Event) (string, error) {
	srv, err := g.newService(ctx, token)
	if err != nil {
		return "", err
	}

	created, err := srv.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create event: %w", err)
	}
	return created.Id, nil
}
