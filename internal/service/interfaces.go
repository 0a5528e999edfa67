package service

import (
	"context"

	"github.com/EpicMandM/calendar-booking/internal/models"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
)

// CalendarClient abstracts Google Calendar operations for testability.
type CalendarClient interface {
	FreeBusy(ctx context.Context, token *oauth2.Token, calendarID string, window models.TimeWindow, timeZone string) ([]models.TimeWindow, error)
	InsertEvent(ctx context.Context, token *oauth2.Token, calendarID string, event *calendar.Event) (string, error)
}

// Authorizer abstracts the OAuth handshake for testability.
type Authorizer interface {
	AuthCodeURL() string
	CompleteAuthorization(ctx context.Context, code string) error
}

// Booker abstracts availability checks and booking for testability.
type Booker interface {
	CheckAvailability(ctx context.Context, date string) (bool, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error)
}
