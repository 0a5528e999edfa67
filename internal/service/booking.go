package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/EpicMandM/calendar-booking/internal/logger"
	"github.com/EpicMandM/calendar-booking/internal/models"
	"github.com/EpicMandM/calendar-booking/internal/store"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
)

const (
	StatusBooked   = "cita_agendada"
	bookedMessage  = "Cita creada exitosamente."
	summaryDefault = "Cita con %s"
)

// BookingService answers availability queries and books appointments on a
// single calendar. It does not serialize CheckAvailability against
// CreateBooking, so two bookings for the same slot both succeed.
type BookingService struct {
	logger     *logger.Logger
	store      store.CredentialStore
	calendar   CalendarClient
	calendarID string
	loc        *time.Location
}

func NewBookingService(log *logger.Logger, credentials store.CredentialStore, cal CalendarClient, calendarID string) (*BookingService, error) {
	if log == nil {
		log = logger.Discard()
	}
	loc, err := LoadZone()
	if err != nil {
		return nil, err
	}
	return &BookingService{
		logger:     log,
		store:      credentials,
		calendar:   cal,
		calendarID: calendarID,
		loc:        loc,
	}, nil
}

func (s *BookingService) credentials(ctx context.Context) (*oauth2.Token, error) {
	token, err := s.store.Get(ctx)
	if errors.Is(err, store.ErrNoCredentials) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	return token, nil
}

// CheckAvailability reports whether the 30-minute slot starting at date has
// no busy periods on the calendar.
func (s *BookingService) CheckAvailability(ctx context.Context, date string) (bool, error) {
	token, err := s.credentials(ctx)
	if err != nil {
		return false, err
	}

	window, err := ParseSlot(date, s.loc)
	if err != nil {
		return false, err
	}

	busy, err := s.calendar.FreeBusy(ctx, token, s.calendarID, window, TimeZone)
	if err != nil {
		s.logger.Error("Free/busy query failed",
			logger.Action("availability"),
			logger.Window(window.Start, window.End),
			logger.Error(err))
		return false, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	available := len(busy) == 0
	s.logger.Info("Availability checked",
		logger.Action("availability"),
		logger.Calendar(s.calendarID),
		logger.Window(window.Start, window.End),
		logger.Busy(len(busy)),
		logger.F("AVAILABLE", available))
	return available, nil
}

// CreateBooking inserts an appointment event for the slot starting at req.Date.
func (s *BookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	token, err := s.credentials(ctx)
	if err != nil {
		return nil, err
	}

	window, err := ParseSlot(req.Date, s.loc)
	if err != nil {
		return nil, err
	}

	event := s.buildEvent(req, window)
	eventID, err := s.calendar.InsertEvent(ctx, token, s.calendarID, event)
	if err != nil {
		s.logger.Error("Event insert failed",
			logger.Action("book"),
			logger.Window(window.Start, window.End),
			logger.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	s.logger.Info("Appointment booked",
		logger.Action("book"),
		logger.Status(StatusBooked),
		logger.Calendar(s.calendarID),
		logger.EventID(eventID),
		logger.Window(window.Start, window.End))

	return &models.BookingResult{
		Status:  StatusBooked,
		CitaID:  eventID,
		Message: bookedMessage,
	}, nil
}

func (s *BookingService) buildEvent(req models.BookingRequest, window models.TimeWindow) *calendar.Event {
	return &calendar.Event{
		Summary: EventSummary(req),
		Start: &calendar.EventDateTime{
			DateTime: window.Start.In(s.loc).Format(time.RFC3339Nano),
			TimeZone: TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: window.End.In(s.loc).Format(time.RFC3339Nano),
			TimeZone: TimeZone,
		},
	}
}

// EventSummary returns req.Summary, or a title naming the patient when empty.
func EventSummary(req models.BookingRequest) string {
	if req.Summary != "" {
		return req.Summary
	}
	return fmt.Sprintf(summaryDefault, req.PatientName)
}
