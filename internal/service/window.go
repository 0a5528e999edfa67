package service

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/EpicMandM/calendar-booking/internal/models"
)

const (
	// SlotDuration is the length of every appointment.
	SlotDuration = 30 * time.Minute
	// TimeZone is attached to every free/busy query and event.
	TimeZone = "America/Lima"
)

// Tried in order. Layouts without an offset are read in the service zone.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// LoadZone returns the location for TimeZone.
func LoadZone() (*time.Location, error) {
	loc, err := time.LoadLocation(TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %s: %w", TimeZone, err)
	}
	return loc, nil
}

// ParseStart parses a requested start instant.
func ParseStart(input string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	for _, layout := range dateLayouts {
		if ts, err := time.ParseInLocation(layout, s, loc); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unsupported date format %q", ErrInvalidInput, input)
}

// SlotAt returns the appointment window starting at start.
func SlotAt(start time.Time) models.TimeWindow {
	return models.TimeWindow{Start: start, End: start.Add(SlotDuration)}
}

// ParseSlot parses input and returns the window it opens.
func ParseSlot(input string, loc *time.Location) (models.TimeWindow, error) {
	start, err := ParseStart(input, loc)
	if err != nil {
		return models.TimeWindow{}, err
	}
	return SlotAt(start), nil
}
