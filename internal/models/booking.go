package models

import "time"

// TimeWindow is a half-open interval [Start, End).
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns End - Start.
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// BookingRequest is the body accepted by POST /book.
type BookingRequest struct {
	Summary     string `json:"summary,omitempty"`
	Date        string `json:"date"`
	PatientName string `json:"patientName"`
}

// BookingResult is returned verbatim to the caller after a successful insert.
type BookingResult struct {
	Status  string `json:"status"`
	CitaID  string `json:"citaId"`
	Message string `json:"message"`
}

// AvailabilityResponse is returned by GET /availability.
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// ErrorResponse is the JSON body for failed API calls.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
