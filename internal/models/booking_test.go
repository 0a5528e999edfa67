package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeWindow_Duration(t *testing.T) {
	start := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	w := TimeWindow{Start: start, End: start.Add(30 * time.Minute)}
	assert.Equal(t, 30*time.Minute, w.Duration())
}

func TestBookingRequest_DecodesCamelCase(t *testing.T) {
	var req BookingRequest
	body := `{"date":"2025-01-15T10:30:00-05:00","patientName":"Jane"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, "2025-01-15T10:30:00-05:00", req.Date)
	assert.Equal(t, "Jane", req.PatientName)
	assert.Empty(t, req.Summary)
}

func TestBookingResult_WireNames(t *testing.T) {
	data, err := json.Marshal(BookingResult{Status: "cita_agendada", CitaID: "evt1", Message: "ok"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"cita_agendada","citaId":"evt1","message":"ok"}`, string(data))
}
