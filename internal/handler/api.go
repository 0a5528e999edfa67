package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/EpicMandM/calendar-booking/internal/logger"
	"github.com/EpicMandM/calendar-booking/internal/models"
	"github.com/EpicMandM/calendar-booking/internal/service"
)

const (
	maxBodyBytes = 1 << 20

	msgHealthy           = "¡Servidor funcionando! 🎉"
	msgAuthCompleted     = "Autenticación completada. Puedes cerrar esta ventana."
	msgAuthFailed        = "No se pudo completar la autenticación con Google."
	msgUnauthenticated   = "No autenticado con Google"
	msgInvalidDate       = "Fecha inválida. Use un formato ISO 8601, por ejemplo 2025-03-10T10:00:00-05:00."
	msgInvalidBody       = "Cuerpo de la solicitud inválido. Envíe un JSON con date y patientName."
	msgAvailabilityError = "No se pudo consultar la disponibilidad."
	msgBookingError      = "No se pudo agendar la cita."
	msgInternalError     = "Error interno del servidor."
)

type APIHandler struct {
	auth    service.Authorizer
	booking service.Booker
	logger  *logger.Logger
}

func NewAPIHandler(auth service.Authorizer, booking service.Booker, log *logger.Logger) *APIHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &APIHandler{
		auth:    auth,
		booking: booking,
		logger:  log,
	}
}

// Routes returns the HTTP surface wrapped in request logging.
func (h *APIHandler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Health)
	mux.HandleFunc("GET /auth", h.BeginAuth)
	mux.HandleFunc("GET /oauth2callback", h.OAuthCallback)
	mux.HandleFunc("GET /availability", h.Availability)
	mux.HandleFunc("POST /book", h.Book)
	return h.withRequestLogging(mux)
}

// Health handles GET /
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeText(w, http.StatusOK, msgHealthy)
}

// BeginAuth handles GET /auth
func (h *APIHandler) BeginAuth(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.auth.AuthCodeURL(), http.StatusFound)
}

// OAuthCallback handles GET /oauth2callback
func (h *APIHandler) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if err := h.auth.CompleteAuthorization(r.Context(), code); err != nil {
		h.logger.Error("OAuth callback failed", logger.Action("oauth_callback"), logger.Error(err))
		if errors.Is(err, service.ErrUpstreamAuth) {
			h.writeText(w, http.StatusBadGateway, msgAuthFailed)
			return
		}
		h.writeText(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	h.writeText(w, http.StatusOK, msgAuthCompleted)
}

// Availability handles GET /availability?date=...
func (h *APIHandler) Availability(w http.ResponseWriter, r *http.Request) {
	available, err := h.booking.CheckAvailability(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.writeServiceError(w, err, "availability", msgInvalidDate, msgAvailabilityError)
		return
	}
	h.writeJSON(w, http.StatusOK, models.AvailabilityResponse{Available: available})
}

// Book handles POST /book
func (h *APIHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() {
		if cerr := r.Body.Close(); cerr != nil {
			h.logger.Warn("Failed to close request body", logger.Error(cerr))
		}
	}()
	invalidMsg := msgInvalidDate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// An unreadable body leaves req empty; the service still reports
		// 401 before it looks at the date.
		h.logger.Warn("Invalid booking body", logger.Action("book"), logger.Error(err))
		req = models.BookingRequest{}
		invalidMsg = msgInvalidBody
	}

	result, err := h.booking.CreateBooking(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err, "book", invalidMsg, msgBookingError)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *APIHandler) writeServiceError(w http.ResponseWriter, err error, action, invalidMsg, upstreamMsg string) {
	status, msg := http.StatusInternalServerError, upstreamMsg
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		status, msg = http.StatusUnauthorized, msgUnauthenticated
	case errors.Is(err, service.ErrInvalidInput):
		status, msg = http.StatusBadRequest, invalidMsg
	case !errors.Is(err, service.ErrUpstream):
		msg = msgInternalError
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed", logger.Action(action), logger.StatusCode(status), logger.Error(err))
	} else {
		h.logger.Warn("Request rejected", logger.Action(action), logger.StatusCode(status), logger.Reason(err.Error()))
	}
	h.writeJSON(w, status, models.ErrorResponse{Status: "error", Message: msg})
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Error encoding JSON", logger.Error(err))
	}
}

func (h *APIHandler) writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(msg)); err != nil {
		h.logger.Error("Failed to write response", logger.Error(err))
	}
}
