package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/contract"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/entity"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/service"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const defaultSendLogLimit = 20

// APIHandler serves the notification settings and send endpoints consumed by
// the dashboard.
type APIHandler struct {
	notification contract.NotificationService
	log          *logrus.Logger
}

func NewAPI(notification contract.NotificationService, log *logrus.Logger) *APIHandler {
	return &APIHandler{
		notification: notification,
		log:          log,
	}
}

// Routes assembles the HTTP surface: the LINE relay plus the notification
// API. chi answers 405 for non-matching methods on registered paths.
func Routes(relay *RelayHandler, api *APIHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Post("/api/line/relay", relay.HandleRelay)
	r.Options("/api/line/relay", relay.HandlePreflight)

	r.Route("/api/orgs/{orgID}", func(r chi.Router) {
		r.Get("/notification-settings", api.GetSettings)
		r.Put("/notification-settings", api.SaveSettings)
		r.Post("/notification-test", api.SendTest)
		r.Get("/send-logs", api.ListSendLogs)
	})

	return r
}

type settingsPayload struct {
	Enabled          bool     `json:"enabled"`
	ScheduledTime    string   `json:"scheduledTime"`
	Recipients       []string `json:"recipients"`
	Credential       string   `json:"credential"`
	Destination      string   `json:"destination"`
	LastSentDate     string   `json:"lastSentDate,omitempty"`
	LastSentDateTime string   `json:"lastSentDateTime,omitempty"`
}

func settingsToPayload(s *entity.NotificationSettings) settingsPayload {
	return settingsPayload{
		Enabled:          s.Enabled,
		ScheduledTime:    s.ScheduledTime,
		Recipients:       s.Recipients,
		Credential:       s.Credential,
		Destination:      s.Destination,
		LastSentDate:     s.LastSentDate,
		LastSentDateTime: s.LastSentDateTime,
	}
}

func (h *APIHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	settings, err := h.notification.GetSettings(r.Context(), orgID)
	if err != nil {
		h.log.Errorf("Failed to get settings for org %s: %v", orgID, err)
		h.respondError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	h.respondJSON(w, http.StatusOK, settingsToPayload(settings))
}

func (h *APIHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	var payload settingsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings := &entity.NotificationSettings{
		OrgID:         orgID,
		Enabled:       payload.Enabled,
		ScheduledTime: payload.ScheduledTime,
		Recipients:    payload.Recipients,
		Credential:    payload.Credential,
		Destination:   payload.Destination,
		LastSentDate:  payload.LastSentDate,
	}

	if err := h.notification.SaveSettings(r.Context(), settings); err != nil {
		if errors.Is(err, service.ErrInvalidScheduledTime) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Errorf("Failed to save settings for org %s: %v", orgID, err)
		h.respondError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}

	h.respondJSON(w, http.StatusOK, settingsToPayload(settings))
}

// SendTest triggers an immediate report delivery, bypassing the daily gate.
// Configuration errors come back synchronously as 400 without any network
// attempt; transport failures surface as 502.
func (h *APIHandler) SendTest(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	err := h.notification.SendNow(r.Context(), orgID)
	switch {
	case err == nil:
		h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	case errors.Is(err, service.ErrMissingCredential),
		errors.Is(err, service.ErrMissingDestination),
		errors.Is(err, service.ErrNoRecipients):
		h.respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Errorf("Test send failed for org %s: %v", orgID, err)
		h.respondError(w, http.StatusBadGateway, err.Error())
	}
}

func (h *APIHandler) ListSendLogs(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	logs, err := h.notification.GetSendLogs(r.Context(), orgID, defaultSendLogLimit)
	if err != nil {
		h.log.Errorf("Failed to list send logs for org %s: %v", orgID, err)
		h.respondError(w, http.StatusInternalServerError, "failed to load send logs")
		return
	}
	if logs == nil {
		logs = []*entity.SendLog{}
	}

	h.respondJSON(w, http.StatusOK, logs)
}

func (h *APIHandler) respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *APIHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
