package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// linePushURL is the LINE Messaging API push endpoint. The relay's outbound
// base URL is fixed, not user-configurable.
const linePushURL = "https://api.line.me/v2/bot/message/push"

// RelayHandler forwards browser-originated push requests to the LINE
// Messaging API so the dashboard never talks to LINE directly.
type RelayHandler struct {
	httpClient *http.Client
	log        *logrus.Logger
	pushURL    string
}

func NewRelay(log *logrus.Logger) *RelayHandler {
	return &RelayHandler{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        log,
		pushURL:    linePushURL,
	}
}

type relayRequest struct {
	Credential  string `json:"credential"`
	Destination string `json:"destination"`
	Text        string `json:"text"`
}

type relayResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type linePushPayload struct {
	To       string        `json:"to"`
	Messages []lineMessage `json:"messages"`
}

type lineMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// HandleRelay accepts {credential, destination, text} and forwards the text
// to LINE as one text message. Failures mirror the upstream status code and
// surface LINE's error message when present.
func (h *RelayHandler) HandleRelay(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	var req relayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond(w, http.StatusBadRequest, relayResponse{Error: "invalid request body"})
		return
	}

	if req.Credential == "" || req.Destination == "" || req.Text == "" {
		h.respond(w, http.StatusBadRequest, relayResponse{Error: "credential, destination and text are required"})
		return
	}

	payload, err := json.Marshal(linePushPayload{
		To:       req.Destination,
		Messages: []lineMessage{{Type: "text", Text: req.Text}},
	})
	if err != nil {
		h.respond(w, http.StatusInternalServerError, relayResponse{Error: "failed to build upstream request"})
		return
	}

	upstream, err := http.NewRequestWithContext(r.Context(), http.MethodPost, h.pushURL, bytes.NewReader(payload))
	if err != nil {
		h.respond(w, http.StatusInternalServerError, relayResponse{Error: "failed to build upstream request"})
		return
	}
	upstream.Header.Set("Content-Type", "application/json")
	upstream.Header.Set("Authorization", "Bearer "+req.Credential)

	resp, err := h.httpClient.Do(upstream)
	if err != nil {
		h.log.Errorf("LINE push request failed: %v", err)
		h.respond(w, http.StatusBadGateway, relayResponse{Error: "failed to reach LINE API"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		message := upstreamError(resp.Body)
		h.log.Warnf("LINE push rejected with status %d: %s", resp.StatusCode, message)
		h.respond(w, resp.StatusCode, relayResponse{Error: message})
		return
	}

	h.respond(w, http.StatusOK, relayResponse{Success: true})
}

// HandlePreflight answers CORS preflight requests with 200.
func (h *RelayHandler) HandlePreflight(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	w.WriteHeader(http.StatusOK)
}

func (h *RelayHandler) respond(w http.ResponseWriter, status int, resp relayResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// upstreamError extracts LINE's error message, falling back to a generic one.
func upstreamError(body io.Reader) string {
	var lineError struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&lineError); err == nil && lineError.Message != "" {
		return lineError.Message
	}
	return "LINE API rejected the message"
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}
