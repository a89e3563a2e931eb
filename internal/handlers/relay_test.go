package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestRelay points the handler at a fake LINE API server.
func newTestRelay(t *testing.T, upstream http.HandlerFunc) (*RelayHandler, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	relay := NewRelay(testLogger())
	relay.pushURL = server.URL
	return relay, server
}

func decodeRelayResponse(t *testing.T, rec *httptest.ResponseRecorder) relayResponse {
	t.Helper()

	var resp relayResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestRelayHandler_HandleRelay(t *testing.T) {
	t.Run("Should forward the message to LINE as a single text unit", func(t *testing.T) {
		var got linePushPayload
		var auth string
		relay, _ := newTestRelay(t, func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		})

		body := `{"credential":"line-token","destination":"group-42","text":"📋 チーム日報"}`
		rec := httptest.NewRecorder()
		relay.HandleRelay(rec, httptest.NewRequest(http.MethodPost, "/api/line/relay", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeRelayResponse(t, rec).Success)

		assert.Equal(t, "Bearer line-token", auth)
		assert.Equal(t, "group-42", got.To)
		require.Len(t, got.Messages, 1)
		assert.Equal(t, "text", got.Messages[0].Type)
		assert.Equal(t, "📋 チーム日報", got.Messages[0].Text)
	})

	t.Run("Should reject incomplete requests without calling LINE", func(t *testing.T) {
		var calls atomic.Int32
		relay, _ := newTestRelay(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		})

		bodies := []string{
			`{"destination":"group-42","text":"hi"}`,
			`{"credential":"line-token","text":"hi"}`,
			`{"credential":"line-token","destination":"group-42"}`,
			`not json`,
		}
		for _, body := range bodies {
			rec := httptest.NewRecorder()
			relay.HandleRelay(rec, httptest.NewRequest(http.MethodPost, "/api/line/relay", strings.NewReader(body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
			assert.NotEmpty(t, decodeRelayResponse(t, rec).Error)
		}
		assert.Zero(t, calls.Load())
	})

	t.Run("Should mirror the upstream status and surface LINE's message", func(t *testing.T) {
		relay, _ := newTestRelay(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Authentication failed"})
		})

		body := `{"credential":"bad-token","destination":"group-42","text":"hi"}`
		rec := httptest.NewRecorder()
		relay.HandleRelay(rec, httptest.NewRequest(http.MethodPost, "/api/line/relay", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authentication failed", decodeRelayResponse(t, rec).Error)
	})

	t.Run("Should fall back to a generic message when LINE's body is opaque", func(t *testing.T) {
		relay, _ := newTestRelay(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte("slow down"))
		})

		body := `{"credential":"line-token","destination":"group-42","text":"hi"}`
		rec := httptest.NewRecorder()
		relay.HandleRelay(rec, httptest.NewRequest(http.MethodPost, "/api/line/relay", strings.NewReader(body)))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "LINE API rejected the message", decodeRelayResponse(t, rec).Error)
	})

	t.Run("Should answer 502 when LINE is unreachable", func(t *testing.T) {
		relay, server := newTestRelay(t, func(w http.ResponseWriter, r *http.Request) {})
		server.Close()

		body := `{"credential":"line-token","destination":"group-42","text":"hi"}`
		rec := httptest.NewRecorder()
		relay.HandleRelay(rec, httptest.NewRequest(http.MethodPost, "/api/line/relay", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "failed to reach LINE API", decodeRelayResponse(t, rec).Error)
	})
}

func TestRelayHandler_HandlePreflight(t *testing.T) {
	relay := NewRelay(testLogger())

	rec := httptest.NewRecorder()
	relay.HandlePreflight(rec, httptest.NewRequest(http.MethodOptions, "/api/line/relay", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}
