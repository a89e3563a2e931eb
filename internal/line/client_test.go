package line

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("Should post the message to the relay and succeed", func(t *testing.T) {
		var got relayRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			json.NewEncoder(w).Encode(relayResponse{Success: true})
		}))
		defer server.Close()

		client := New(server.URL)
		err := client.Send(ctx, "line-token", "group-42", "📋 チーム日報")
		require.NoError(t, err)

		assert.Equal(t, "line-token", got.Credential)
		assert.Equal(t, "group-42", got.Destination)
		assert.Equal(t, "📋 チーム日報", got.Text)
	})

	t.Run("Should validate inputs before any network call", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer server.Close()

		client := New(server.URL)

		err := client.Send(ctx, "", "group-42", "text")
		assert.ErrorIs(t, err, ErrMissingCredential)

		err = client.Send(ctx, "line-token", "", "text")
		assert.ErrorIs(t, err, ErrMissingDestination)

		err = client.Send(ctx, "line-token", "group-42", "")
		assert.ErrorIs(t, err, ErrEmptyText)

		assert.Zero(t, calls.Load())
	})

	t.Run("Should surface the relay error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(relayResponse{Error: "The request body has 1 error(s)"})
		}))
		defer server.Close()

		client := New(server.URL)
		err := client.Send(ctx, "line-token", "group-42", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "The request body has 1 error(s)")
	})

	t.Run("Should report the status code when the relay body is not JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
		}))
		defer server.Close()

		client := New(server.URL)
		err := client.Send(ctx, "line-token", "group-42", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "relay returned status 500")
	})

	t.Run("Should fail when the relay is unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := New(server.URL)
		err := client.Send(ctx, "line-token", "group-42", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to reach relay")
	})

	t.Run("Should fail when the relay answers 200 without success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(relayResponse{Success: false, Error: "invalid credential"})
		}))
		defer server.Close()

		client := New(server.URL)
		err := client.Send(ctx, "line-token", "group-42", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid credential")
	})
}
