package processor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"reception-server/internal/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardMessage_PostsJSONPayload(t *testing.T) {
	var captured map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := New(server.URL, observability.NewLogger())
	err := p.ForwardMessage(context.Background(), "Szeretnék időpontot kérni")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"message": "Szeretnék időpontot kérni"}, captured)
}

func TestForwardMessage_NonSuccessStatusIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer server.Close()

	p := New(server.URL, observability.NewLogger())
	err := p.ForwardMessage(context.Background(), "üzenet")
	assert.True(t, errors.Is(err, ErrForwardFailed))
}

func TestForwardMessage_UnreachableWebhookIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	p := New(server.URL, observability.NewLogger())
	err := p.ForwardMessage(context.Background(), "üzenet")
	assert.True(t, errors.Is(err, ErrForwardFailed))
}

func TestForwardMessage_MissingConfiguration(t *testing.T) {
	p := New("", observability.NewLogger())
	err := p.ForwardMessage(context.Background(), "üzenet")
	assert.True(t, errors.Is(err, ErrWebhookNotConfigured))
}
