package tarot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsAppOutboundSend(t *testing.T) {
	t.Parallel()

	var gotPath, gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	out := NewWhatsAppOutbound(srv.URL, "12345", "tok")
	err := out.Send(context.Background(), "5511999", "hello")
	require.NoError(t, err)

	assert.Equal(t, "/12345/messages", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "whatsapp", gotBody["messaging_product"])
	assert.Equal(t, "5511999", gotBody["to"])
	assert.Equal(t, map[string]any{"body": "hello"}, gotBody["text"])
}

func TestWhatsAppOutboundSendErrorIncludesBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"bad token"}`))
	}))
	t.Cleanup(srv.Close)

	out := NewWhatsAppOutbound(srv.URL, "12345", "tok")
	err := out.Send(context.Background(), "5511999", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad token")
}
