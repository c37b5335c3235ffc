package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	var got sendRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/messages", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := New(srv.URL, "secret", "planner@agency.local")

	err := c.Send(context.Background(), SendInput{
		To:      []string{"team@agency.local"},
		Subject: "2 post(s) due today",
		Text:    "digest body",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "planner@agency.local", got.From)
	assert.Equal(t, []string{"team@agency.local"}, got.To)
	assert.Equal(t, "2 post(s) due today", got.Subject)
}

func TestSendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid recipient"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret", "planner@agency.local")

	err := c.Send(context.Background(), SendInput{To: []string{"bad"}})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "invalid recipient", apiErr.Message)
}
