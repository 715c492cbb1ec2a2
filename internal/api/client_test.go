package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerdlab/refluxtrack/internal/constants"
	"github.com/gerdlab/refluxtrack/internal/models"
	"github.com/gerdlab/refluxtrack/internal/store"
)

type memStore struct {
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Get(key string) (string, error) {
	val, ok := m.data[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return val, nil
}

func (m *memStore) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(key string) error {
	if _, ok := m.data[key]; !ok {
		return store.ErrNotFound
	}
	delete(m.data, key)
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *memStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	st := newMemStore()
	return New(srv.URL, 5*time.Second, st), st
}

func TestRequestHeaders(t *testing.T) {
	var captured http.Header
	client, st := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		json.NewEncoder(w).Encode(models.Profile{Username: "alex"})
	})
	st.Set(constants.KeyAuthToken, "tok-123")
	st.Set(constants.KeyDeviceID, "device-abc")

	_, err := client.Me(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Token tok-123", captured.Get("Authorization"))
	assert.Equal(t, "device-abc", captured.Get("X-Device-ID"))
	assert.Equal(t, "application/json", captured.Get("Accept"))
	assert.NotEmpty(t, captured.Get("X-Request-ID"))
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	var captured http.Header
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		json.NewEncoder(w).Encode(models.TokenResponse{Token: "fresh"})
	})

	_, err := client.Login(context.Background(), models.Credentials{Username: "alex", Password: "pw"})
	require.NoError(t, err)

	assert.Empty(t, captured.Get("Authorization"))
}

func TestUnauthorizedDeletesTokenAndUnwraps(t *testing.T) {
	client, st := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid token."})
	})
	st.Set(constants.KeyAuthToken, "stale")

	_, err := client.Me(context.Background())
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrUnauthorized)
	_, getErr := st.Get(constants.KeyAuthToken)
	assert.Equal(t, store.ErrNotFound, getErr, "a 401 must clear the stored token")
}

func TestRejectionDetailExtracted(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Age is out of range."})
	})

	_, err := client.Me(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Age is out of range.", apiErr.Error())
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestRejectionWithoutDetailBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Me(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "server returned status 500", apiErr.Error())
}

func TestIsNetworkError(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := New(url, time.Second, newMemStore())
	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))

	rejection := &APIError{StatusCode: 400}
	assert.False(t, IsNetworkError(rejection))
	assert.False(t, IsNetworkError(nil))
}

func TestSubmitHabitLogPayload(t *testing.T) {
	var captured models.HabitLogUpsert
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/habits/log/", r.URL.Path)
		json.NewEncoder(w).Encode(models.HabitLog{ID: 5, TrackerID: captured.TrackerID})
	})

	saved, err := client.SubmitHabitLog(context.Background(), models.HabitLogUpsert{
		TrackerID:       1,
		HabitID:         10,
		Date:            "2026-08-31",
		CompletionLevel: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, saved.ID)
	assert.Equal(t, 10, captured.HabitID)
}

func TestHabitHistoryQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/habits/10/history/", r.URL.Path)
		assert.Equal(t, "30", r.URL.Query().Get("days"))
		json.NewEncoder(w).Encode([]models.HabitLog{{ID: 1}})
	})

	logs, err := client.HabitHistory(context.Background(), 10, 30)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
