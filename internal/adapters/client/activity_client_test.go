package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetActivity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/activity", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"activity":"Learn Go","type":"education","participants":1,"price":0.1,"link":"","key":"42","accessibility":0.5,"extra":true}`))
	}))
	defer srv.Close()

	activity, err := NewActivityClient(srv.URL, "/api/activity").GetActivity()
	require.NoError(t, err)
	assert.Equal(t, "Learn Go", activity.Activity)
	assert.Equal(t, 1, activity.Participants)
	assert.Equal(t, 0.5, activity.Accessibility)
}

func TestGetActivityFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewActivityClient(srv.URL, "/").GetActivity()
	assert.Error(t, err)

	srv.Close()
	_, err = NewActivityClient(srv.URL, "/").GetActivity()
	assert.Error(t, err)
}
