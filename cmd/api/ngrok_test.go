package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollNgrok(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tunnels", r.URL.Path)
		if calls.Add(1) == 1 {
			_, _ = w.Write([]byte(`{"tunnels": []}`))
			return
		}
		_, _ = w.Write([]byte(`{"tunnels": [
			{"public_url": "http://abc.ngrok.io", "proto": "http"},
			{"public_url": "https://abc.ngrok.io", "proto": "https"}
		]}`))
	}))
	defer ts.Close()

	url, err := pollNgrok(context.Background(), ts.Client(), ts.URL+"/", 3, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "https://abc.ngrok.io", url)
	assert.EqualValues(t, 2, calls.Load())
}

func TestPollNgrok_GivesUp(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tunnels": []}`))
	}))
	defer ts.Close()

	_, err := pollNgrok(context.Background(), ts.Client(), ts.URL, 2, time.Millisecond)
	assert.ErrorContains(t, err, "no active tunnels")
}

func TestPollNgrok_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pollNgrok(ctx, http.DefaultClient, "http://127.0.0.1:1", 3, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}
