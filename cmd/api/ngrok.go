package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	ngrokAttempts      = 10
	ngrokRetryInterval = 3 * time.Second
	ngrokClientTimeout = 5 * time.Second
)

type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL asks the ngrok agent API for a public tunnel URL, waiting
// for the agent while it starts.
func detectNgrokURL(ctx context.Context, apiBase string) (string, error) {
	return pollNgrok(ctx, &http.Client{Timeout: ngrokClientTimeout}, apiBase, ngrokAttempts, ngrokRetryInterval)
}

func pollNgrok(ctx context.Context, client *http.Client, apiBase string, attempts int, interval time.Duration) (string, error) {
	endpoint := strings.TrimRight(apiBase, "/") + "/api/tunnels"

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		publicURL, err := fetchTunnel(ctx, client, endpoint)
		if err == nil {
			return publicURL, nil
		}
		lastErr = err

		if attempt < attempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(interval):
			}
		}
	}

	return "", fmt.Errorf("no ngrok tunnel after %d attempts: %w", attempts, lastErr)
}

func fetchTunnel(ctx context.Context, client *http.Client, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ngrok API not reachable: %w", err)
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("decode ngrok API response: %w", err)
	}

	// Prefer HTTPS tunnels
	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", fmt.Errorf("ngrok has no active tunnels")
}
