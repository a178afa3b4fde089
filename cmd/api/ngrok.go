package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Development-only webhook bootstrap: when no webhook URL is configured, the
// local ngrok agent is polled for a public tunnel to register with Telegram.
const (
	ngrokDetectAttempts = 10
	ngrokDetectInterval = 3 * time.Second
	telegramWebhookPath = "/webhook/telegram"
)

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectWebhookURL queries the ngrok local API and returns the Telegram
// webhook URL on the first tunnel found, preferring HTTPS. It retries to
// handle the ngrok startup race.
func detectWebhookURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	tunnel, err := detectTunnelURL(ctx, ngrokAPIBase)
	if err != nil {
		return "", err
	}
	return tunnel + telegramWebhookPath, nil
}

func detectTunnelURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	url := ngrokAPIBase + "/api/tunnels"
	client := &http.Client{Timeout: 5 * time.Second}

	for attempt := 1; attempt <= ngrokDetectAttempts; attempt++ {
		tunnel, retryable, err := fetchTunnelURL(ctx, client, url)
		if err == nil {
			return tunnel, nil
		}
		if !retryable || attempt == ngrokDetectAttempts {
			return "", fmt.Errorf("ngrok tunnel not available after %d attempts: %w", attempt, err)
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(ngrokDetectInterval):
		}
	}
	return "", fmt.Errorf("ngrok tunnel not available after %d attempts", ngrokDetectAttempts)
}

// fetchTunnelURL does one poll of the ngrok API. Unreachable agent and
// no-tunnels-yet are retryable; a malformed response is not.
func fetchTunnelURL(ctx context.Context, client *http.Client, url string) (tunnel string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("ngrok API not reachable: %w", err)
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", false, fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, false, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, false, nil
	}
	return "", true, fmt.Errorf("ngrok has no active tunnels yet")
}
