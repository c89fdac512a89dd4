package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// tunnelsResponse is the /api/tunnels payload of the ngrok agent API.
type tunnelsResponse struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

type tunnelProbe struct {
	client   *http.Client
	attempts int
	interval time.Duration
}

func newTunnelProbe() tunnelProbe {
	return tunnelProbe{
		client:   &http.Client{Timeout: 5 * time.Second},
		attempts: 10,
		interval: 3 * time.Second,
	}
}

var errNoTunnels = errors.New("ngrok has no active tunnels")

// publicURL polls the agent API until a tunnel shows up. HTTPS tunnels win.
func (p tunnelProbe) publicURL(ctx context.Context, apiBase string) (string, error) {
	endpoint := strings.TrimRight(apiBase, "/") + "/api/tunnels"

	var lastErr error
	for attempt := 1; attempt <= p.attempts; attempt++ {
		url, err := p.fetch(ctx, endpoint)
		if err == nil {
			return url, nil
		}
		lastErr = err

		if attempt == p.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(p.interval):
		}
	}
	return "", fmt.Errorf("ngrok tunnel lookup failed after %d attempts: %w", p.attempts, lastErr)
}

func (p tunnelProbe) fetch(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create ngrok API request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ngrok API status %d", resp.StatusCode)
	}

	var tunnels tunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("decode ngrok API response: %w", err)
	}

	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", errNoTunnels
}
