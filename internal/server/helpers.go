package server

import (
	"context"
	"net/http"
	"time"

	"github.com/coder/quartz"
)

// WaitForHealthy polls baseURL+"/health" every interval until it answers
// 200 OK or ctx is done.
func WaitForHealthy(ctx context.Context, clock quartz.Clock, baseURL string, interval time.Duration) error {
	client := &http.Client{Timeout: time.Second}
	healthy := func() bool {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", nil)
		if err != nil {
			return false
		}
		resp, err := client.Do(req)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}

	if healthy() {
		return nil
	}

	ticker := clock.NewTicker(interval, "server", "health")
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if healthy() {
				return nil
			}
		}
	}
}
