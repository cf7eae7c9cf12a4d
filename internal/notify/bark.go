// Package notify pushes completion notifications through a Bark server.
// Notifications are best-effort: a missing configuration skips them and
// a failed push is logged, never fatal.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// group tags every push so they collapse together in the Bark client.
const group = "txt2epub"

// Bark is a client for one Bark push endpoint.
type Bark struct {
	// BaseURL is the device endpoint, e.g. https://api.day.app/<key>.
	// Empty disables the client.
	BaseURL string

	// HTTPClient overrides the default client; used by tests.
	HTTPClient *http.Client
}

// Enabled reports whether a push endpoint is configured.
func (b *Bark) Enabled() bool {
	return b != nil && b.BaseURL != ""
}

// Push sends one notification. Errors are returned for the caller to
// log; they should never abort a conversion run.
func (b *Bark) Push(ctx context.Context, title, body string) error {
	if !b.Enabled() {
		return nil
	}

	u := fmt.Sprintf("%s/%s/%s?group=%s&sound=healthnotification",
		trimTrailingSlash(b.BaseURL),
		url.PathEscape(title),
		url.PathEscape(body),
		url.QueryEscape(group),
	)

	client := b.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("notify: build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: push: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("notify: push returned status %d", resp.StatusCode)
	}
	log.Debug().Str("title", title).Msg("bark notification sent")
	return nil
}

func trimTrailingSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
