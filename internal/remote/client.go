// Package remote delivers submission payloads to the organizer-supplied
// response endpoint. Delivery is best-effort: at most one request is in
// flight per participant and a newer one aborts the older.
package remote

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

type inflight struct {
	cancel context.CancelFunc
}

type Client struct {
	http *resty.Client

	mu       sync.Mutex
	requests map[string]*inflight
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		http:     resty.New().SetTimeout(timeout),
		requests: make(map[string]*inflight),
	}
}

// Post sends payload as JSON to endpoint. A request still pending for the
// same key is cancelled first (last request wins). Any non-2xx status or
// transport error is reported uniformly as a failure.
func (c *Client) Post(ctx context.Context, key, endpoint string, payload any) error {
	ctx, cancel := context.WithCancel(ctx)
	entry := &inflight{cancel: cancel}

	c.mu.Lock()
	if prev, ok := c.requests[key]; ok {
		prev.cancel()
	}
	c.requests[key] = entry
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.requests[key] == entry {
			delete(c.requests, key)
		}
		c.mu.Unlock()
		cancel()
	}()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("send responses: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("send responses: endpoint returned %s", resp.Status())
	}
	return nil
}
