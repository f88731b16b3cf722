package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"dashboard-service/internal/shaper"
)

type DashboardQuery struct {
	Report string
	Level  string
	From   time.Time
	To     time.Time
}

type AnalyticsClient struct {
	base
}

func NewAnalyticsClient(baseURL string, timeout time.Duration, log zerolog.Logger) *AnalyticsClient {
	return &AnalyticsClient{base: newBase(baseURL, timeout, log.With().Str("upstream", "analytics").Logger())}
}

// Dashboard fetches the raw payload for a report. An enveloped {"data": ...} body is unwrapped.
func (c *AnalyticsClient) Dashboard(ctx context.Context, q DashboardQuery) (shaper.Payload, error) {
	params := url.Values{}
	if q.Level != "" {
		params.Set("level", q.Level)
	}
	if !q.From.IsZero() {
		params.Set("from", q.From.UTC().Format(time.RFC3339))
	}
	if !q.To.IsZero() {
		params.Set("to", q.To.UTC().Format(time.RFC3339))
	}
	path := "/dashboard/" + url.PathEscape(q.Report)
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var payload shaper.Payload
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}
	return payload.Unwrap(), nil
}
