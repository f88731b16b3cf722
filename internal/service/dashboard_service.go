package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"dashboard-service/internal/cache"
	"dashboard-service/internal/client"
	"dashboard-service/internal/dashboard"
	"dashboard-service/internal/export"
	"dashboard-service/internal/model"
	"dashboard-service/internal/shaper"
)

type DashboardSource interface {
	Dashboard(ctx context.Context, q client.DashboardQuery) (shaper.Payload, error)
}

type DashboardRequest struct {
	Report dashboard.ReportType
	Filter model.DashboardFilter
}

type DashboardService struct {
	source   DashboardSource
	cache    *cache.Cache
	inflight singleflight.Group
	log      zerolog.Logger
}

func NewDashboardService(source DashboardSource, c *cache.Cache, log zerolog.Logger) *DashboardService {
	return &DashboardService{source: source, cache: c, log: log}
}

// Dashboard renders the layout for req. On upstream failure the error-state view is
// returned alongside an ErrUpstream-wrapped error.
func (s *DashboardService) Dashboard(ctx context.Context, principal model.Principal, req DashboardRequest) (*dashboard.View, error) {
	payload, err := s.fetch(ctx, principal, req)
	view := dashboard.Render(req.Report, payload, err)
	if err != nil {
		return &view, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return &view, nil
}

func (s *DashboardService) MaxView(ctx context.Context, principal model.Principal, req DashboardRequest, rawTag string) (*dashboard.MaximizedView, error) {
	tag, err := dashboard.ParseMaxView(rawTag)
	if err != nil {
		return nil, err
	}
	payload, err := s.fetch(ctx, principal, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	mv, err := dashboard.BuildMaxView(tag, payload)
	if err != nil {
		return nil, err
	}
	return &mv, nil
}

// ExportMaxView writes the maximized view's rank table as a spreadsheet and returns its file name.
func (s *DashboardService) ExportMaxView(ctx context.Context, principal model.Principal, req DashboardRequest, rawTag string, w io.Writer) (string, error) {
	mv, err := s.MaxView(ctx, principal, req, rawTag)
	if err != nil {
		return "", err
	}
	if err := export.WriteMaxView(w, *mv); err != nil {
		return "", fmt.Errorf("export %s: %w", mv.Tag, err)
	}
	return export.FileName(string(req.Report), string(mv.Tag)), nil
}

// Invalidate drops every cached payload.
func (s *DashboardService) Invalidate(ctx context.Context) error {
	return s.cache.Bump(ctx)
}

func (s *DashboardService) fetch(ctx context.Context, principal model.Principal, req DashboardRequest) (shaper.Payload, error) {
	filter := req.Filter.Normalize()
	parts := append([]string{principal.OrgKey(), string(req.Report)}, filter.KeyParts()...)

	key, err := s.cache.Key(ctx, parts...)
	if err != nil {
		s.log.Warn().Err(err).Msg("dashboard cache unavailable")
		key = strings.Join(parts, ":")
	}

	ctx = client.WithToken(ctx, principal.Token)
	query := client.DashboardQuery{
		Report: string(req.Report),
		Level:  filter.Level,
		From:   filter.Range.From,
		To:     filter.Range.To,
	}

	// the shared load must outlive any single caller; the client timeout bounds it
	loadCtx := context.WithoutCancel(ctx)
	ch := s.inflight.DoChan(key, func() (interface{}, error) {
		return s.load(loadCtx, key, query)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Shared {
		s.log.Debug().Str("key", key).Msg("dashboard fetch shared with in-flight request")
	}
	if res.Err != nil {
		s.log.Error().Err(res.Err).Str("report", string(req.Report)).Msg("dashboard fetch failed")
		return nil, res.Err
	}
	payload, _ := res.Val.(shaper.Payload)
	return payload, nil
}

// load reads key through the cache. A cache failure never costs a second upstream call
// when the payload was already loaded.
func (s *DashboardService) load(ctx context.Context, key string, query client.DashboardQuery) (shaper.Payload, error) {
	var (
		loaded    shaper.Payload
		called    bool
		sourceErr error
	)
	loader := func(ctx context.Context) (any, error) {
		called = true
		loaded, sourceErr = s.source.Dashboard(ctx, query)
		if sourceErr != nil {
			return nil, sourceErr
		}
		return loaded, nil
	}

	var payload shaper.Payload
	err := s.cache.FetchJSON(ctx, key, &payload, loader)
	switch {
	case err == nil:
		return payload, nil
	case called && sourceErr != nil:
		return nil, sourceErr
	case called:
		s.log.Warn().Err(err).Str("key", key).Msg("dashboard cache write failed")
		return loaded, nil
	default:
		s.log.Warn().Err(err).Str("key", key).Msg("dashboard cache read failed, calling upstream directly")
		return s.source.Dashboard(ctx, query)
	}
}

func IsUnknownMaxView(err error) bool {
	return errors.Is(err, dashboard.ErrUnknownMaxView)
}
