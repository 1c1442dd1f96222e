// Package swellapi fetches station readings from the swellData HTTP endpoint.
package swellapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/rsuth/clisurf/internal/domain"
	"github.com/rsuth/clisurf/internal/infra/httpclient"
	"github.com/rsuth/clisurf/internal/infra/swelljson"
	"github.com/rsuth/clisurf/internal/ports"
)

const opFetch = "swellapi.fetch"

// Client implements ports.SwellSource with one GET per call and no retries.
type Client struct {
	exec   *httpclient.Executor
	logger *slog.Logger
}

type Option func(*Client)

func WithExecutor(exec *httpclient.Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		exec:   httpclient.NewExecutor(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.SwellSource = (*Client)(nil)

// Fetch requests url and decodes the reading it returns.
func (c *Client) Fetch(ctx context.Context, url string) (domain.SwellRecord, error) {
	req, err := httpclient.BuildGet(ctx, url)
	if err != nil {
		c.logger.Debug("swell.fetch.failed", "url", url, "kind", domain.KindTransport, "err", err)
		return domain.SwellRecord{}, err
	}

	c.logger.Debug("swell.fetch.start", "url", url)

	resp, err := c.exec.Do(ctx, req)
	if err != nil {
		// A non-2xx status outranks a failed body read.
		if resp.Status != 0 {
			if serr := classifyStatus(url, resp.Status); serr != nil {
				c.logger.Debug("swell.fetch.failed", "url", url, "status", resp.Status, "err", serr)
				return domain.SwellRecord{}, serr
			}
		}
		kind, _ := domain.KindOf(err)
		c.logger.Debug("swell.fetch.failed", "url", url, "kind", kind, "duration", resp.Duration, "err", err)
		return domain.SwellRecord{}, err
	}

	c.logger.Debug("swell.fetch.done",
		"url", url,
		"status", resp.Status,
		"content_type", resp.Headers.Get("Content-Type"),
		"duration", resp.Duration,
		"bytes", len(resp.BodyBytes),
	)

	if err := classifyStatus(url, resp.Status); err != nil {
		c.logger.Debug("swell.fetch.failed", "url", url, "status", resp.Status, "err", err)
		return domain.SwellRecord{}, err
	}

	rec, err := swelljson.Parse(resp.BodyBytes)
	if err != nil {
		kind, _ := domain.KindOf(err)
		c.logger.Debug("swell.parse.failed", "url", url, "kind", kind, "err", err)
		return domain.SwellRecord{}, &domain.OpError{
			Op:     opFetch,
			Kind:   kind,
			URL:    url,
			Status: resp.Status,
			Err:    err,
		}
	}

	return rec, nil
}

// classifyStatus maps a non-2xx status onto the error taxonomy.
// 404 is the only status with its own kind.
func classifyStatus(url string, status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return &domain.OpError{
			Op:     opFetch,
			Kind:   domain.KindStationNotFound,
			URL:    url,
			Status: status,
			Err:    domain.ErrStationNotFound,
		}
	default:
		return &domain.OpError{
			Op:     opFetch,
			Kind:   domain.KindTransport,
			URL:    url,
			Status: status,
			Err:    fmt.Errorf("%w: %d %s", domain.ErrUnexpectedStatus, status, http.StatusText(status)),
		}
	}
}
