package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rsuth/clisurf/internal/domain"
)

const defaultMaxBodyBytes = 1 << 20 // 1MB

// ResponseData captures the response details and duration.
type ResponseData struct {
	Status    int
	Headers   http.Header
	BodyBytes []byte
	Duration  time.Duration
}

// Executor performs a single request and reads its body.
type Executor struct {
	client       *http.Client
	maxBodyBytes int64
}

// ExecutorOption allows configuring an Executor.
type ExecutorOption func(*Executor)

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) ExecutorOption {
	return func(e *Executor) {
		if client != nil {
			e.client = client
		}
	}
}

// WithMaxBodyBytes caps how much of the body is read.
func WithMaxBodyBytes(n int64) ExecutorOption {
	return func(e *Executor) {
		if n > 0 {
			e.maxBodyBytes = n
		}
	}
}

// NewExecutor builds an Executor with a default client.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		client:       New(DefaultConfig()),
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Do executes req once. A failure before headers arrive is KindTransport;
// a failure while reading the body, including one over the size cap, is KindIO.
// Status codes are not judged here.
func (e *Executor) Do(ctx context.Context, req *http.Request) (ResponseData, error) {
	start := time.Now()

	resp, err := e.client.Do(req.WithContext(ctx))
	if err != nil {
		return ResponseData{Duration: time.Since(start)}, &domain.OpError{
			Op:   "httpclient.do",
			Kind: domain.KindTransport,
			URL:  req.URL.String(),
			Err:  err,
		}
	}
	defer resp.Body.Close()

	body, err := readBounded(resp.Body, e.maxBodyBytes)
	duration := time.Since(start)
	if err != nil {
		return ResponseData{Status: resp.StatusCode, Headers: resp.Header.Clone(), Duration: duration}, &domain.OpError{
			Op:     "httpclient.read",
			Kind:   domain.KindIO,
			URL:    req.URL.String(),
			Status: resp.StatusCode,
			Err:    err,
		}
	}

	return ResponseData{
		Status:    resp.StatusCode,
		Headers:   resp.Header.Clone(),
		BodyBytes: body,
		Duration:  duration,
	}, nil
}

func readBounded(r io.Reader, maxBytes int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", domain.ErrBodyTooLarge, maxBytes)
	}
	return b, nil
}
