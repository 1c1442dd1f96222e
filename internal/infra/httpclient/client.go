package httpclient

import (
	"net/http"
	"time"
)

type Config struct {
	// Total timeout for the request including the body read.
	// Zero keeps the default transport behaviour.
	Timeout time.Duration

	// UserAgent is sent on every request when non-empty.
	UserAgent string
}

func DefaultConfig() Config {
	return Config{}
}

// New returns a client that leaves connection handling to the default transport.
func New(cfg Config) *http.Client {
	var tr http.RoundTripper = http.DefaultTransport
	if cfg.UserAgent != "" {
		tr = &userAgentTransport{base: tr, ua: cfg.UserAgent}
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}

type userAgentTransport struct {
	base http.RoundTripper
	ua   string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.ua)
	return t.base.RoundTrip(r)
}
