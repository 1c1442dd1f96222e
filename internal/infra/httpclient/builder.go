package httpclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/rsuth/clisurf/internal/domain"
)

// BuildGet builds a body-less GET request for rawURL.
//
// A URL that cannot be requested at all is reported as a transport failure.
func BuildGet(ctx context.Context, rawURL string) (*http.Request, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindTransport,
			Err:  domain.ErrInvalidURL,
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindTransport,
			URL:  rawURL,
			Err:  err,
		}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindTransport,
			URL:  rawURL,
			Err:  domain.ErrInvalidURL,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindTransport,
			URL:  rawURL,
			Err:  err,
		}
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}
