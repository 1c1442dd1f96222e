package ports

import (
	"context"

	"github.com/rsuth/clisurf/internal/domain"
)

// SwellSource fetches and normalizes a single station reading from url.
type SwellSource interface {
	Fetch(ctx context.Context, url string) (domain.SwellRecord, error)
}
