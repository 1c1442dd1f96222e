package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/rsuth/clisurf/internal/domain"
	"github.com/rsuth/clisurf/internal/ports"
)

var ErrEmptyStation = errors.New("station id is required")

type FetchSwell struct {
	source  ports.SwellSource
	baseURL string
}

func NewFetchSwell(source ports.SwellSource, baseURL string) *FetchSwell {
	return &FetchSwell{
		source:  source,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// StationURL returns <baseURL>/swellData/<stationID>, escaping the id as a path segment.
func (uc *FetchSwell) StationURL(stationID string) string {
	return uc.baseURL + "/swellData/" + url.PathEscape(stationID)
}

// Execute fetches the latest reading for stationID.
func (uc *FetchSwell) Execute(ctx context.Context, stationID string) (domain.SwellRecord, error) {
	stationID = strings.TrimSpace(stationID)
	if stationID == "" {
		return domain.SwellRecord{}, ErrEmptyStation
	}
	return uc.source.Fetch(ctx, uc.StationURL(stationID))
}
