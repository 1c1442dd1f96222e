// Package swelljson decodes the swellData wire payload into a domain.SwellRecord.
//
// Every numeric field arrives as a string. Structural problems (bad JSON, a
// missing required field, an impossible date) fail the whole record; a single
// unparseable measurement is replaced by its sentinel instead.
package swelljson

import (
	"fmt"
	"math"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"github.com/rsuth/clisurf/internal/domain"
)

const (
	opParse = "swelljson.parse"

	// Single-digit month, day, hour and minute fragments are accepted.
	timestampLayout = "2006-1-2 15:4:05"
)

type rawPayload struct {
	StationID     *string `json:"stationId"`
	Year          *string `json:"year"`
	Month         *string `json:"month"`
	Day           *string `json:"day"`
	Hour          *string `json:"hour"`
	Minute        *string `json:"minute"`
	WaveHeight    *string `json:"waveHeight"`
	WavePeriod    *string `json:"wavePeriod"`
	WaveDirection *string `json:"waveDirection"`
	WaterTemp     *string `json:"waterTemp"`
}

// Parse converts a raw payload into a fully populated SwellRecord.
func Parse(data []byte) (domain.SwellRecord, error) {
	var raw rawPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.SwellRecord{}, &domain.OpError{
			Op:   opParse,
			Kind: domain.KindMalformedPayload,
			Err:  err,
		}
	}

	if err := raw.checkRequired(); err != nil {
		return domain.SwellRecord{}, &domain.OpError{
			Op:   opParse,
			Kind: domain.KindMalformedPayload,
			Err:  err,
		}
	}

	ts, err := composeTimestamp(*raw.Year, *raw.Month, *raw.Day, *raw.Hour, *raw.Minute)
	if err != nil {
		return domain.SwellRecord{}, &domain.OpError{
			Op:   opParse,
			Kind: domain.KindInvalidTimestamp,
			Err:  err,
		}
	}

	return domain.SwellRecord{
		StationID:            *raw.StationID,
		Timestamp:            ts,
		WaveHeightMeters:     parseFloatOr(*raw.WaveHeight, domain.UnavailableHeight),
		WavePeriodSeconds:    parseIntOr(*raw.WavePeriod, domain.UnavailablePeriod),
		WaveDirectionDegrees: parseIntOr(*raw.WaveDirection, domain.UnavailableDirection),
		WaterTempCelsius:     parseOptionalFloat(raw.WaterTemp),
	}, nil
}

func (r rawPayload) checkRequired() error {
	fields := []struct {
		name string
		val  *string
	}{
		{"stationId", r.StationID},
		{"year", r.Year},
		{"month", r.Month},
		{"day", r.Day},
		{"hour", r.Hour},
		{"minute", r.Minute},
		{"waveHeight", r.WaveHeight},
		{"wavePeriod", r.WavePeriod},
		{"waveDirection", r.WaveDirection},
	}
	for _, f := range fields {
		if f.val == nil {
			return fmt.Errorf("%w: %s", domain.ErrMissingField, f.name)
		}
	}
	return nil
}

func composeTimestamp(year, month, day, hour, minute string) (time.Time, error) {
	s := fmt.Sprintf("%s-%s-%s %s:%s:00", year, month, day, hour, minute)
	return time.Parse(timestampLayout, s)
}

// parseFloatOr returns fallback when s is not a finite float.
func parseFloatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// parseIntOr returns fallback when s is not a base-10 integer.
func parseIntOr(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

// parseOptionalFloat maps an absent or unparseable value to nil.
func parseOptionalFloat(s *string) *float64 {
	if s == nil {
		return nil
	}
	v, err := strconv.ParseFloat(*s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
