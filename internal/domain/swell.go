package domain

import "time"

// Sentinels reported by measurements that were missing or unparseable upstream.
const (
	UnavailableHeight    float64 = -1.0
	UnavailablePeriod    int     = -1
	UnavailableDirection int     = -1
)

// SwellRecord is a single normalized buoy reading.
//
// Height, period and direction self-report unavailability through a negative
// sentinel. Water temperature uses nil instead, since 0 is a legitimate value.
type SwellRecord struct {
	StationID string

	// Timestamp carries no zone information; it is stored as UTC wall time.
	Timestamp time.Time

	WaveHeightMeters     float64
	WavePeriodSeconds    int
	WaveDirectionDegrees int
	WaterTempCelsius     *float64
}

func (r SwellRecord) HasWaveHeight() bool    { return r.WaveHeightMeters >= 0 }
func (r SwellRecord) HasWavePeriod() bool    { return r.WavePeriodSeconds >= 0 }
func (r SwellRecord) HasWaveDirection() bool { return r.WaveDirectionDegrees >= 0 }
func (r SwellRecord) HasWaterTemp() bool     { return r.WaterTempCelsius != nil }
