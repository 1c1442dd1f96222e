package domain

import "math"

const feetPerMeter = 3.28084

var cardinalPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Units selects how measurements are presented.
type Units string

const (
	UnitsImperial Units = "imperial"
	UnitsMetric   Units = "metric"
)

func MetersToFeet(m float64) float64 {
	return m * feetPerMeter
}

func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// DegreesToCardinal buckets a bearing into one of 8 compass points.
// Buckets are 45° wide and centered on each point, so 0°±22.5° is N.
func DegreesToCardinal(deg int) string {
	idx := int(math.Floor((float64(deg)+22.5)/45)) % 8
	if idx < 0 {
		idx += 8
	}
	return cardinalPoints[idx]
}
