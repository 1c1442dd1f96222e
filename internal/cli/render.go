package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"

	"github.com/rsuth/clisurf/internal/domain"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"

	placeholder = "--"

	timestampLayout = "2006-01-02T15:04:05"
)

type fieldSelection struct {
	Height    bool
	Period    bool
	Direction bool
	Temp      bool
}

// all reports whether nothing was selected, which means show everything.
func (s fieldSelection) all() bool {
	return !(s.Height || s.Period || s.Direction || s.Temp)
}

type renderOptions struct {
	Fields fieldSelection
	Units  domain.Units
	Format string
}

func validateFormat(format string) error {
	switch format {
	case formatPretty, formatJSON, "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printRecord(w io.Writer, rec domain.SwellRecord, opts renderOptions) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	switch opts.Format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toJSON(rec))
	default:
		_, err := io.WriteString(w, formatPrettyRecord(lipgloss.NewRenderer(w), rec, opts)+"\n")
		return err
	}
}

func formatPrettyRecord(r *lipgloss.Renderer, rec domain.SwellRecord, opts renderOptions) string {
	label := r.NewStyle().Bold(true)
	missing := r.NewStyle().Faint(true)

	metric := opts.Units == domain.UnitsMetric
	all := opts.Fields.all()

	var lines []string
	line := func(name, value string, ok bool) {
		if !ok {
			value = missing.Render(placeholder)
		}
		lines = append(lines, label.Render(name+":")+" "+value)
	}

	if all || opts.Fields.Height {
		line("Height", formatHeight(rec.WaveHeightMeters, metric), rec.HasWaveHeight())
	}
	if all || opts.Fields.Period {
		line("Period", fmt.Sprintf("%ds", rec.WavePeriodSeconds), rec.HasWavePeriod())
	}
	if all || opts.Fields.Direction {
		line("Direction", fmt.Sprintf("%d° %s", rec.WaveDirectionDegrees, domain.DegreesToCardinal(rec.WaveDirectionDegrees)), rec.HasWaveDirection())
	}
	if all || opts.Fields.Temp {
		var temp string
		if rec.HasWaterTemp() {
			temp = formatTemp(*rec.WaterTempCelsius, metric)
		}
		line("Temp", temp, rec.HasWaterTemp())
	}

	return strings.Join(lines, "\n")
}

func formatHeight(meters float64, metric bool) string {
	if metric {
		return fmt.Sprintf("%.1f m", meters)
	}
	return fmt.Sprintf("%.1f ft", domain.MetersToFeet(meters))
}

func formatTemp(celsius float64, metric bool) string {
	if metric {
		return fmt.Sprintf("%.1f°C", celsius)
	}
	return fmt.Sprintf("%.1f°F", domain.CelsiusToFahrenheit(celsius))
}

// recordJSON is the --format json shape. Unavailable values are null.
type recordJSON struct {
	StationID             string   `json:"stationId"`
	Timestamp             string   `json:"timestamp"`
	WaveHeightMeters      *float64 `json:"waveHeightMeters"`
	WavePeriodSeconds     *int     `json:"wavePeriodSeconds"`
	WaveDirectionDegrees  *int     `json:"waveDirectionDegrees"`
	WaveDirectionCardinal *string  `json:"waveDirectionCardinal"`
	WaterTempCelsius      *float64 `json:"waterTempCelsius"`
}

func toJSON(rec domain.SwellRecord) recordJSON {
	out := recordJSON{
		StationID:        rec.StationID,
		Timestamp:        rec.Timestamp.Format(timestampLayout),
		WaterTempCelsius: rec.WaterTempCelsius,
	}
	if rec.HasWaveHeight() {
		h := rec.WaveHeightMeters
		out.WaveHeightMeters = &h
	}
	if rec.HasWavePeriod() {
		p := rec.WavePeriodSeconds
		out.WavePeriodSeconds = &p
	}
	if rec.HasWaveDirection() {
		d := rec.WaveDirectionDegrees
		c := domain.DegreesToCardinal(d)
		out.WaveDirectionDegrees = &d
		out.WaveDirectionCardinal = &c
	}
	return out
}
