package swelljson

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsuth/clisurf/internal/domain"
)

const samplePayload = `{"stationId":"46225","year":"2023","month":"08","day":"28","hour":"12","minute":"00","waveHeight":"1.5","wavePeriod":"10","waveDirection":"270","waterTemp":"20.0"}`

// payload builds a wire document from samplePayload with some fields replaced.
// A nil value drops the field entirely.
func payload(t *testing.T, overrides map[string]*string) []byte {
	t.Helper()

	fields := []struct{ key, val string }{
		{"stationId", "46225"},
		{"year", "2023"},
		{"month", "08"},
		{"day", "28"},
		{"hour", "12"},
		{"minute", "00"},
		{"waveHeight", "1.5"},
		{"wavePeriod", "10"},
		{"waveDirection", "270"},
		{"waterTemp", "20.0"},
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		val := f.val
		if o, ok := overrides[f.key]; ok {
			if o == nil {
				continue
			}
			val = *o
		}
		parts = append(parts, `"`+f.key+`":"`+val+`"`)
	}
	return []byte("{" + strings.Join(parts, ",") + "}")
}

func str(s string) *string { return &s }

func TestParse_Success(t *testing.T) {
	rec, err := Parse([]byte(samplePayload))
	require.NoError(t, err)

	assert.Equal(t, "46225", rec.StationID)
	assert.Equal(t, time.Date(2023, time.August, 28, 12, 0, 0, 0, time.UTC), rec.Timestamp)
	assert.Equal(t, 1.5, rec.WaveHeightMeters)
	assert.Equal(t, 10, rec.WavePeriodSeconds)
	assert.Equal(t, 270, rec.WaveDirectionDegrees)
	require.NotNil(t, rec.WaterTempCelsius)
	assert.Equal(t, 20.0, *rec.WaterTempCelsius)
}

func TestParse_ExactNumericValues(t *testing.T) {
	data := payload(t, map[string]*string{
		"waveHeight":    str("0.37"),
		"wavePeriod":    str("0"),
		"waveDirection": str("359"),
		"waterTemp":     str("-1.25"),
	})

	rec, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 0.37, rec.WaveHeightMeters)
	assert.Equal(t, 0, rec.WavePeriodSeconds)
	assert.Equal(t, 359, rec.WaveDirectionDegrees)
	require.NotNil(t, rec.WaterTempCelsius)
	assert.Equal(t, -1.25, *rec.WaterTempCelsius)
}

func TestParse_UnparseableMeasurementsUseSentinels(t *testing.T) {
	cases := []struct {
		name  string
		field string
		check func(t *testing.T, rec domain.SwellRecord)
	}{
		{"height", "waveHeight", func(t *testing.T, rec domain.SwellRecord) {
			assert.Equal(t, domain.UnavailableHeight, rec.WaveHeightMeters)
			assert.Equal(t, 10, rec.WavePeriodSeconds)
		}},
		{"period", "wavePeriod", func(t *testing.T, rec domain.SwellRecord) {
			assert.Equal(t, domain.UnavailablePeriod, rec.WavePeriodSeconds)
			assert.Equal(t, 1.5, rec.WaveHeightMeters)
		}},
		{"direction", "waveDirection", func(t *testing.T, rec domain.SwellRecord) {
			assert.Equal(t, domain.UnavailableDirection, rec.WaveDirectionDegrees)
			assert.Equal(t, 10, rec.WavePeriodSeconds)
		}},
	}

	for _, tc := range cases {
		for _, bad := range []string{"invalid", "", "MM", "1.2.3"} {
			t.Run(tc.name+"/"+bad, func(t *testing.T) {
				rec, err := Parse(payload(t, map[string]*string{tc.field: str(bad)}))
				require.NoError(t, err)
				tc.check(t, rec)
			})
		}
	}
}

func TestParse_FractionalPeriodUsesSentinel(t *testing.T) {
	rec, err := Parse(payload(t, map[string]*string{"wavePeriod": str("10.5")}))
	require.NoError(t, err)
	assert.Equal(t, domain.UnavailablePeriod, rec.WavePeriodSeconds)
}

func TestParse_NonFiniteHeightUsesSentinel(t *testing.T) {
	for _, v := range []string{"NaN", "Inf", "-Inf"} {
		rec, err := Parse(payload(t, map[string]*string{"waveHeight": str(v)}))
		require.NoError(t, err)
		assert.Equal(t, domain.UnavailableHeight, rec.WaveHeightMeters, v)
	}
}

func TestParse_WaterTempAbsentOrInvalid(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		rec, err := Parse(payload(t, map[string]*string{"waterTemp": nil}))
		require.NoError(t, err)
		assert.Nil(t, rec.WaterTempCelsius)
	})

	t.Run("invalid", func(t *testing.T) {
		rec, err := Parse(payload(t, map[string]*string{"waterTemp": str("n/a")}))
		require.NoError(t, err)
		assert.Nil(t, rec.WaterTempCelsius)
	})

	t.Run("null", func(t *testing.T) {
		data := strings.Replace(samplePayload, `"waterTemp":"20.0"`, `"waterTemp":null`, 1)
		rec, err := Parse([]byte(data))
		require.NoError(t, err)
		assert.Nil(t, rec.WaterTempCelsius)
	})

	t.Run("zero is a value", func(t *testing.T) {
		rec, err := Parse(payload(t, map[string]*string{"waterTemp": str("0")}))
		require.NoError(t, err)
		require.NotNil(t, rec.WaterTempCelsius)
		assert.Equal(t, 0.0, *rec.WaterTempCelsius)
	})
}

func TestParse_MalformedJSON(t *testing.T) {
	inputs := []string{
		"",
		"not json",
		"{",
		`{"stationId":"46225"`,
		`[]`,
	}
	for _, in := range inputs {
		_, err := Parse([]byte(in))
		require.Error(t, err, in)
		assert.True(t, domain.IsKind(err, domain.KindMalformedPayload), "input %q: %v", in, err)
	}
}

func TestParse_MissingRequiredField(t *testing.T) {
	for _, field := range []string{"stationId", "year", "month", "day", "hour", "minute", "waveHeight", "wavePeriod", "waveDirection"} {
		t.Run(field, func(t *testing.T) {
			_, err := Parse(payload(t, map[string]*string{field: nil}))
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindMalformedPayload))
			assert.True(t, errors.Is(err, domain.ErrMissingField))
			assert.Contains(t, err.Error(), field)
		})
	}
}

func TestParse_WrongFieldType(t *testing.T) {
	data := strings.Replace(samplePayload, `"waveHeight":"1.5"`, `"waveHeight":1.5`, 1)
	_, err := Parse([]byte(data))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindMalformedPayload))
}

func TestParse_InvalidTimestamp(t *testing.T) {
	cases := map[string]string{
		"month":  "13",
		"day":    "32",
		"hour":   "24",
		"minute": "60",
		"year":   "20x3",
	}
	for field, val := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := Parse(payload(t, map[string]*string{field: str(val)}))
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindInvalidTimestamp), "%v", err)
		})
	}
}

func TestParse_InvalidCalendarDay(t *testing.T) {
	_, err := Parse(payload(t, map[string]*string{"month": str("02"), "day": str("30")}))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidTimestamp))
}

func TestParse_SingleDigitDateFragments(t *testing.T) {
	rec, err := Parse(payload(t, map[string]*string{
		"month":  str("8"),
		"day":    str("5"),
		"hour":   str("7"),
		"minute": str("3"),
	}))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.August, 5, 7, 3, 0, 0, time.UTC), rec.Timestamp)
}

func TestParseFloatOr(t *testing.T) {
	assert.Equal(t, 2.25, parseFloatOr("2.25", -1))
	assert.Equal(t, -1.0, parseFloatOr("x", -1))
	assert.Equal(t, 7.0, parseFloatOr("", 7))
}

func TestParseIntOr(t *testing.T) {
	assert.Equal(t, 12, parseIntOr("12", -1))
	assert.Equal(t, -1, parseIntOr("12s", -1))
	assert.Equal(t, 3, parseIntOr(" 1", 3))
}
