package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"PT1H", time.Hour},
		{"PT30M", 30 * time.Minute},
		{"PT1.5S", 1500 * time.Millisecond},
		{"P60D", 60 * 24 * time.Hour},
		{"P1W", 7 * 24 * time.Hour},
		{"P1DT2H", 26 * time.Hour},
		{"pt5m", 5 * time.Minute},
		{" PT2H ", 2 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseISODuration(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseISODuration_Invalid(t *testing.T) {
	for _, in := range []string{"", "1H", "P", "PT", "PTH", "P1X", "P1", "PT1.", "ENABLED"} {
		_, err := ParseISODuration(in)
		assert.ErrorIs(t, err, ErrInvalidDuration, "input %q", in)
	}
}

func TestDurationSeconds(t *testing.T) {
	s, ok := DurationSeconds(time.Hour)
	assert.True(t, ok)
	assert.Equal(t, 3600.0, s)

	s, ok = DurationSeconds("P60D")
	assert.True(t, ok)
	assert.Equal(t, 5184000.0, s)

	_, ok = DurationSeconds("not a duration")
	assert.False(t, ok)

	_, ok = DurationSeconds(3600)
	assert.False(t, ok)
}
