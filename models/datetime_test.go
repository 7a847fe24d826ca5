package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime_AcceptedLayouts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"local date-time", "2025-09-27T10:00:00", time.Date(2025, 9, 27, 10, 0, 0, 0, time.Local)},
		{"fractional seconds", "2025-09-27T10:00:00.123", time.Date(2025, 9, 27, 10, 0, 0, 123_000_000, time.Local)},
		{"bare date", "2025-09-27", time.Date(2025, 9, 27, 0, 0, 0, 0, time.Local)},
		{"rfc3339", "2025-09-27T10:00:00Z", time.Date(2025, 9, 27, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %v, want %v", got.Time, tt.want)
		})
	}
}

func TestParseDateTime_Invalid(t *testing.T) {
	_, err := ParseDateTime("27/09/2025")
	assert.Error(t, err)
}

func TestDateTime_JSON(t *testing.T) {
	d := NewDateTime(time.Date(2025, 9, 27, 10, 30, 0, 0, time.Local))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-09-27T10:30:00"`, string(b))
	assert.Equal(t, "2025-09-27", d.DateOnly())

	var back DateTime
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, d.Equal(back.Time))
}

func TestDateTime_ZeroAndNull(t *testing.T) {
	b, err := json.Marshal(DateTime{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
	assert.Empty(t, DateTime{}.String())
	assert.Empty(t, DateTime{}.DateOnly())

	for _, raw := range []string{`null`, `""`, `"  "`} {
		var d DateTime
		require.NoError(t, json.Unmarshal([]byte(raw), &d), raw)
		assert.True(t, d.IsZero(), raw)
	}
}

func TestDateTime_UnmarshalRejectsNonString(t *testing.T) {
	var d DateTime
	assert.Error(t, json.Unmarshal([]byte(`12345`), &d))
}
