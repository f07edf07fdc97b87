package planner

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := map[string]Clock{
		"00:00": 0,
		"09:30": 570,
		"17:00": 1020,
		"24:00": EndOfDay,
	}
	for in, want := range cases {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, in, got.String())
	}
}

func TestParseClock_Rejects(t *testing.T) {
	for _, in := range []string{"", "9:00", "09:60", "25:00", "24:01", "ab:cd", "09-00", "+9:00", "09:00:00"} {
		_, err := ParseClock(in)
		assert.Error(t, err, in)
	}
}

func TestClock_On(t *testing.T) {
	loc := time.FixedZone("X", 3*3600)
	day := time.Date(2026, 5, 4, 22, 10, 0, 0, loc)

	got := MustClock("09:15").On(day)
	assert.Equal(t, time.Date(2026, 5, 4, 9, 15, 0, 0, loc), got)
	assert.Equal(t, MustClock("22:10"), ClockOf(day))
}

func TestClock_JSON(t *testing.T) {
	b, err := json.Marshal(MustClock("13:05"))
	require.NoError(t, err)
	assert.JSONEq(t, `"13:05"`, string(b))

	var c Clock
	require.NoError(t, json.Unmarshal([]byte(`"07:45"`), &c))
	assert.Equal(t, MustClock("07:45"), c)
	assert.Error(t, json.Unmarshal([]byte(`"7:45"`), &c))
}
