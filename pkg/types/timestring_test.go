package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)
	assert.Equal(t, "10:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("10:30:00")
	assert.Error(t, err)
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("10:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	_, err = TimeString("garbage").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddHours(t *testing.T) {
	tests := []struct {
		name  string
		start TimeString
		hours int
		want  string
	}{
		{"same day", "09:00", 4, "13:00"},
		{"wraps past midnight", "22:00", 4, "02:00"},
		{"negative wraps back", "01:00", -2, "23:00"},
		{"full day is identity", "10:00", 24, "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddHours(tt.hours)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:30"))
	assert.False(t, TimeString("bad").IsBefore("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит с секундами
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, "10:00", ts.String())

	require.NoError(t, ts.Scan([]byte("13:30")))
	assert.Equal(t, "13:30", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, time.June, 1, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, "09:15", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.Equal(t, "", ts.String())

	assert.Error(t, ts.Scan(42))
}
