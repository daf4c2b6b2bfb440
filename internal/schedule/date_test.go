package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := ParseDate("2024-03-07")
	require.NoError(t, err)

	assert.Equal(t, 2024, d.Year)
	assert.Equal(t, 3, d.Month)
	assert.Equal(t, 7, d.Day)
	assert.Equal(t, "2024-03-07", d.String())
}

func TestParseDate_RoundTripIndependentOfTimezone(t *testing.T) {
	// Decoding through a UTC instant would land on the previous day in
	// negative-offset zones. The codec must not care what zone it runs in.
	original := time.Local
	defer func() { time.Local = original }()

	for _, name := range []string{"Pacific/Honolulu", "UTC", "Asia/Tokyo"} {
		loc, err := time.LoadLocation(name)
		require.NoError(t, err)
		time.Local = loc

		d, err := ParseDate("2024-03-07")
		require.NoError(t, err, name)
		assert.Equal(t, Date{Year: 2024, Month: 3, Day: 7}, d, name)
	}
}

func TestDateString_ZeroPads(t *testing.T) {
	d := Date{Year: 2024, Month: 1, Day: 5}
	assert.Equal(t, "2024-01-05", d.String())
}

func TestParseDate_Invalid(t *testing.T) {
	cases := []string{
		"",
		"2024-03",
		"2024/03/07",
		"2024-13-01",
		"2024-00-10",
		"2024-02-31",
		"abcd-03-07",
		"2024-03-xx",
	}
	for _, s := range cases {
		_, err := ParseDate(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestDateAt_LocalInstant(t *testing.T) {
	d := Date{Year: 2024, Month: 3, Day: 7}
	got := d.At(9, 30)

	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 7, got.Day())
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, time.Local, got.Location())
}

func TestDateAddDays(t *testing.T) {
	d := Date{Year: 2024, Month: 2, Day: 28}

	assert.Equal(t, Date{Year: 2024, Month: 2, Day: 29}, d.AddDays(1)) // leap year
	assert.Equal(t, Date{Year: 2024, Month: 3, Day: 6}, d.AddDays(7))
	assert.Equal(t, Date{Year: 2024, Month: 2, Day: 27}, d.AddDays(-1))
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, h)
	assert.Equal(t, 30, m)

	h, m, err = ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, 23, h)
	assert.Equal(t, 59, m)

	for _, s := range []string{"", "25:99", "24:00", "12:60", "12", "ab:cd", "12:30:00"} {
		_, _, err := ParseClock(s)
		assert.Error(t, err, "input %q", s)
	}
}
