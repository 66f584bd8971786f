package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{"expires today", date(2026, time.March, 15), 0},
		{"expired yesterday", date(2026, time.March, 14), -1},
		{"expires tomorrow", date(2026, time.March, 16), 1},
		{"expires in a week", date(2026, time.March, 22), 7},
		{"expired ten days ago", date(2026, time.March, 5), -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysUntil(&tt.expiry, now)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestDaysUntilNilExpiry(t *testing.T) {
	assert.Nil(t, DaysUntil(nil, time.Now()))
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	// 23:59 on the expiry day is still "expires today".
	expiry := time.Date(2026, time.March, 15, 0, 1, 0, 0, time.Local)
	now := time.Date(2026, time.March, 15, 23, 59, 0, 0, time.Local)

	got := DaysUntil(&expiry, now)
	require.NotNil(t, got)
	assert.Equal(t, 0, *got)
}

func TestParseDate(t *testing.T) {
	got := ParseDate("2026-06-01")
	require.NotNil(t, got)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.June, got.Month())

	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("not-a-date"))
	assert.Nil(t, ParseDate("01/06/2026"))
}
