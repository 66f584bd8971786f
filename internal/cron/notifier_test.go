package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	exists bool
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*bool)) = r.exists
	return nil
}

type fakeQuerier struct{ row fakeRow }

func (q fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return q.row
}

func TestNotifiedToday(t *testing.T) {
	now := time.Now()

	notified, err := notifiedToday(context.Background(), fakeQuerier{fakeRow{exists: true}}, "u1", "d1", now)
	require.NoError(t, err)
	assert.True(t, notified)

	notified, err = notifiedToday(context.Background(), fakeQuerier{fakeRow{exists: false}}, "u1", "d1", now)
	require.NoError(t, err)
	assert.False(t, notified)
}

// A failed dedup check must surface as an error, not read as "not yet
// notified": the caller skips the insert so a flaky connection cannot
// double-send a day's notifications.
func TestNotifiedTodaySurfacesQueryErrors(t *testing.T) {
	boom := errors.New("connection reset")

	notified, err := notifiedToday(context.Background(), fakeQuerier{fakeRow{err: boom}}, "u1", "d1", time.Now())
	assert.ErrorIs(t, err, boom)
	assert.False(t, notified)
}
