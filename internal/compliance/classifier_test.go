package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jamaalx/transfabilog-sub001/internal/catalog"
)

func intPtr(n int) *int { return &n }

var expiringDef = catalog.Definition{
	Key: "id_card", Name: "Identity Card", Required: true,
	Expires: true, AlertDaysBefore: 60,
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		days         int
		wantStatus   string
		wantPriority int
	}{
		{-1, StatusExpired, 5},
		{0, StatusCritical, 4},
		{7, StatusCritical, 4},
		{8, StatusUrgent, 3},
		{30, StatusUrgent, 3},
		{31, StatusWarning, 2},
		{90, StatusWarning, 2},
		{91, StatusOK, 0},
	}
	for _, tt := range tests {
		got := Classify(intPtr(tt.days), expiringDef)
		assert.Equal(t, tt.wantStatus, got.Status, "days=%d", tt.days)
		assert.Equal(t, tt.wantPriority, got.Priority, "days=%d", tt.days)
	}
}

func TestClassifyNonExpiringTypeIsAlwaysPriorityZero(t *testing.T) {
	def := catalog.Definition{Key: "contract", Name: "Employment Contract", Required: true}

	for _, days := range []*int{nil, intPtr(-100), intPtr(0), intPtr(5), intPtr(400)} {
		got := Classify(days, def)
		assert.Equal(t, StatusNoExpiry, got.Status)
		assert.Equal(t, 0, got.Priority)
		assert.False(t, got.Urgent)
	}
}

func TestClassifyPeriodicReviewWithoutDate(t *testing.T) {
	def := catalog.Definition{
		Key: "criminal_record", Name: "Criminal Record Check",
		Required: true, PeriodicReview: true, ReviewIntervalMonths: 12,
	}

	got := Classify(nil, def)
	assert.Equal(t, StatusReviewRecommended, got.Status)
	assert.Equal(t, "blue", got.Color)
	assert.Equal(t, 1, got.Priority)

	// With a date on file, a periodic-review type classifies like any other.
	assert.Equal(t, StatusCritical, Classify(intPtr(3), def).Status)
}

func TestClassifyUnknownDate(t *testing.T) {
	got := Classify(nil, expiringDef)
	assert.Equal(t, StatusUnknown, got.Status)
	assert.Equal(t, 0, got.Priority)
}

func TestClassifyUrgentFlag(t *testing.T) {
	assert.True(t, Classify(intPtr(-5), expiringDef).Urgent)
	assert.True(t, Classify(intPtr(3), expiringDef).Urgent)
	assert.False(t, Classify(intPtr(20), expiringDef).Urgent)
	assert.False(t, Classify(intPtr(200), expiringDef).Urgent)
}

func TestNeedsAlert(t *testing.T) {
	t.Run("nil days never alerts", func(t *testing.T) {
		assert.False(t, NeedsAlert(expiringDef, nil))
	})

	t.Run("per-type threshold", func(t *testing.T) {
		assert.True(t, NeedsAlert(expiringDef, intPtr(60)))
		assert.True(t, NeedsAlert(expiringDef, intPtr(1)))
		assert.False(t, NeedsAlert(expiringDef, intPtr(61)))
	})

	t.Run("expired always alerts regardless of threshold", func(t *testing.T) {
		noThreshold := catalog.Definition{Key: "x", Expires: true}
		assert.True(t, NeedsAlert(noThreshold, intPtr(-1)))
		assert.True(t, NeedsAlert(noThreshold, intPtr(-365)))
		assert.False(t, NeedsAlert(noThreshold, intPtr(0)))
	})
}

// Classify and NeedsAlert are separate concerns: a type with a generous
// alert threshold can need an alert while still classifying green.
func TestClassifyAndNeedsAlertAreDecoupled(t *testing.T) {
	def := catalog.Definition{Key: "passport", Expires: true, AlertDaysBefore: 180}

	days := intPtr(150)
	assert.Equal(t, StatusOK, Classify(days, def).Status)
	assert.True(t, NeedsAlert(def, days))
}
