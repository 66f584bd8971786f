package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jamaalx/transfabilog-sub001/internal/catalog"
)

func engineCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Definition{
		{Key: "contract", Name: "Employment Contract", Required: true},
		{Key: "id_card", Name: "Identity Card", Required: true, Expires: true, AlertDaysBefore: 90},
		{Key: "driving_license", Name: "Driving License", Required: true, Expires: true, AlertDaysBefore: 90},
	})
	require.NoError(t, err)
	return cat
}

func timePtr(tm time.Time) *time.Time { return &tm }

func TestBuildReportExpiringSoon(t *testing.T) {
	cat := engineCatalog(t)
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.Local)

	docs := []Document{
		{ID: "d1", OwnerID: "e1", DocType: "contract"},
		{ID: "d2", OwnerID: "e1", DocType: "id_card", ExpiryDate: timePtr(date(2026, time.March, 20))},
	}

	report := BuildReport(cat, docs, Profile{}, now)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Valid)
	assert.Equal(t, 1, report.Expiring)
	assert.Equal(t, 0, report.Expired)

	require.Len(t, report.Alerts, 1)
	alert := report.Alerts[0]
	assert.Equal(t, "d2", alert.DocumentID)
	assert.Equal(t, StatusCritical, alert.Status)
	assert.Equal(t, 4, alert.Priority)
	assert.True(t, alert.Urgent)
	require.NotNil(t, alert.DaysUntilExpiry)
	assert.Equal(t, 5, *alert.DaysUntilExpiry)

	require.Len(t, report.Missing, 1)
	assert.Equal(t, "driving_license", report.Missing[0].DocType)
	assert.Equal(t, PriorityHigh, report.Missing[0].Priority)

	// 2 of 3 required types present, rounded.
	assert.Equal(t, 67, report.CompliancePercent)

	status, ok := report.ByType["id_card"]
	require.True(t, ok)
	assert.Equal(t, "d2", status.Document.ID)
	assert.Equal(t, "Identity Card", status.Config.Name)
	assert.Equal(t, StatusCritical, status.AlertStatus.Status)
}

func TestBuildReportExpiredDocument(t *testing.T) {
	cat := engineCatalog(t)
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.Local)

	docs := []Document{
		{ID: "d1", OwnerID: "e1", DocType: "id_card", ExpiryDate: timePtr(date(2026, time.March, 5))},
	}

	report := BuildReport(cat, docs, Profile{}, now)

	assert.Equal(t, 1, report.Expired)
	assert.Equal(t, 0, report.Expiring)
	assert.Equal(t, 0, report.Valid)

	require.Len(t, report.Alerts, 1)
	assert.Equal(t, StatusExpired, report.Alerts[0].Status)
	assert.Equal(t, 5, report.Alerts[0].Priority)
	assert.True(t, report.Alerts[0].Urgent)
	require.NotNil(t, report.Alerts[0].DaysUntilExpiry)
	assert.Equal(t, -10, *report.Alerts[0].DaysUntilExpiry)
}

func TestBuildReportAlertOrdering(t *testing.T) {
	cat, err := catalog.New([]catalog.Definition{
		{Key: "a", Name: "A", Required: true, Expires: true, AlertDaysBefore: 365},
		{Key: "b", Name: "B", Required: true, Expires: true, AlertDaysBefore: 365},
		{Key: "c", Name: "C", Required: true, Expires: true, AlertDaysBefore: 365},
		{Key: "d", Name: "D", Required: true, Expires: true, AlertDaysBefore: 365},
	})
	require.NoError(t, err)
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.Local)

	docs := []Document{
		// warning (60 days), listed first to prove ordering is by priority
		{ID: "warn", DocType: "a", ExpiryDate: timePtr(date(2026, time.May, 14))},
		// expired
		{ID: "gone", DocType: "b", ExpiryDate: timePtr(date(2026, time.February, 1))},
		// two criticals with different day counts, farther one first
		{ID: "crit6", DocType: "c", ExpiryDate: timePtr(date(2026, time.March, 21))},
		{ID: "crit2", DocType: "d", ExpiryDate: timePtr(date(2026, time.March, 17))},
	}

	report := BuildReport(cat, docs, Profile{}, now)

	require.Len(t, report.Alerts, 4)
	ids := []string{}
	for _, a := range report.Alerts {
		ids = append(ids, a.DocumentID)
	}
	// Priority descending, then days ascending within the critical pair.
	assert.Equal(t, []string{"gone", "crit2", "crit6", "warn"}, ids)
}

// A review-due alert carries no day count; the tie-break key treats that as
// 999, so it sorts after any dated alert of equal priority and the feed stays
// ordered across mixed alert kinds.
func TestBuildReportUnknownDateSortsLast(t *testing.T) {
	undated := AlertRecord{DocumentID: "review", Priority: 1}
	dated := AlertRecord{DocumentID: "dated", Priority: 1, DaysUntilExpiry: intPtr(400)}

	assert.Equal(t, 999, alertDaysKey(undated))
	assert.True(t, alertLess(dated, undated))
	assert.False(t, alertLess(undated, dated))

	cat, err := catalog.New([]catalog.Definition{
		{Key: "criminal_record", Name: "Criminal Record Check", Required: true, PeriodicReview: true, ReviewIntervalMonths: 12},
		{Key: "rca_insurance", Name: "Third-Party Liability Insurance", Required: true, Expires: true, AlertDaysBefore: 365},
		{Key: "road_vignette", Name: "Road Vignette", Required: true, Expires: true, AlertDaysBefore: 365},
	})
	require.NoError(t, err)
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.Local)

	docs := []Document{
		// no date on file: review_recommended, priority 1, nil days
		{ID: "review", DocType: "criminal_record"},
		// warning tier, priority 2
		{ID: "warn", DocType: "rca_insurance", ExpiryDate: timePtr(date(2026, time.May, 14))},
		// green but inside the alert window, priority 0
		{ID: "soft", DocType: "road_vignette", ExpiryDate: timePtr(date(2026, time.December, 1))},
	}

	report := BuildReport(cat, docs, Profile{}, now)

	require.Len(t, report.Alerts, 3)
	ids := []string{}
	for _, a := range report.Alerts {
		ids = append(ids, a.DocumentID)
	}
	assert.Equal(t, []string{"warn", "review", "soft"}, ids)
	assert.Nil(t, report.Alerts[1].DaysUntilExpiry)
}

func TestBuildReportSkipsUnknownTypes(t *testing.T) {
	cat := engineCatalog(t)
	now := time.Now()

	docs := []Document{
		{ID: "d1", DocType: "contract"},
		{ID: "d2", DocType: "fax_machine_permit", ExpiryDate: timePtr(now)},
	}

	report := BuildReport(cat, docs, Profile{}, now)

	// Total counts every stored row; the unknown type contributes nothing else.
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Valid)
	assert.Empty(t, report.Alerts)
	assert.NotContains(t, report.ByType, "fax_machine_permit")
}

func TestBuildReportCompliancePercentBounds(t *testing.T) {
	now := time.Now()

	t.Run("nothing on file", func(t *testing.T) {
		report := BuildReport(engineCatalog(t), nil, Profile{}, now)
		assert.Equal(t, 0, report.CompliancePercent)
	})

	t.Run("everything on file", func(t *testing.T) {
		docs := []Document{
			{ID: "d1", DocType: "contract"},
			{ID: "d2", DocType: "id_card"},
			{ID: "d3", DocType: "driving_license"},
		}
		report := BuildReport(engineCatalog(t), docs, Profile{}, now)
		assert.Equal(t, 100, report.CompliancePercent)
	})

	t.Run("no required types means compliant", func(t *testing.T) {
		cat, err := catalog.New([]catalog.Definition{
			{Key: "first_aid", Name: "First Aid Training", Recommended: true, Expires: true},
		})
		require.NoError(t, err)

		report := BuildReport(cat, nil, Profile{}, now)
		assert.Equal(t, 100, report.CompliancePercent)
	})

	t.Run("conditional types stay out of the denominator", func(t *testing.T) {
		cat, err := catalog.New([]catalog.Definition{
			{Key: "license", Name: "License", Required: true, Expires: true},
			{Key: "adr_cert", Name: "ADR Certificate", ConditionalRequired: true, RequiredCondition: catalog.ConditionADR, Expires: true},
		})
		require.NoError(t, err)

		docs := []Document{{ID: "d1", DocType: "license"}}
		report := BuildReport(cat, docs, Profile{HasADR: true}, now)
		assert.Equal(t, 100, report.CompliancePercent)
		// The missing conditional still shows up in the missing list.
		require.Len(t, report.Missing, 1)
		assert.Equal(t, "adr_cert", report.Missing[0].DocType)
	})
}

func TestBuildReportEmptyCatalogAndNoDocuments(t *testing.T) {
	cat, err := catalog.New(nil)
	require.NoError(t, err)

	report := BuildReport(cat, nil, Profile{}, time.Now())

	assert.Equal(t, 0, report.Total)
	assert.Equal(t, 100, report.CompliancePercent)
	assert.Empty(t, report.Missing)
	assert.Empty(t, report.Alerts)
	assert.NotNil(t, report.ByType)
}

// A document inside its alert window but still classifying green must appear
// in the alert feed with priority zero, sorted after everything urgent.
func TestBuildReportThresholdAlertWithoutStatusPriority(t *testing.T) {
	cat, err := catalog.New([]catalog.Definition{
		{Key: "passport", Name: "Passport", Required: true, Expires: true, AlertDaysBefore: 180},
	})
	require.NoError(t, err)
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.Local)

	docs := []Document{
		{ID: "d1", DocType: "passport", ExpiryDate: timePtr(date(2026, time.August, 12))}, // 150 days out
	}

	report := BuildReport(cat, docs, Profile{}, now)

	assert.Equal(t, 1, report.Valid)
	require.Len(t, report.Alerts, 1)
	assert.Equal(t, StatusOK, report.Alerts[0].Status)
	assert.Equal(t, 0, report.Alerts[0].Priority)
	assert.False(t, report.Alerts[0].Urgent)
}
