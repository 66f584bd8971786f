package compliance

import (
	"math"
	"sort"
	"time"

	"github.com/Jamaalx/transfabilog-sub001/internal/catalog"
)

// Document is the engine's read-only snapshot of a stored document. The
// persistence layer owns the real rows; handlers convert them to this shape
// before calling the engine.
type Document struct {
	ID         string     `json:"id"`
	OwnerID    string     `json:"ownerId"`
	DocType    string     `json:"docType"`
	DocNumber  string     `json:"docNumber,omitempty"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
}

// AlertRecord is a derived, transient notice that a document warrants
// attention. Never persisted.
type AlertRecord struct {
	DocumentID      string     `json:"documentId"`
	DocType         string     `json:"docType"`
	Name            string     `json:"name"`
	ExpiryDate      *time.Time `json:"expiryDate,omitempty"`
	DaysUntilExpiry *int       `json:"daysUntilExpiry,omitempty"`
	Color           string     `json:"color"`
	Status          string     `json:"status"`
	Label           string     `json:"label"`
	Priority        int        `json:"priority"`
	Urgent          bool       `json:"urgent,omitempty"`
}

// TypeStatus pairs a stored document with its catalog definition and
// computed expiry state, keyed by docType in the report.
type TypeStatus struct {
	Document        Document           `json:"document"`
	Config          catalog.Definition `json:"config"`
	DaysUntilExpiry *int               `json:"daysUntilExpiry,omitempty"`
	AlertStatus     AlertStatus        `json:"alertStatus"`
}

// Report is the aggregate compliance picture for one driver or vehicle.
type Report struct {
	Total             int                   `json:"total"`
	Valid             int                   `json:"valid"`
	Expiring          int                   `json:"expiring"`
	Expired           int                   `json:"expired"`
	Missing           []MissingItem         `json:"missing"`
	Alerts            []AlertRecord         `json:"alerts"`
	ByType            map[string]TypeStatus `json:"byType"`
	CompliancePercent int                   `json:"compliancePercent"`
}

// BuildReport computes the full compliance report for one entity. Documents
// whose type is not in the catalog are skipped silently: stored rows may
// reference retired types, and catalog drift must never break the report.
func BuildReport(cat *catalog.Catalog, documents []Document, profile Profile, now time.Time) Report {
	report := Report{
		Total:   len(documents),
		Missing: []MissingItem{},
		Alerts:  []AlertRecord{},
		ByType:  make(map[string]TypeStatus),
	}

	present := make(map[string]bool, len(documents))

	for _, doc := range documents {
		def, ok := cat.Lookup(doc.DocType)
		if !ok {
			continue
		}
		present[doc.DocType] = true

		days := DaysUntil(doc.ExpiryDate, now)
		status := Classify(days, def)

		switch status.Status {
		case StatusExpired:
			report.Expired++
		case StatusCritical, StatusUrgent, StatusWarning:
			report.Expiring++
		default:
			report.Valid++
		}

		report.ByType[doc.DocType] = TypeStatus{
			Document:        doc,
			Config:          def,
			DaysUntilExpiry: days,
			AlertStatus:     status,
		}

		if status.Priority > 0 || NeedsAlert(def, days) {
			report.Alerts = append(report.Alerts, AlertRecord{
				DocumentID:      doc.ID,
				DocType:         doc.DocType,
				Name:            def.Name,
				ExpiryDate:      doc.ExpiryDate,
				DaysUntilExpiry: days,
				Color:           status.Color,
				Status:          status.Status,
				Label:           status.Label,
				Priority:        status.Priority,
				Urgent:          status.Urgent,
			})
		}
	}

	report.Missing = ResolveMissing(cat, present, profile)

	sort.SliceStable(report.Alerts, func(i, j int) bool {
		return alertLess(report.Alerts[i], report.Alerts[j])
	})

	report.CompliancePercent = compliancePercent(cat, present)
	return report
}

// alertLess is the total order for the alert feed: priority descending, ties
// broken by days-until-expiry ascending. A missing day-count sorts last.
func alertLess(a, b AlertRecord) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	return alertDaysKey(a) < alertDaysKey(b)
}

// alertDaysKey returns the tie-break key for an alert: its day-count, or 999
// when no expiry date is known.
func alertDaysKey(a AlertRecord) int {
	if a.DaysUntilExpiry == nil {
		return 999
	}
	return *a.DaysUntilExpiry
}

// compliancePercent is the share of unconditionally required catalog types
// present on file, rounded to the nearest integer. A catalog with zero
// required types yields 100: with nothing demanded, the entity is compliant.
func compliancePercent(cat *catalog.Catalog, present map[string]bool) int {
	requiredTotal := cat.RequiredCount()
	if requiredTotal == 0 {
		return 100
	}

	have := 0
	for _, def := range cat.List() {
		if def.Required && present[def.Key] {
			have++
		}
	}
	return int(math.Round(100 * float64(have) / float64(requiredTotal)))
}
