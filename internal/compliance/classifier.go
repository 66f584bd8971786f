package compliance

import "github.com/Jamaalx/transfabilog-sub001/internal/catalog"

// ── Alert status constants ───────────────────────────────────────
// Status is always computed from (daysUntilExpiry, type definition).
// It is never stored in the database.

const (
	StatusNoExpiry          = "no_expiry"          // Type never expires
	StatusReviewRecommended = "review_recommended" // Periodic-review type with no date on file
	StatusUnknown           = "unknown"            // Expiring type with no date on file
	StatusExpired           = "expired"            // Past expiry
	StatusCritical          = "critical"           // Expires within 7 days
	StatusUrgent            = "urgent"             // Expires within 30 days
	StatusWarning           = "warning"            // Expires within 90 days
	StatusOK                = "ok"                 // More than 90 days left
)

// AlertStatus is the visual severity tier for one document: badge color,
// machine status, human label, and a 0–5 priority used for sorting.
type AlertStatus struct {
	Color    string `json:"color"`
	Status   string `json:"status"`
	Label    string `json:"label"`
	Priority int    `json:"priority"`
	Urgent   bool   `json:"urgent,omitempty"`
}

// Classify maps a day-count and a type definition to a severity tier using
// fixed global thresholds (7/30/90 days). The per-type AlertDaysBefore is
// deliberately ignored here: Classify drives dashboard colors, while
// NeedsAlert drives inclusion in the alert feed. The two rules are separate
// concerns and must stay decoupled.
//
// The cases are evaluated in this exact order; the first match wins.
func Classify(daysUntilExpiry *int, def catalog.Definition) AlertStatus {
	switch {
	case !def.Expires && !def.PeriodicReview:
		return AlertStatus{Color: "gray", Status: StatusNoExpiry, Label: "Does not expire", Priority: 0}
	case def.PeriodicReview && daysUntilExpiry == nil:
		return AlertStatus{Color: "blue", Status: StatusReviewRecommended, Label: "Periodic review recommended", Priority: 1}
	case daysUntilExpiry == nil:
		return AlertStatus{Color: "gray", Status: StatusUnknown, Label: "No expiry date on file", Priority: 0}
	case *daysUntilExpiry < 0:
		return AlertStatus{Color: "red", Status: StatusExpired, Label: "Expired", Priority: 5, Urgent: true}
	case *daysUntilExpiry <= 7:
		return AlertStatus{Color: "red", Status: StatusCritical, Label: "Expires within 7 days", Priority: 4, Urgent: true}
	case *daysUntilExpiry <= 30:
		return AlertStatus{Color: "orange", Status: StatusUrgent, Label: "Expires within 30 days", Priority: 3}
	case *daysUntilExpiry <= 90:
		return AlertStatus{Color: "yellow", Status: StatusWarning, Label: "Expires within 90 days", Priority: 2}
	default:
		return AlertStatus{Color: "green", Status: StatusOK, Label: "Valid", Priority: 0}
	}
}

// NeedsAlert is the notification-trigger gate. Unlike Classify it honors the
// per-type configurable AlertDaysBefore threshold. A document with no known
// expiry never triggers an alert; an expired document always does.
func NeedsAlert(def catalog.Definition, daysUntilExpiry *int) bool {
	if daysUntilExpiry == nil {
		return false
	}
	if def.AlertDaysBefore > 0 && *daysUntilExpiry <= def.AlertDaysBefore {
		return true
	}
	return *daysUntilExpiry < 0
}
