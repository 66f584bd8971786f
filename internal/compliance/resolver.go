package compliance

import (
	"sort"

	"github.com/Jamaalx/transfabilog-sub001/internal/catalog"
)

// Profile holds the capability flags of a driver or vehicle that activate
// conditionally required document types. Supplied by the caller; the engine
// never owns or mutates it.
type Profile struct {
	HasInternationalRoutes bool `json:"hasInternationalRoutes"`
	HasADR                 bool `json:"hasADR"`
	HasFrigo               bool `json:"hasFrigo"`
}

// Missing-document priorities, ordered from most to least pressing.
const (
	PriorityHigh   = "high"   // unconditionally required
	PriorityMedium = "medium" // required through an active capability flag
	PriorityLow    = "low"    // recommended only
)

// priorityRank orders priorities for the stable sort of the missing list.
var priorityRank = map[string]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// MissingItem is one document type an entity should have on file but doesn't.
type MissingItem struct {
	DocType             string            `json:"docType"`
	Name                string            `json:"name"`
	Description         string            `json:"description,omitempty"`
	Required            bool              `json:"required"`
	ConditionalRequired bool              `json:"conditionalRequired,omitempty"`
	RequiredCondition   catalog.Condition `json:"requiredCondition,omitempty"`
	Recommended         bool              `json:"recommended,omitempty"`
	Priority            string            `json:"priority"`
}

// conditionApplies maps a requirement condition to the matching profile flag.
// The switch is exhaustive over the catalog.Condition enum; an unrecognized
// condition resolves to false so a drifted catalog entry can never conjure a
// mandatory document out of thin air.
func conditionApplies(c catalog.Condition, profile Profile) bool {
	switch c {
	case catalog.ConditionInternational:
		return profile.HasInternationalRoutes
	case catalog.ConditionADR:
		return profile.HasADR
	case catalog.ConditionFrigo:
		return profile.HasFrigo
	default:
		return false
	}
}

// ResolveMissing walks the catalog in declaration order and returns the
// entries the entity is missing, classified by priority:
//
//   - required entries                          → high
//   - conditional entries with the flag active  → medium
//   - recommended entries                       → low
//
// Conditional entries whose flag is inactive are omitted entirely (unless
// also recommended). The result is stably sorted by priority rank, so equal
// priorities keep catalog declaration order.
func ResolveMissing(cat *catalog.Catalog, existing map[string]bool, profile Profile) []MissingItem {
	missing := []MissingItem{}

	for _, def := range cat.List() {
		if existing[def.Key] {
			continue
		}

		isRequired := def.Required
		if def.ConditionalRequired && def.RequiredCondition != "" {
			isRequired = conditionApplies(def.RequiredCondition, profile)
		}

		switch {
		case isRequired:
			priority := PriorityHigh
			if def.ConditionalRequired {
				priority = PriorityMedium
			}
			missing = append(missing, MissingItem{
				DocType:             def.Key,
				Name:                def.Name,
				Description:         def.Description,
				Required:            true,
				ConditionalRequired: def.ConditionalRequired,
				RequiredCondition:   def.RequiredCondition,
				Priority:            priority,
			})
		case def.Recommended:
			missing = append(missing, MissingItem{
				DocType:     def.Key,
				Name:        def.Name,
				Description: def.Description,
				Required:    false,
				Recommended: true,
				Priority:    PriorityLow,
			})
		}
	}

	sort.SliceStable(missing, func(i, j int) bool {
		return missingSortKey(missing[i]) < missingSortKey(missing[j])
	})
	return missing
}

// missingSortKey is the total-order key for the missing list: priority rank
// only. Ties are resolved by the stable sort, preserving catalog order.
func missingSortKey(m MissingItem) int {
	return priorityRank[m.Priority]
}
