package models

import "github.com/Jamaalx/transfabilog-sub001/internal/compliance"

// FleetMetrics is the top-level dashboard summary.
type FleetMetrics struct {
	TotalDrivers  int `json:"totalDrivers"`
	TotalVehicles int `json:"totalVehicles"`
	ExpiringSoon  int `json:"expiringSoon"` // documents expiring within 30 days
	Expired       int `json:"expired"`
}

// EntityAlerts groups the alert feed of one driver or vehicle for the
// cross-fleet expiring-documents view.
type EntityAlerts struct {
	OwnerType         string                   `json:"ownerType"` // "driver" | "vehicle"
	OwnerID           string                   `json:"ownerId"`
	OwnerName         string                   `json:"ownerName"` // driver name or plate number
	CompliancePercent int                      `json:"compliancePercent"`
	Alerts            []compliance.AlertRecord `json:"alerts"`
	Missing           []compliance.MissingItem `json:"missing"`
}

// ComplianceOverview aggregates compliance across the whole fleet.
type ComplianceOverview struct {
	DocumentsByStatus map[string]int `json:"documentsByStatus"`
	AverageCompliance int            `json:"averageCompliance"`
	EntitiesAtRisk    int            `json:"entitiesAtRisk"` // entities with at least one expired mandatory document
	Entities          []EntityAlerts `json:"entities"`
}
