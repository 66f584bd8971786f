package models

import "time"

// Vehicle represents a vehicle in the fleet, including the capability flags
// that activate conditionally required documents.
type Vehicle struct {
	ID          string  `json:"id"`
	PlateNumber string  `json:"plateNumber"`
	Make        *string `json:"make"`
	Model       *string `json:"model"`
	Year        *int    `json:"year"`
	Status      string  `json:"status"` // "available" | "in_trip" | "maintenance" | "retired"

	// Capability profile
	HasInternationalRoutes bool `json:"hasInternationalRoutes"`
	HasADR                 bool `json:"hasADR"`
	HasFrigo               bool `json:"hasFrigo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateVehicleRequest holds the fields for registering a new vehicle.
type CreateVehicleRequest struct {
	PlateNumber            string  `json:"plateNumber"`
	Make                   *string `json:"make,omitempty"`
	Model                  *string `json:"model,omitempty"`
	Year                   *int    `json:"year,omitempty"`
	HasInternationalRoutes bool    `json:"hasInternationalRoutes"`
	HasADR                 bool    `json:"hasADR"`
	HasFrigo               bool    `json:"hasFrigo"`
}

// Validate checks the create request.
func (r *CreateVehicleRequest) Validate() map[string]string {
	errors := map[string]string{}
	if len(r.PlateNumber) < 2 {
		errors["plateNumber"] = "Plate number is required (min 2 characters)"
	}
	if r.Year != nil && (*r.Year < 1980 || *r.Year > 2100) {
		errors["year"] = "Year must be between 1980 and 2100"
	}
	return errors
}

// UpdateVehicleRequest holds the fields that can be partially updated.
type UpdateVehicleRequest struct {
	PlateNumber            *string `json:"plateNumber,omitempty"`
	Make                   *string `json:"make,omitempty"`
	Model                  *string `json:"model,omitempty"`
	Year                   *int    `json:"year,omitempty"`
	Status                 *string `json:"status,omitempty"`
	HasInternationalRoutes *bool   `json:"hasInternationalRoutes,omitempty"`
	HasADR                 *bool   `json:"hasADR,omitempty"`
	HasFrigo               *bool   `json:"hasFrigo,omitempty"`
}
