package models

import "time"

// Driver represents a driver in the fleet, including the capability flags
// that activate conditionally required documents.
type Driver struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Status    string  `json:"status"` // "active" | "on_leave" | "inactive"
	HiredAt   *string `json:"hiredAt"`

	// Capability profile
	HasInternationalRoutes bool `json:"hasInternationalRoutes"`
	HasADR                 bool `json:"hasADR"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateDriverRequest holds the fields for registering a new driver.
type CreateDriverRequest struct {
	Name                   string  `json:"name"`
	Email                  *string `json:"email,omitempty"`
	Phone                  *string `json:"phone,omitempty"`
	HiredAt                *string `json:"hiredAt,omitempty"`
	HasInternationalRoutes bool    `json:"hasInternationalRoutes"`
	HasADR                 bool    `json:"hasADR"`
}

// Validate checks the create request.
func (r *CreateDriverRequest) Validate() map[string]string {
	errors := map[string]string{}
	if len(r.Name) < 2 {
		errors["name"] = "Driver name is required (min 2 characters)"
	}
	if r.HiredAt != nil && *r.HiredAt != "" {
		if _, err := time.Parse("2006-01-02", *r.HiredAt); err != nil {
			errors["hiredAt"] = "Hire date must be in YYYY-MM-DD format"
		}
	}
	return errors
}

// UpdateDriverRequest holds the fields that can be partially updated.
type UpdateDriverRequest struct {
	Name                   *string `json:"name,omitempty"`
	Email                  *string `json:"email,omitempty"`
	Phone                  *string `json:"phone,omitempty"`
	Status                 *string `json:"status,omitempty"`
	HiredAt                *string `json:"hiredAt,omitempty"`
	HasInternationalRoutes *bool   `json:"hasInternationalRoutes,omitempty"`
	HasADR                 *bool   `json:"hasADR,omitempty"`
}
