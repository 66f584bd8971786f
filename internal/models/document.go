package models

import "time"

// Owner types for documents. A document always belongs to exactly one
// driver or one vehicle.
const (
	OwnerDriver  = "driver"
	OwnerVehicle = "vehicle"
)

// Document represents a stored document record.
type Document struct {
	ID         string    `json:"id"`
	OwnerType  string    `json:"ownerType"` // "driver" | "vehicle"
	OwnerID    string    `json:"ownerId"`
	DocType    string    `json:"docType"`   // catalog key
	DocNumber  *string   `json:"docNumber"` // e.g. license number, policy number
	IssueDate  *string   `json:"issueDate"` // YYYY-MM-DD, nullable
	ExpiryDate *string   `json:"expiryDate"`
	FileURL    string    `json:"fileUrl"`
	FileName   string    `json:"fileName"`
	FileSize   int64     `json:"fileSize"`
	FileType   string    `json:"fileType"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateDocumentRequest holds the fields for attaching a new document to a
// driver or vehicle.
type CreateDocumentRequest struct {
	DocType    string  `json:"docType"`
	DocNumber  *string `json:"docNumber,omitempty"`
	IssueDate  *string `json:"issueDate,omitempty"`
	ExpiryDate *string `json:"expiryDate,omitempty"`
	FileURL    string  `json:"fileUrl,omitempty"`
	FileName   string  `json:"fileName,omitempty"`
	FileSize   int64   `json:"fileSize,omitempty"`
	FileType   string  `json:"fileType,omitempty"`
}

// Validate checks the create request.
func (r *CreateDocumentRequest) Validate() map[string]string {
	errors := map[string]string{}
	if len(r.DocType) < 2 {
		errors["docType"] = "Document type is required (min 2 characters)"
	}
	for field, v := range map[string]*string{"issueDate": r.IssueDate, "expiryDate": r.ExpiryDate} {
		if v != nil && *v != "" {
			if _, err := time.Parse("2006-01-02", *v); err != nil {
				errors[field] = "Date must be in YYYY-MM-DD format"
			}
		}
	}
	return errors
}

// UpdateDocumentRequest holds the fields that can be partially updated.
type UpdateDocumentRequest struct {
	DocNumber  *string `json:"docNumber,omitempty"`
	IssueDate  *string `json:"issueDate,omitempty"`
	ExpiryDate *string `json:"expiryDate,omitempty"`
	FileURL    *string `json:"fileUrl,omitempty"`
	FileName   *string `json:"fileName,omitempty"`
	FileSize   *int64  `json:"fileSize,omitempty"`
	FileType   *string `json:"fileType,omitempty"`
}

// RenewDocumentRequest replaces the expiry date after a document renewal.
type RenewDocumentRequest struct {
	IssueDate  *string `json:"issueDate,omitempty"`
	ExpiryDate string  `json:"expiryDate"`
	DocNumber  *string `json:"docNumber,omitempty"`
}

// Validate checks the renew request.
func (r *RenewDocumentRequest) Validate() map[string]string {
	errors := map[string]string{}
	if _, err := time.Parse("2006-01-02", r.ExpiryDate); err != nil {
		errors["expiryDate"] = "New expiry date must be in YYYY-MM-DD format"
	}
	return errors
}
