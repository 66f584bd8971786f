package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCreateDocumentRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := CreateDocumentRequest{
			DocType:    "driving_license",
			IssueDate:  strPtr("2021-06-01"),
			ExpiryDate: strPtr("2026-06-01"),
		}
		assert.Empty(t, req.Validate())
	})

	t.Run("missing doc type", func(t *testing.T) {
		req := CreateDocumentRequest{}
		errs := req.Validate()
		assert.Contains(t, errs, "docType")
	})

	t.Run("bad dates", func(t *testing.T) {
		req := CreateDocumentRequest{
			DocType:    "driving_license",
			IssueDate:  strPtr("01/06/2021"),
			ExpiryDate: strPtr("soon"),
		}
		errs := req.Validate()
		assert.Contains(t, errs, "issueDate")
		assert.Contains(t, errs, "expiryDate")
	})

	t.Run("empty date strings pass", func(t *testing.T) {
		req := CreateDocumentRequest{
			DocType:    "contract",
			ExpiryDate: strPtr(""),
		}
		assert.Empty(t, req.Validate())
	})
}

func TestRenewDocumentRequestValidate(t *testing.T) {
	ok := RenewDocumentRequest{ExpiryDate: "2027-01-31"}
	assert.Empty(t, ok.Validate())

	bad := RenewDocumentRequest{ExpiryDate: "31-01-2027"}
	assert.Contains(t, bad.Validate(), "expiryDate")

	missing := RenewDocumentRequest{}
	assert.Contains(t, missing.Validate(), "expiryDate")
}
