package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Jamaalx/transfabilog-sub001/internal/catalog"
	"github.com/Jamaalx/transfabilog-sub001/internal/compliance"
	"github.com/Jamaalx/transfabilog-sub001/internal/database"
	"github.com/Jamaalx/transfabilog-sub001/internal/models"
)

// DocumentHandler handles document-related HTTP requests for both drivers
// and vehicles.
type DocumentHandler struct {
	db database.Service
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(db database.Service) *DocumentHandler {
	return &DocumentHandler{db: db}
}

const docCols = `id, owner_type, owner_id, doc_type, doc_number,
	COALESCE(issue_date::text, ''), COALESCE(expiry_date::text, ''),
	file_url, file_name, file_size, file_type, created_at, updated_at`

// scanDocument reads all Document columns from a row/rows scanner.
func scanDocument(scanner interface {
	Scan(dest ...interface{}) error
}, doc *models.Document) error {
	var issueRaw, expiryRaw string
	err := scanner.Scan(
		&doc.ID, &doc.OwnerType, &doc.OwnerID, &doc.DocType, &doc.DocNumber,
		&issueRaw, &expiryRaw,
		&doc.FileURL, &doc.FileName, &doc.FileSize, &doc.FileType,
		&doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if issueRaw != "" {
		doc.IssueDate = &issueRaw
	}
	if expiryRaw != "" {
		doc.ExpiryDate = &expiryRaw
	}
	return nil
}

// catalogFor returns the document catalog matching an owner type.
func catalogFor(ownerType string) *catalog.Catalog {
	if ownerType == models.OwnerVehicle {
		return catalog.Vehicles()
	}
	return catalog.Drivers()
}

// DocumentWithStatus extends a stored document with the classifier's output.
// Computed on every read, never stored.
type DocumentWithStatus struct {
	models.Document

	Name            string                 `json:"name"` // catalog display name
	DaysUntilExpiry *int                   `json:"daysUntilExpiry,omitempty"`
	AlertStatus     compliance.AlertStatus `json:"alertStatus"`
	NeedsAlert      bool                   `json:"needsAlert"`
}

// enrich computes the classifier fields for one document. Documents whose
// type left the catalog keep a zero-value status instead of failing.
func enrich(doc models.Document, now time.Time) DocumentWithStatus {
	dws := DocumentWithStatus{Document: doc, Name: doc.DocType}

	def, ok := catalogFor(doc.OwnerType).Lookup(doc.DocType)
	if !ok {
		return dws
	}

	var expiry *time.Time
	if doc.ExpiryDate != nil {
		expiry = compliance.ParseDate(*doc.ExpiryDate)
	}
	days := compliance.DaysUntil(expiry, now)

	dws.Name = def.Name
	dws.DaysUntilExpiry = days
	dws.AlertStatus = compliance.Classify(days, def)
	dws.NeedsAlert = compliance.NeedsAlert(def, days)
	return dws
}

// ListByOwner handles GET /api/drivers/{id}/documents and
// GET /api/vehicles/{id}/documents.
func (h *DocumentHandler) ListByOwner(ownerType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rows, err := h.db.GetPool().Query(ctx,
			"SELECT "+docCols+" FROM documents WHERE owner_type = $1 AND owner_id = $2 ORDER BY created_at ASC",
			ownerType, ownerID,
		)
		if err != nil {
			log.Printf("Error listing documents: %v", err)
			JSONError(w, http.StatusInternalServerError, "Failed to fetch documents")
			return
		}
		defer rows.Close()

		now := time.Now()
		docs := []DocumentWithStatus{}
		for rows.Next() {
			var doc models.Document
			if err := scanDocument(rows, &doc); err != nil {
				log.Printf("Error scanning document: %v", err)
				continue
			}
			docs = append(docs, enrich(doc, now))
		}

		JSON(w, http.StatusOK, map[string]interface{}{
			"data":  docs,
			"total": len(docs),
		})
	}
}

// GetByID handles GET /api/documents/{id}
func (h *DocumentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var doc models.Document
	row := h.db.GetPool().QueryRow(ctx,
		"SELECT "+docCols+" FROM documents WHERE id = $1", id)
	if err := scanDocument(row, &doc); err != nil {
		JSONError(w, http.StatusNotFound, "Document not found")
		return
	}

	JSON(w, http.StatusOK, enrich(doc, time.Now()))
}

// Create handles POST /api/drivers/{id}/documents and
// POST /api/vehicles/{id}/documents.
func (h *DocumentHandler) Create(ownerType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := chi.URLParam(r, "id")

		var req models.CreateDocumentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JSONError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if errs := req.Validate(); len(errs) > 0 {
			JSONValidation(w, errs)
			return
		}

		// Reject types the catalog doesn't know; stored rows may drift, but
		// new documents must reference a live catalog entry.
		if _, ok := catalogFor(ownerType).Lookup(req.DocType); !ok {
			JSONError(w, http.StatusUnprocessableEntity, "Unknown document type for this owner")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		pool := h.db.GetPool()

		ownerTable := "drivers"
		if ownerType == models.OwnerVehicle {
			ownerTable = "vehicles"
		}
		var exists bool
		if err := pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM "+ownerTable+" WHERE id = $1)", ownerID).Scan(&exists); err != nil || !exists {
			JSONError(w, http.StatusNotFound, "Owner not found")
			return
		}

		var doc models.Document
		row := pool.QueryRow(ctx, `
			INSERT INTO documents (id, owner_type, owner_id, doc_type, doc_number,
				issue_date, expiry_date, file_url, file_name, file_size, file_type)
			VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::date, NULLIF($7, '')::date, $8, $9, $10, $11)
			RETURNING `+docCols,
			uuid.New().String(), ownerType, ownerID, req.DocType, req.DocNumber,
			deref(req.IssueDate), deref(req.ExpiryDate),
			req.FileURL, req.FileName, req.FileSize, req.FileType,
		)
		if err := scanDocument(row, &doc); err != nil {
			log.Printf("Error creating document: %v", err)
			JSONError(w, http.StatusInternalServerError, "Failed to create document")
			return
		}

		JSON(w, http.StatusCreated, enrich(doc, time.Now()))
	}
}

// Update handles PUT /api/documents/{id}
func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var doc models.Document
	row := h.db.GetPool().QueryRow(ctx, `
		UPDATE documents SET
			doc_number  = COALESCE($2, doc_number),
			issue_date  = COALESCE($3::date, issue_date),
			expiry_date = COALESCE($4::date, expiry_date),
			file_url    = COALESCE($5, file_url),
			file_name   = COALESCE($6, file_name),
			file_size   = COALESCE($7, file_size),
			file_type   = COALESCE($8, file_type),
			updated_at  = NOW()
		WHERE id = $1
		RETURNING `+docCols,
		id, req.DocNumber, req.IssueDate, req.ExpiryDate,
		req.FileURL, req.FileName, req.FileSize, req.FileType,
	)
	if err := scanDocument(row, &doc); err != nil {
		JSONError(w, http.StatusNotFound, "Document not found")
		return
	}

	JSON(w, http.StatusOK, enrich(doc, time.Now()))
}

// Renew handles POST /api/documents/{id}/renew — replaces the expiry date
// (and optionally number/issue date) after a document has been re-issued.
func (h *DocumentHandler) Renew(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.RenewDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		JSONValidation(w, errs)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var doc models.Document
	row := h.db.GetPool().QueryRow(ctx, `
		UPDATE documents SET
			expiry_date = $2::date,
			issue_date  = COALESCE($3::date, issue_date),
			doc_number  = COALESCE($4, doc_number),
			updated_at  = NOW()
		WHERE id = $1
		RETURNING `+docCols,
		id, req.ExpiryDate, req.IssueDate, req.DocNumber,
	)
	if err := scanDocument(row, &doc); err != nil {
		JSONError(w, http.StatusNotFound, "Document not found")
		return
	}

	JSON(w, http.StatusOK, enrich(doc, time.Now()))
}

// Delete handles DELETE /api/documents/{id}
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	tag, err := h.db.GetPool().Exec(ctx, "DELETE FROM documents WHERE id = $1", id)
	if err != nil {
		log.Printf("Error deleting document: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to delete document")
		return
	}
	if tag.RowsAffected() == 0 {
		JSONError(w, http.StatusNotFound, "Document not found")
		return
	}

	JSON(w, http.StatusOK, map[string]string{"message": "Document deleted"})
}
