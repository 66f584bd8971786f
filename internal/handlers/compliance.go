package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jamaalx/transfabilog-sub001/internal/catalog"
	"github.com/Jamaalx/transfabilog-sub001/internal/compliance"
	"github.com/Jamaalx/transfabilog-sub001/internal/database"
	"github.com/Jamaalx/transfabilog-sub001/internal/models"
)

// ComplianceHandler serves per-entity compliance reports and the catalog
// projections used by the UI.
type ComplianceHandler struct {
	db database.Service
}

// NewComplianceHandler creates a new ComplianceHandler.
func NewComplianceHandler(db database.Service) *ComplianceHandler {
	return &ComplianceHandler{db: db}
}

// fetchProfile loads the capability flags (and display name) of a driver or
// vehicle. Drivers have no refrigerated-cargo flag; it stays false.
func fetchProfile(ctx context.Context, pool *pgxpool.Pool, ownerType, ownerID string) (compliance.Profile, string, error) {
	var profile compliance.Profile
	var name string

	if ownerType == models.OwnerVehicle {
		err := pool.QueryRow(ctx, `
			SELECT plate_number, has_international_routes, has_adr, has_frigo
			FROM vehicles WHERE id = $1
		`, ownerID).Scan(&name, &profile.HasInternationalRoutes, &profile.HasADR, &profile.HasFrigo)
		return profile, name, err
	}

	err := pool.QueryRow(ctx, `
		SELECT name, has_international_routes, has_adr
		FROM drivers WHERE id = $1
	`, ownerID).Scan(&name, &profile.HasInternationalRoutes, &profile.HasADR)
	return profile, name, err
}

// fetchSnapshots loads an entity's documents as engine snapshots.
func fetchSnapshots(ctx context.Context, pool *pgxpool.Pool, ownerType, ownerID string) ([]compliance.Document, error) {
	rows, err := pool.Query(ctx, `
		SELECT id, owner_id, doc_type, COALESCE(doc_number, ''), COALESCE(expiry_date::text, '')
		FROM documents
		WHERE owner_type = $1 AND owner_id = $2
		ORDER BY created_at ASC
	`, ownerType, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []compliance.Document
	for rows.Next() {
		var doc compliance.Document
		var expiryRaw string
		if err := rows.Scan(&doc.ID, &doc.OwnerID, &doc.DocType, &doc.DocNumber, &expiryRaw); err != nil {
			continue
		}
		doc.ExpiryDate = compliance.ParseDate(expiryRaw)
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Report handles GET /api/drivers/{id}/compliance and
// GET /api/vehicles/{id}/compliance.
func (h *ComplianceHandler) Report(ownerType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		pool := h.db.GetPool()

		profile, _, err := fetchProfile(ctx, pool, ownerType, ownerID)
		if err != nil {
			JSONError(w, http.StatusNotFound, "Owner not found")
			return
		}

		docs, err := fetchSnapshots(ctx, pool, ownerType, ownerID)
		if err != nil {
			JSONError(w, http.StatusInternalServerError, "Failed to fetch documents")
			return
		}

		report := compliance.BuildReport(catalogFor(ownerType), docs, profile, time.Now())
		JSON(w, http.StatusOK, report)
	}
}

// Options handles GET /api/catalog/drivers and GET /api/catalog/vehicles —
// the flat, declaration-ordered projection for selection widgets.
func (h *ComplianceHandler) Options(ownerType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		JSON(w, http.StatusOK, map[string]interface{}{
			"data": catalogFor(ownerType).Options(),
		})
	}
}

// Groups handles GET /api/catalog/{entity}/groups?bucket=required.
// Buckets: required (default), conditional, recommended.
func (h *ComplianceHandler) Groups(ownerType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bucket := catalog.Bucket(r.URL.Query().Get("bucket"))
		switch bucket {
		case catalog.BucketRequired, catalog.BucketConditional, catalog.BucketRecommended:
		case "":
			bucket = catalog.BucketRequired
		default:
			JSONError(w, http.StatusBadRequest, "bucket must be 'required', 'conditional' or 'recommended'")
			return
		}

		JSON(w, http.StatusOK, map[string]interface{}{
			"bucket": bucket,
			"groups": catalogFor(ownerType).GroupByCategory(bucket),
		})
	}
}
