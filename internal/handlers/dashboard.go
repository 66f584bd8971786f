package handlers

import (
	"context"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jamaalx/transfabilog-sub001/internal/compliance"
	"github.com/Jamaalx/transfabilog-sub001/internal/database"
	"github.com/Jamaalx/transfabilog-sub001/internal/models"
)

// DashboardHandler serves fleet-wide aggregates built by running the
// compliance engine over every driver and vehicle.
type DashboardHandler struct {
	db database.Service
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(db database.Service) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// entityRow is one driver or vehicle with its capability profile.
type entityRow struct {
	OwnerType string
	OwnerID   string
	Name      string
	Profile   compliance.Profile
}

// fetchEntities loads every active driver and vehicle with their profiles.
func fetchEntities(ctx context.Context, pool *pgxpool.Pool) ([]entityRow, error) {
	var entities []entityRow

	rows, err := pool.Query(ctx, `
		SELECT id, name, has_international_routes, has_adr
		FROM drivers WHERE status != 'inactive'
	`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		e := entityRow{OwnerType: models.OwnerDriver}
		if err := rows.Scan(&e.OwnerID, &e.Name, &e.Profile.HasInternationalRoutes, &e.Profile.HasADR); err != nil {
			continue
		}
		entities = append(entities, e)
	}
	rows.Close()

	rows, err = pool.Query(ctx, `
		SELECT id, plate_number, has_international_routes, has_adr, has_frigo
		FROM vehicles WHERE status != 'retired'
	`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		e := entityRow{OwnerType: models.OwnerVehicle}
		if err := rows.Scan(&e.OwnerID, &e.Name, &e.Profile.HasInternationalRoutes, &e.Profile.HasADR, &e.Profile.HasFrigo); err != nil {
			continue
		}
		entities = append(entities, e)
	}
	rows.Close()

	return entities, nil
}

// fetchAllSnapshots loads every document, grouped by (ownerType, ownerID).
func fetchAllSnapshots(ctx context.Context, pool *pgxpool.Pool) (map[[2]string][]compliance.Document, error) {
	rows, err := pool.Query(ctx, `
		SELECT id, owner_type, owner_id, doc_type, COALESCE(doc_number, ''), COALESCE(expiry_date::text, '')
		FROM documents
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byOwner := make(map[[2]string][]compliance.Document)
	for rows.Next() {
		var doc compliance.Document
		var ownerType, expiryRaw string
		if err := rows.Scan(&doc.ID, &ownerType, &doc.OwnerID, &doc.DocType, &doc.DocNumber, &expiryRaw); err != nil {
			continue
		}
		doc.ExpiryDate = compliance.ParseDate(expiryRaw)
		key := [2]string{ownerType, doc.OwnerID}
		byOwner[key] = append(byOwner[key], doc)
	}
	return byOwner, rows.Err()
}

// GetMetrics handles GET /api/dashboard/metrics
func (h *DashboardHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pool := h.db.GetPool()
	metrics := models.FleetMetrics{}

	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM drivers WHERE status != 'inactive'").Scan(&metrics.TotalDrivers); err != nil {
		log.Printf("Error counting drivers: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch metrics")
		return
	}
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM vehicles WHERE status != 'retired'").Scan(&metrics.TotalVehicles); err != nil {
		log.Printf("Error counting vehicles: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch metrics")
		return
	}
	if err := pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM documents
		WHERE expiry_date IS NOT NULL
		  AND expiry_date BETWEEN CURRENT_DATE AND CURRENT_DATE + INTERVAL '30 days'
	`).Scan(&metrics.ExpiringSoon); err != nil {
		log.Printf("Error counting expiring documents: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch metrics")
		return
	}
	if err := pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM documents
		WHERE expiry_date IS NOT NULL AND expiry_date < CURRENT_DATE
	`).Scan(&metrics.Expired); err != nil {
		log.Printf("Error counting expired documents: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch metrics")
		return
	}

	JSON(w, http.StatusOK, metrics)
}

// GetComplianceOverview handles GET /api/dashboard/compliance
// Runs the engine per entity and aggregates the results.
func (h *DashboardHandler) GetComplianceOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	entities, err := fetchEntities(ctx, pool)
	if err != nil {
		log.Printf("Error fetching entities: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch compliance overview")
		return
	}
	byOwner, err := fetchAllSnapshots(ctx, pool)
	if err != nil {
		log.Printf("Error fetching documents: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch compliance overview")
		return
	}

	now := time.Now()
	overview := models.ComplianceOverview{
		DocumentsByStatus: make(map[string]int),
		Entities:          []models.EntityAlerts{},
	}

	percentSum := 0
	for _, e := range entities {
		report := compliance.BuildReport(
			catalogFor(e.OwnerType),
			byOwner[[2]string{e.OwnerType, e.OwnerID}],
			e.Profile, now,
		)

		for _, ts := range report.ByType {
			overview.DocumentsByStatus[ts.AlertStatus.Status]++
		}
		if report.Expired > 0 {
			overview.EntitiesAtRisk++
		}
		percentSum += report.CompliancePercent

		// Only entities with something to act on appear in the feed.
		if len(report.Alerts) > 0 || len(report.Missing) > 0 {
			overview.Entities = append(overview.Entities, models.EntityAlerts{
				OwnerType:         e.OwnerType,
				OwnerID:           e.OwnerID,
				OwnerName:         e.Name,
				CompliancePercent: report.CompliancePercent,
				Alerts:            report.Alerts,
				Missing:           report.Missing,
			})
		}
	}

	overview.AverageCompliance = averageCompliance(percentSum, len(entities))

	JSON(w, http.StatusOK, overview)
}

// averageCompliance is the fleet-wide mean percentage, rounded the same way
// as the per-entity percentage. An empty fleet reports fully compliant.
func averageCompliance(percentSum, entityCount int) int {
	if entityCount == 0 {
		return 100
	}
	return int(math.Round(float64(percentSum) / float64(entityCount)))
}

// GetExpiryAlerts handles GET /api/dashboard/expiring — the flat cross-fleet
// alert feed, one row per document needing attention.
func (h *DashboardHandler) GetExpiryAlerts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	entities, err := fetchEntities(ctx, pool)
	if err != nil {
		log.Printf("Error fetching entities: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch alerts")
		return
	}
	byOwner, err := fetchAllSnapshots(ctx, pool)
	if err != nil {
		log.Printf("Error fetching documents: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch alerts")
		return
	}

	type flatAlert struct {
		OwnerType string `json:"ownerType"`
		OwnerID   string `json:"ownerId"`
		OwnerName string `json:"ownerName"`
		compliance.AlertRecord
	}

	now := time.Now()
	alerts := []flatAlert{}
	for _, e := range entities {
		report := compliance.BuildReport(
			catalogFor(e.OwnerType),
			byOwner[[2]string{e.OwnerType, e.OwnerID}],
			e.Profile, now,
		)
		for _, a := range report.Alerts {
			alerts = append(alerts, flatAlert{
				OwnerType:   e.OwnerType,
				OwnerID:     e.OwnerID,
				OwnerName:   e.Name,
				AlertRecord: a,
			})
		}
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"data":  alerts,
		"total": len(alerts),
	})
}
