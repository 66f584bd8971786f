package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Jamaalx/transfabilog-sub001/internal/database"
	"github.com/Jamaalx/transfabilog-sub001/internal/models"
)

// DriverHandler handles driver-related HTTP requests.
type DriverHandler struct {
	db database.Service
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(db database.Service) *DriverHandler {
	return &DriverHandler{db: db}
}

const driverCols = `id, name, email, phone, status,
	COALESCE(hired_at::text, ''),
	has_international_routes, has_adr, created_at, updated_at`

// scanDriver reads all Driver columns from a row/rows scanner.
func scanDriver(scanner interface {
	Scan(dest ...interface{}) error
}, d *models.Driver) error {
	var hiredRaw string
	err := scanner.Scan(
		&d.ID, &d.Name, &d.Email, &d.Phone, &d.Status,
		&hiredRaw,
		&d.HasInternationalRoutes, &d.HasADR, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if hiredRaw != "" {
		d.HiredAt = &hiredRaw
	}
	return nil
}

// List handles GET /api/drivers
func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	rows, err := h.db.GetPool().Query(ctx,
		"SELECT "+driverCols+" FROM drivers ORDER BY name ASC")
	if err != nil {
		log.Printf("Error listing drivers: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch drivers")
		return
	}
	defer rows.Close()

	drivers := []models.Driver{}
	for rows.Next() {
		var d models.Driver
		if err := scanDriver(rows, &d); err != nil {
			log.Printf("Error scanning driver: %v", err)
			continue
		}
		drivers = append(drivers, d)
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"data":  drivers,
		"total": len(drivers),
	})
}

// GetByID handles GET /api/drivers/{id}
func (h *DriverHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var d models.Driver
	row := h.db.GetPool().QueryRow(ctx,
		"SELECT "+driverCols+" FROM drivers WHERE id = $1", id)
	if err := scanDriver(row, &d); err != nil {
		JSONError(w, http.StatusNotFound, "Driver not found")
		return
	}

	JSON(w, http.StatusOK, d)
}

// Create handles POST /api/drivers
func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDriverRequest
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

	var d models.Driver
	row := h.db.GetPool().QueryRow(ctx, `
		INSERT INTO drivers (name, email, phone, hired_at, has_international_routes, has_adr)
		VALUES ($1, $2, $3, NULLIF($4, '')::date, $5, $6)
		RETURNING `+driverCols,
		req.Name, req.Email, req.Phone, deref(req.HiredAt),
		req.HasInternationalRoutes, req.HasADR,
	)
	if err := scanDriver(row, &d); err != nil {
		log.Printf("Error creating driver: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to create driver")
		return
	}

	JSON(w, http.StatusCreated, d)
}

// Update handles PUT /api/drivers/{id}
func (h *DriverHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var d models.Driver
	row := h.db.GetPool().QueryRow(ctx, `
		UPDATE drivers SET
			name    = COALESCE($2, name),
			email   = COALESCE($3, email),
			phone   = COALESCE($4, phone),
			status  = COALESCE($5, status),
			hired_at = COALESCE($6::date, hired_at),
			has_international_routes = COALESCE($7, has_international_routes),
			has_adr = COALESCE($8, has_adr),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+driverCols,
		id, req.Name, req.Email, req.Phone, req.Status, req.HiredAt,
		req.HasInternationalRoutes, req.HasADR,
	)
	if err := scanDriver(row, &d); err != nil {
		JSONError(w, http.StatusNotFound, "Driver not found")
		return
	}

	JSON(w, http.StatusOK, d)
}

// Delete handles DELETE /api/drivers/{id}
// Documents owned by the driver are removed by ON DELETE CASCADE.
func (h *DriverHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	tag, err := h.db.GetPool().Exec(ctx, "DELETE FROM drivers WHERE id = $1", id)
	if err != nil {
		log.Printf("Error deleting driver: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to delete driver")
		return
	}
	if tag.RowsAffected() == 0 {
		JSONError(w, http.StatusNotFound, "Driver not found")
		return
	}

	JSON(w, http.StatusOK, map[string]string{"message": "Driver deleted"})
}

// deref returns the string value or "" for nil.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
