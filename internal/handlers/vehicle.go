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

// VehicleHandler handles vehicle-related HTTP requests.
type VehicleHandler struct {
	db database.Service
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(db database.Service) *VehicleHandler {
	return &VehicleHandler{db: db}
}

const vehicleCols = `id, plate_number, make, model, year, status,
	has_international_routes, has_adr, has_frigo, created_at, updated_at`

// scanVehicle reads all Vehicle columns from a row/rows scanner.
func scanVehicle(scanner interface {
	Scan(dest ...interface{}) error
}, v *models.Vehicle) error {
	return scanner.Scan(
		&v.ID, &v.PlateNumber, &v.Make, &v.Model, &v.Year, &v.Status,
		&v.HasInternationalRoutes, &v.HasADR, &v.HasFrigo,
		&v.CreatedAt, &v.UpdatedAt,
	)
}

// List handles GET /api/vehicles
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	rows, err := h.db.GetPool().Query(ctx,
		"SELECT "+vehicleCols+" FROM vehicles ORDER BY plate_number ASC")
	if err != nil {
		log.Printf("Error listing vehicles: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch vehicles")
		return
	}
	defer rows.Close()

	vehicles := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := scanVehicle(rows, &v); err != nil {
			log.Printf("Error scanning vehicle: %v", err)
			continue
		}
		vehicles = append(vehicles, v)
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"data":  vehicles,
		"total": len(vehicles),
	})
}

// GetByID handles GET /api/vehicles/{id}
func (h *VehicleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var v models.Vehicle
	row := h.db.GetPool().QueryRow(ctx,
		"SELECT "+vehicleCols+" FROM vehicles WHERE id = $1", id)
	if err := scanVehicle(row, &v); err != nil {
		JSONError(w, http.StatusNotFound, "Vehicle not found")
		return
	}

	JSON(w, http.StatusOK, v)
}

// Create handles POST /api/vehicles
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVehicleRequest
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

	var v models.Vehicle
	row := h.db.GetPool().QueryRow(ctx, `
		INSERT INTO vehicles (plate_number, make, model, year, has_international_routes, has_adr, has_frigo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+vehicleCols,
		req.PlateNumber, req.Make, req.Model, req.Year,
		req.HasInternationalRoutes, req.HasADR, req.HasFrigo,
	)
	if err := scanVehicle(row, &v); err != nil {
		if isDuplicateKeyError(err) {
			JSONError(w, http.StatusConflict, "A vehicle with this plate number already exists")
			return
		}
		log.Printf("Error creating vehicle: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to create vehicle")
		return
	}

	JSON(w, http.StatusCreated, v)
}

// Update handles PUT /api/vehicles/{id}
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var v models.Vehicle
	row := h.db.GetPool().QueryRow(ctx, `
		UPDATE vehicles SET
			plate_number = COALESCE($2, plate_number),
			make   = COALESCE($3, make),
			model  = COALESCE($4, model),
			year   = COALESCE($5, year),
			status = COALESCE($6, status),
			has_international_routes = COALESCE($7, has_international_routes),
			has_adr   = COALESCE($8, has_adr),
			has_frigo = COALESCE($9, has_frigo),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+vehicleCols,
		id, req.PlateNumber, req.Make, req.Model, req.Year, req.Status,
		req.HasInternationalRoutes, req.HasADR, req.HasFrigo,
	)
	if err := scanVehicle(row, &v); err != nil {
		JSONError(w, http.StatusNotFound, "Vehicle not found")
		return
	}

	JSON(w, http.StatusOK, v)
}

// Delete handles DELETE /api/vehicles/{id}
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	tag, err := h.db.GetPool().Exec(ctx, "DELETE FROM vehicles WHERE id = $1", id)
	if err != nil {
		log.Printf("Error deleting vehicle: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to delete vehicle")
		return
	}
	if tag.RowsAffected() == 0 {
		JSONError(w, http.StatusNotFound, "Vehicle not found")
		return
	}

	JSON(w, http.StatusOK, map[string]string{"message": "Vehicle deleted"})
}
