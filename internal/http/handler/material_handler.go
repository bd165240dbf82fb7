package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/propaint/estimate-api/internal/domain"
	"github.com/propaint/estimate-api/internal/service"
	"go.uber.org/zap"
)

type MaterialHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

func NewMaterialHandler(catalogService *service.CatalogService, logger *zap.Logger) *MaterialHandler {
	return &MaterialHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// List godoc
// @Summary List material lines
// @Description Get the full material price book ordered by surface category
// @Tags Materials
// @Accept json
// @Produce json
// @Success 200 {array} domain.MaterialLineDTO
// @Failure 500 {object} domain.ErrorResponse
// @Router /materials [get]
func (h *MaterialHandler) List(w http.ResponseWriter, r *http.Request) {
	materials, err := h.catalogService.ListMaterials(r.Context())
	if err != nil {
		h.logger.Error("failed to list materials", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list materials",
		})
		return
	}

	respondJSON(w, http.StatusOK, materials)
}

// GetByID godoc
// @Summary Get material line by ID
// @Tags Materials
// @Accept json
// @Produce json
// @Param id path string true "Material ID"
// @Success 200 {object} domain.MaterialLineDTO
// @Failure 404 {object} domain.ErrorResponse
// @Router /materials/{id} [get]
func (h *MaterialHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	material, err := h.catalogService.GetMaterial(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMaterialNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Material not found",
			})
			return
		}
		h.logger.Error("failed to get material", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get material",
		})
		return
	}

	respondJSON(w, http.StatusOK, material)
}

// Create godoc
// @Summary Create material line
// @Description Add a paint product to the price book. The ID is generated when omitted.
// @Tags Materials
// @Accept json
// @Produce json
// @Param request body domain.CreateMaterialRequest true "Material data"
// @Success 201 {object} domain.MaterialLineDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Duplicate material ID"
// @Failure 500 {object} domain.ErrorResponse
// @Router /materials [post]
func (h *MaterialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid request body",
		})
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	material, err := h.catalogService.CreateMaterial(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Invalid paint grade",
			})
			return
		}
		if errors.Is(err, service.ErrConflict) {
			respondJSON(w, http.StatusConflict, domain.ErrorResponse{
				Error:   "Conflict",
				Message: "A material with this ID already exists",
			})
			return
		}
		h.logger.Error("failed to create material", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to create material",
		})
		return
	}

	respondJSON(w, http.StatusCreated, material)
}

// Update godoc
// @Summary Update material line
// @Tags Materials
// @Accept json
// @Produce json
// @Param id path string true "Material ID"
// @Param request body domain.UpdateMaterialRequest true "Material data"
// @Success 200 {object} domain.MaterialLineDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /materials/{id} [put]
func (h *MaterialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req domain.UpdateMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid request body",
		})
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	material, err := h.catalogService.UpdateMaterial(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrMaterialNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Material not found",
			})
			return
		}
		if errors.Is(err, service.ErrInvalidInput) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Invalid paint grade",
			})
			return
		}
		h.logger.Error("failed to update material", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update material",
		})
		return
	}

	respondJSON(w, http.StatusOK, material)
}

// Delete godoc
// @Summary Delete material line
// @Description Remove a paint product from the price book. Line items referencing it fall back to category matching on the next reprice.
// @Tags Materials
// @Accept json
// @Produce json
// @Param id path string true "Material ID"
// @Success 204 "No Content"
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /materials/{id} [delete]
func (h *MaterialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalogService.DeleteMaterial(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrMaterialNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Material not found",
			})
			return
		}
		h.logger.Error("failed to delete material", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete material",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Sync godoc
// @Summary Sync supplier prices
// @Description Pull the supplier price list and update matching price-book entries
// @Tags Materials
// @Accept json
// @Produce json
// @Success 200 {object} domain.PriceSyncResultDTO
// @Failure 500 {object} domain.ErrorResponse
// @Failure 503 {object} domain.ErrorResponse "Price feed not configured"
// @Router /materials/sync [post]
func (h *MaterialHandler) Sync(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.SyncSupplierPrices(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrPriceFeedDisabled) {
			respondJSON(w, http.StatusServiceUnavailable, domain.ErrorResponse{
				Error:   "Service Unavailable",
				Message: "Supplier price feed is not configured",
			})
			return
		}
		h.logger.Error("failed to sync supplier prices", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to sync supplier prices",
		})
		return
	}

	respondJSON(w, http.StatusOK, result)
}
