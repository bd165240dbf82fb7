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

type TemplateHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

func NewTemplateHandler(catalogService *service.CatalogService, logger *zap.Logger) *TemplateHandler {
	return &TemplateHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// List godoc
// @Summary List item templates
// @Description Get all item templates, optionally filtered to active ones
// @Tags Templates
// @Accept json
// @Produce json
// @Param activeOnly query bool false "Only return active templates"
// @Success 200 {array} domain.ItemTemplateDTO
// @Failure 500 {object} domain.ErrorResponse
// @Router /templates [get]
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("activeOnly") == "true"

	templates, err := h.catalogService.ListTemplates(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("failed to list templates", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list templates",
		})
		return
	}

	respondJSON(w, http.StatusOK, templates)
}

// GetByID godoc
// @Summary Get item template by ID
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} domain.ItemTemplateDTO
// @Failure 404 {object} domain.ErrorResponse
// @Router /templates/{id} [get]
func (h *TemplateHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	template, err := h.catalogService.GetTemplate(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Template not found",
			})
			return
		}
		h.logger.Error("failed to get template", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get template",
		})
		return
	}

	respondJSON(w, http.StatusOK, template)
}

// Create godoc
// @Summary Create item template
// @Description Create a new item template. The ID is generated when omitted.
// @Tags Templates
// @Accept json
// @Produce json
// @Param request body domain.CreateTemplateRequest true "Template data"
// @Success 201 {object} domain.ItemTemplateDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Duplicate template ID"
// @Failure 500 {object} domain.ErrorResponse
// @Router /templates [post]
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTemplateRequest
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

	template, err := h.catalogService.CreateTemplate(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Invalid measure type, strategy or grade",
			})
			return
		}
		if errors.Is(err, service.ErrConflict) {
			respondJSON(w, http.StatusConflict, domain.ErrorResponse{
				Error:   "Conflict",
				Message: "A template with this ID already exists",
			})
			return
		}
		h.logger.Error("failed to create template", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to create template",
		})
		return
	}

	respondJSON(w, http.StatusCreated, template)
}

// Update godoc
// @Summary Update item template
// @Description Update an item template. Existing line items keep their stored pricing until reprices run.
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body domain.UpdateTemplateRequest true "Template data"
// @Success 200 {object} domain.ItemTemplateDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /templates/{id} [put]
func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req domain.UpdateTemplateRequest
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

	template, err := h.catalogService.UpdateTemplate(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Template not found",
			})
			return
		}
		if errors.Is(err, service.ErrInvalidInput) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Invalid measure type, strategy or grade",
			})
			return
		}
		h.logger.Error("failed to update template", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update template",
		})
		return
	}

	respondJSON(w, http.StatusOK, template)
}

// Delete godoc
// @Summary Delete item template
// @Description Delete an item template. Templates referenced by line items are deactivated instead of removed.
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Success 204 "No Content"
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /templates/{id} [delete]
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalogService.DeleteTemplate(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Template not found",
			})
			return
		}
		h.logger.Error("failed to delete template", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete template",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
