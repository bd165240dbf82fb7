package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/propaint/estimate-api/internal/domain"
	"github.com/propaint/estimate-api/internal/service"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
	logger          *zap.Logger
}

func NewSettingsHandler(settingsService *service.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetDefaults godoc
// @Summary Get default margin settings
// @Description Get the global margin settings applied to new projects
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} domain.ProjectSettingsDTO
// @Failure 500 {object} domain.ErrorResponse
// @Router /settings [get]
func (h *SettingsHandler) GetDefaults(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetDefaults(r.Context())
	if err != nil {
		h.logger.Error("failed to get settings", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get settings",
		})
		return
	}

	respondJSON(w, http.StatusOK, settings)
}

// UpdateDefaults godoc
// @Summary Update default margin settings
// @Description Replace the global margin settings. Existing projects keep the snapshot they were created with.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body domain.UpdateProjectSettingsRequest true "Margin settings"
// @Success 200 {object} domain.ProjectSettingsDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /settings [put]
func (h *SettingsHandler) UpdateDefaults(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateProjectSettingsRequest
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

	settings, err := h.settingsService.UpdateDefaults(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to update settings", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update settings",
		})
		return
	}

	respondJSON(w, http.StatusOK, settings)
}

// GetBranding godoc
// @Summary Get branding settings
// @Description Get the business identity shown on rendered estimates
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} domain.BrandingDTO
// @Failure 500 {object} domain.ErrorResponse
// @Router /settings/branding [get]
func (h *SettingsHandler) GetBranding(w http.ResponseWriter, r *http.Request) {
	branding, err := h.settingsService.GetBranding(r.Context())
	if err != nil {
		h.logger.Error("failed to get branding", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get branding",
		})
		return
	}

	respondJSON(w, http.StatusOK, branding)
}

// UpdateBranding godoc
// @Summary Update branding settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body domain.UpdateBrandingRequest true "Branding data"
// @Success 200 {object} domain.BrandingDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /settings/branding [put]
func (h *SettingsHandler) UpdateBranding(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateBrandingRequest
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

	branding, err := h.settingsService.UpdateBranding(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to update branding", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update branding",
		})
		return
	}

	respondJSON(w, http.StatusOK, branding)
}

// ListRoomNames godoc
// @Summary List room name presets
// @Description Get the room name suggestions offered when adding rooms
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {array} domain.RoomNamePresetDTO
// @Failure 500 {object} domain.ErrorResponse
// @Router /settings/room-names [get]
func (h *SettingsHandler) ListRoomNames(w http.ResponseWriter, r *http.Request) {
	presets, err := h.settingsService.ListRoomNames(r.Context())
	if err != nil {
		h.logger.Error("failed to list room name presets", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list room name presets",
		})
		return
	}

	respondJSON(w, http.StatusOK, presets)
}

// AddRoomName godoc
// @Summary Add room name preset
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body domain.CreateRoomNamePresetRequest true "Preset data"
// @Success 201 {object} domain.RoomNamePresetDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /settings/room-names [post]
func (h *SettingsHandler) AddRoomName(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRoomNamePresetRequest
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

	preset, err := h.settingsService.AddRoomName(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to add room name preset", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to add room name preset",
		})
		return
	}

	respondJSON(w, http.StatusCreated, preset)
}

// DeleteRoomName godoc
// @Summary Delete room name preset
// @Tags Settings
// @Accept json
// @Produce json
// @Param id path string true "Preset ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /settings/room-names/{id} [delete]
func (h *SettingsHandler) DeleteRoomName(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid preset ID format",
		})
		return
	}

	if err := h.settingsService.DeleteRoomName(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Preset not found",
			})
			return
		}
		h.logger.Error("failed to delete room name preset", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete room name preset",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
