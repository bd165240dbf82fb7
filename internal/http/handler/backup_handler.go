package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/propaint/estimate-api/internal/domain"
	"github.com/propaint/estimate-api/internal/service"
	"go.uber.org/zap"
)

type BackupHandler struct {
	backupService *service.BackupService
	logger        *zap.Logger
}

func NewBackupHandler(backupService *service.BackupService, logger *zap.Logger) *BackupHandler {
	return &BackupHandler{
		backupService: backupService,
		logger:        logger,
	}
}

// Export godoc
// @Summary Export backup
// @Description Export the full dataset as a portable JSON snapshot. The snapshot is also written to the configured backup store.
// @Tags Backup
// @Accept json
// @Produce json
// @Success 200 {object} domain.BackupDTO
// @Failure 500 {object} domain.ErrorResponse
// @Router /backup/export [get]
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	backup, err := h.backupService.Export(r.Context())
	if err != nil {
		h.logger.Error("failed to export backup", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to export backup",
		})
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename=backup.json")
	respondJSON(w, http.StatusOK, backup)
}

// Import godoc
// @Summary Import backup
// @Description Replace the entire dataset with the uploaded snapshot. This is destructive: all current data is removed first.
// @Tags Backup
// @Accept json
// @Produce json
// @Param request body domain.BackupDTO true "Backup snapshot"
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /backup/import [post]
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	var backup domain.BackupDTO
	if err := json.NewDecoder(r.Body).Decode(&backup); err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid backup payload",
		})
		return
	}

	if err := h.backupService.Import(r.Context(), &backup); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Unsupported backup version",
			})
			return
		}
		h.logger.Error("failed to import backup", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to import backup",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
