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

type RoomHandler struct {
	roomService *service.RoomService
	logger      *zap.Logger
}

func NewRoomHandler(roomService *service.RoomService, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
		logger:      logger,
	}
}

// GetByID godoc
// @Summary Get room by ID
// @Description Get a room with its line items and room total
// @Tags Rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID" format(uuid)
// @Success 200 {object} domain.RoomDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid room ID format",
		})
		return
	}

	room, err := h.roomService.GetByID(r.Context(), id)
	if err != nil {
		h.respondRoomError(w, err, "failed to get room")
		return
	}

	respondJSON(w, http.StatusOK, room)
}

// Update godoc
// @Summary Update room
// @Description Update a room. Changing any measurement re-derives the quantity of every geometry-based line item, replacing manual overrides.
// @Tags Rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID" format(uuid)
// @Param request body domain.UpdateRoomRequest true "Room data"
// @Success 200 {object} domain.RoomDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /rooms/{id} [put]
func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid room ID format",
		})
		return
	}

	var req domain.UpdateRoomRequest
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

	room, err := h.roomService.Update(r.Context(), id, &req)
	if err != nil {
		h.respondRoomError(w, err, "failed to update room")
		return
	}

	respondJSON(w, http.StatusOK, room)
}

// Delete godoc
// @Summary Delete room
// @Description Delete a room with its line items and refresh the project totals
// @Tags Rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid room ID format",
		})
		return
	}

	if err := h.roomService.Delete(r.Context(), id); err != nil {
		h.respondRoomError(w, err, "failed to delete room")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddItem godoc
// @Summary Add line item to room
// @Description Create a line item from a template. Quantity is derived from the room's measurements when omitted.
// @Tags Rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID" format(uuid)
// @Param request body domain.CreateItemRequest true "Line item data"
// @Success 201 {object} domain.ItemInstanceDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /rooms/{id}/items [post]
func (h *RoomHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid room ID format",
		})
		return
	}

	var req domain.CreateItemRequest
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

	item, err := h.roomService.AddItem(r.Context(), roomID, &req)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Item template not found",
			})
			return
		}
		h.respondRoomError(w, err, "failed to add item")
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// UpdateItem godoc
// @Summary Update line item
// @Description Update a line item and reprice it. Setting a quantity here overrides the derived one until the room's measurements change.
// @Tags Rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID" format(uuid)
// @Param itemId path string true "Item ID" format(uuid)
// @Param request body domain.UpdateItemRequest true "Line item data"
// @Success 200 {object} domain.ItemInstanceDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /rooms/{id}/items/{itemId} [put]
func (h *RoomHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "itemId"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid item ID format",
		})
		return
	}

	var req domain.UpdateItemRequest
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

	item, err := h.roomService.UpdateItem(r.Context(), itemID, &req)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Line item not found",
			})
			return
		}
		h.logger.Error("failed to update item", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update item",
		})
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// DeleteItem godoc
// @Summary Delete line item
// @Description Delete a line item and refresh the project totals
// @Tags Rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID" format(uuid)
// @Param itemId path string true "Item ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /rooms/{id}/items/{itemId} [delete]
func (h *RoomHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "itemId"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid item ID format",
		})
		return
	}

	if err := h.roomService.DeleteItem(r.Context(), itemID); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Line item not found",
			})
			return
		}
		h.logger.Error("failed to delete item", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete item",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *RoomHandler) respondRoomError(w http.ResponseWriter, err error, logMsg string) {
	if errors.Is(err, service.ErrRoomNotFound) {
		respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
			Error:   "Not Found",
			Message: "Room not found",
		})
		return
	}
	h.logger.Error(logMsg, zap.Error(err))
	respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
		Error:   "Internal Server Error",
		Message: "Something went wrong",
	})
}
