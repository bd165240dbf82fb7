package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propaint/estimate-api/internal/domain"
)

func TestRoomHandler_GetByID(t *testing.T) {
	env := newHandlerEnv(t)
	client := createHandlerTestClient(t, env, "Kari Nordmann")
	project := createHandlerTestProject(t, env, client.ID)
	room := createHandlerTestRoom(t, env, project.ID)

	t.Run("returns room", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/"+room.ID.String(), nil)
		req = withURLParam(req, "id", room.ID.String())
		rr := httptest.NewRecorder()

		env.roomH.GetByID(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp domain.RoomDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, room.ID, resp.ID)
		assert.Equal(t, "Living Room", resp.Name)
	})

	t.Run("rejects malformed ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/not-a-uuid", nil)
		req = withURLParam(req, "id", "not-a-uuid")
		rr := httptest.NewRecorder()

		env.roomH.GetByID(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp domain.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Bad Request", resp.Error)
		assert.Equal(t, "Invalid room ID format", resp.Message)
	})

	t.Run("returns 404 for unknown room", func(t *testing.T) {
		missing := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/"+missing, nil)
		req = withURLParam(req, "id", missing)
		rr := httptest.NewRecorder()

		env.roomH.GetByID(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)

		var resp domain.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Not Found", resp.Error)
		assert.Equal(t, "Room not found", resp.Message)
	})
}

func TestRoomHandler_AddItem(t *testing.T) {
	env := newHandlerEnv(t)
	seedHandlerWallsCatalog(t, env)
	client := createHandlerTestClient(t, env, "Kari Nordmann")
	project := createHandlerTestProject(t, env, client.ID)
	room := createHandlerTestRoom(t, env, project.ID)

	t.Run("derives quantity from room geometry", func(t *testing.T) {
		body, _ := json.Marshal(domain.CreateItemRequest{TemplateID: "tpl_walls"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms/"+room.ID.String()+"/items", bytes.NewReader(body))
		req = withURLParam(req, "id", room.ID.String())
		rr := httptest.NewRecorder()

		env.roomH.AddItem(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp domain.ItemInstanceDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		// 2*(12+12)*8 minus one door and one window
		assert.InDelta(t, 348, resp.Quantity, 0.001)
		assert.Equal(t, "tpl_walls", resp.TemplateID)
	})

	t.Run("returns 404 for unknown template", func(t *testing.T) {
		body, _ := json.Marshal(domain.CreateItemRequest{TemplateID: "tpl_missing"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms/"+room.ID.String()+"/items", bytes.NewReader(body))
		req = withURLParam(req, "id", room.ID.String())
		rr := httptest.NewRecorder()

		env.roomH.AddItem(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)

		var resp domain.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Not Found", resp.Error)
		assert.Equal(t, "Item template not found", resp.Message)
	})

	t.Run("rejects missing template ID", func(t *testing.T) {
		body, _ := json.Marshal(domain.CreateItemRequest{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms/"+room.ID.String()+"/items", bytes.NewReader(body))
		req = withURLParam(req, "id", room.ID.String())
		rr := httptest.NewRecorder()

		env.roomH.AddItem(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp domain.APIError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Validation Error", resp.Title)
		assert.Contains(t, resp.Errors, "templateId")
	})
}

func TestRoomHandler_Update(t *testing.T) {
	env := newHandlerEnv(t)
	seedHandlerWallsCatalog(t, env)
	client := createHandlerTestClient(t, env, "Kari Nordmann")
	project := createHandlerTestProject(t, env, client.ID)
	room := createHandlerTestRoom(t, env, project.ID)

	body, _ := json.Marshal(domain.CreateItemRequest{TemplateID: "tpl_walls"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms/"+room.ID.String()+"/items", bytes.NewReader(body))
	req = withURLParam(req, "id", room.ID.String())
	rr := httptest.NewRecorder()
	env.roomH.AddItem(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	t.Run("geometry change rederives item quantities", func(t *testing.T) {
		body, _ := json.Marshal(domain.UpdateRoomRequest{
			Name:             "Living Room",
			Length:           14,
			Width:            12,
			Height:           8,
			Doors:            1,
			Windows:          1,
			DefaultWallGrade: domain.GradeContractor,
		})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/rooms/"+room.ID.String(), bytes.NewReader(body))
		req = withURLParam(req, "id", room.ID.String())
		rr := httptest.NewRecorder()

		env.roomH.Update(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp domain.RoomDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, float64(14), resp.Length)
		require.Len(t, resp.Items, 1)
		// 2*(14+12)*8 minus one door and one window
		assert.InDelta(t, 380, resp.Items[0].Quantity, 0.001)
	})

	t.Run("rejects malformed ID", func(t *testing.T) {
		body, _ := json.Marshal(domain.UpdateRoomRequest{Name: "Living Room"})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/rooms/oops", bytes.NewReader(body))
		req = withURLParam(req, "id", "oops")
		rr := httptest.NewRecorder()

		env.roomH.Update(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp domain.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid room ID format", resp.Message)
	})
}

func TestRoomHandler_DeleteItem(t *testing.T) {
	env := newHandlerEnv(t)
	seedHandlerWallsCatalog(t, env)
	client := createHandlerTestClient(t, env, "Kari Nordmann")
	project := createHandlerTestProject(t, env, client.ID)
	room := createHandlerTestRoom(t, env, project.ID)

	body, _ := json.Marshal(domain.CreateItemRequest{TemplateID: "tpl_walls"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms/"+room.ID.String()+"/items", bytes.NewReader(body))
	req = withURLParam(req, "id", room.ID.String())
	rr := httptest.NewRecorder()
	env.roomH.AddItem(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var item domain.ItemInstanceDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &item))

	t.Run("deletes line item", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/rooms/"+room.ID.String()+"/items/"+item.ID.String(), nil)
		req = withURLParams(req, map[string]string{
			"id":     room.ID.String(),
			"itemId": item.ID.String(),
		})
		rr := httptest.NewRecorder()

		env.roomH.DeleteItem(rr, req)

		require.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("rejects malformed item ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/rooms/"+room.ID.String()+"/items/oops", nil)
		req = withURLParams(req, map[string]string{
			"id":     room.ID.String(),
			"itemId": "oops",
		})
		rr := httptest.NewRecorder()

		env.roomH.DeleteItem(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
