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

func TestProjectHandler_Create(t *testing.T) {
	env := newHandlerEnv(t)
	client := createHandlerTestClient(t, env, "Kari Nordmann")

	t.Run("creates project with client snapshot", func(t *testing.T) {
		body, _ := json.Marshal(domain.CreateProjectRequest{
			Name:     "Interior Repaint",
			ClientID: client.ID,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		env.projectH.Create(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp domain.ProjectDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Interior Repaint", resp.Name)
		assert.Equal(t, "Kari Nordmann", resp.ClientName)
		assert.Equal(t, domain.ProjectStatusDraft, resp.Status)
		assert.Equal(t, "/api/v1/projects/"+resp.ID.String(), rr.Header().Get("Location"))
	})

	t.Run("returns 404 for unknown client", func(t *testing.T) {
		body, _ := json.Marshal(domain.CreateProjectRequest{
			Name:     "Interior Repaint",
			ClientID: uuid.New(),
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		env.projectH.Create(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)

		var resp domain.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Client not found", resp.Message)
	})

	t.Run("rejects missing client ID", func(t *testing.T) {
		body, _ := json.Marshal(domain.CreateProjectRequest{Name: "Interior Repaint"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		env.projectH.Create(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp domain.APIError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Contains(t, resp.Errors, "clientId")
	})
}

func TestProjectHandler_Lifecycle(t *testing.T) {
	env := newHandlerEnv(t)
	client := createHandlerTestClient(t, env, "Kari Nordmann")
	project := createHandlerTestProject(t, env, client.ID)

	post := func(h http.HandlerFunc, id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+id+"/send", nil)
		req = withURLParam(req, "id", id)
		rr := httptest.NewRecorder()
		h(rr, req)
		return rr
	}

	t.Run("approve from draft is rejected", func(t *testing.T) {
		rr := post(env.projectH.Approve, project.ID.String())
		require.Equal(t, http.StatusConflict, rr.Code)

		var resp domain.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Conflict", resp.Error)
		assert.Equal(t, "Invalid status transition", resp.Message)
	})

	t.Run("draft moves through sent to approved", func(t *testing.T) {
		rr := post(env.projectH.Send, project.ID.String())
		require.Equal(t, http.StatusOK, rr.Code)

		var sent domain.ProjectDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sent))
		assert.Equal(t, domain.ProjectStatusSent, sent.Status)

		rr = post(env.projectH.Approve, project.ID.String())
		require.Equal(t, http.StatusOK, rr.Code)

		var approved domain.ProjectDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &approved))
		assert.Equal(t, domain.ProjectStatusApproved, approved.Status)
	})

	t.Run("reopen returns approved project to draft", func(t *testing.T) {
		rr := post(env.projectH.Reopen, project.ID.String())
		require.Equal(t, http.StatusOK, rr.Code)

		var resp domain.ProjectDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, domain.ProjectStatusDraft, resp.Status)
	})

	t.Run("returns 404 for unknown project", func(t *testing.T) {
		rr := post(env.projectH.Send, uuid.New().String())
		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestProjectHandler_Recalculate(t *testing.T) {
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

	t.Run("reprices project from current catalog", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+project.ID.String()+"/recalculate", nil)
		req = withURLParam(req, "id", project.ID.String())
		rr := httptest.NewRecorder()

		env.projectH.Recalculate(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp domain.ProjectDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.InDelta(t, 176.88, resp.TotalPrice, 0.001)
	})

	t.Run("rejects malformed ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/oops/recalculate", nil)
		req = withURLParam(req, "id", "oops")
		rr := httptest.NewRecorder()

		env.projectH.Recalculate(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp domain.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid project ID format", resp.Message)
	})
}

func TestProjectHandler_Stats(t *testing.T) {
	env := newHandlerEnv(t)
	client := createHandlerTestClient(t, env, "Kari Nordmann")
	createHandlerTestProject(t, env, client.ID)
	createHandlerTestProject(t, env, client.ID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/stats", nil)
	rr := httptest.NewRecorder()

	env.projectH.Stats(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp domain.ProjectStatsDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalProjects)
	assert.Equal(t, 2, resp.DraftCount)
	assert.Equal(t, 0, resp.SentCount)
}

func TestProjectHandler_CreateRoom(t *testing.T) {
	env := newHandlerEnv(t)
	client := createHandlerTestClient(t, env, "Kari Nordmann")
	project := createHandlerTestProject(t, env, client.ID)

	t.Run("creates room and sets Location", func(t *testing.T) {
		body, _ := json.Marshal(domain.CreateRoomRequest{
			Name:   "Kitchen",
			Length: 10,
			Width:  10,
			Height: 8,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+project.ID.String()+"/rooms", bytes.NewReader(body))
		req = withURLParam(req, "id", project.ID.String())
		rr := httptest.NewRecorder()

		env.projectH.CreateRoom(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp domain.RoomDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Kitchen", resp.Name)
		assert.Equal(t, project.ID, resp.ProjectID)
		assert.Equal(t, "/api/v1/rooms/"+resp.ID.String(), rr.Header().Get("Location"))
	})

	t.Run("returns 404 for unknown project", func(t *testing.T) {
		missing := uuid.New().String()
		body, _ := json.Marshal(domain.CreateRoomRequest{Name: "Kitchen"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+missing+"/rooms", bytes.NewReader(body))
		req = withURLParam(req, "id", missing)
		rr := httptest.NewRecorder()

		env.projectH.CreateRoom(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}
