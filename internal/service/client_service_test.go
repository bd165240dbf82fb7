package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propaint/estimate-api/internal/domain"
	"github.com/propaint/estimate-api/internal/service"
)

func TestClientService_CreateAndGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := createTestClient(t, env, "Anders Berg")
	project := createTestProject(t, env, created.ID)

	found, err := env.clients.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anders Berg", found.Name)
	assert.Equal(t, "owner@example.com", found.Email)
	assert.Equal(t, 1, found.ProjectCount)
	require.Len(t, found.Projects, 1)
	assert.Equal(t, project.ID, found.Projects[0].ID)
}

func TestClientService_GetByID_NotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.clients.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrClientNotFound)
}

func TestClientService_Update_RefreshesProjectSnapshot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := createTestClient(t, env, "Old Name")
	project := createTestProject(t, env, client.ID)

	_, err := env.clients.Update(ctx, client.ID, &domain.UpdateClientRequest{
		Name:  "New Name",
		Email: "new@example.com",
	})
	require.NoError(t, err)

	refreshed, err := env.projects.GetByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", refreshed.ClientName)
}

func TestClientService_List_Search(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	createTestClient(t, env, "Kari Nordmann")
	createTestClient(t, env, "Ola Hansen")

	results, total, err := env.clients.List(ctx, 1, 20, "kari")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, "Kari Nordmann", results[0].Name)

	_, total, err = env.clients.List(ctx, 1, 20, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestClientService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := createTestClient(t, env, "Ephemeral Co")
	require.NoError(t, env.clients.Delete(ctx, client.ID))

	_, err := env.clients.GetByID(ctx, client.ID)
	assert.ErrorIs(t, err, service.ErrClientNotFound)
}

func TestClientService_Delete_WithProjects(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := createTestClient(t, env, "Busy Co")
	createTestProject(t, env, client.ID)

	err := env.clients.Delete(ctx, client.ID)
	assert.ErrorIs(t, err, service.ErrClientHasProjects)
}
