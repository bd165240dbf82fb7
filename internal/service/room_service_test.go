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

func TestRoomService_AddItem_DerivesQuantityFromGeometry(t *testing.T) {
	env := newTestEnv(t)
	seedWallsCatalog(t, env)
	client := createTestClient(t, env, "Derive Co")
	project := createTestProject(t, env, client.ID)
	room := createTestRoom(t, env, project.ID)

	item, err := env.rooms.AddItem(context.Background(), room.ID, &domain.CreateItemRequest{
		TemplateID: "tpl_walls",
	})
	require.NoError(t, err)

	// Perimeter 48 ft x 8 ft height, minus one door (21) and one window (15)
	assert.InDelta(t, 348.0, item.Quantity, 0.001)
	assert.Equal(t, "Walls", item.Name)
	assert.Equal(t, domain.GradeContractor, item.Grade)
	assert.Equal(t, 2, item.Coats)

	// 34.8 labor minutes at $50/h, 3 gallons at $35
	assert.InDelta(t, 29.0, item.LaborCost, 0.001)
	assert.InDelta(t, 105.0, item.MaterialCost, 0.001)
	assert.InDelta(t, 176.88, item.TotalPrice, 0.001)

	refreshed, err := env.projects.GetByID(context.Background(), project.ID)
	require.NoError(t, err)
	assert.InDelta(t, 176.88, refreshed.TotalPrice, 0.001)
	assert.InDelta(t, refreshed.TotalPrice, refreshed.TotalCost, 0.001)
}

func TestRoomService_AddItem_ManualQuantityWins(t *testing.T) {
	env := newTestEnv(t)
	seedWallsCatalog(t, env)
	client := createTestClient(t, env, "Manual Co")
	project := createTestProject(t, env, client.ID)
	room := createTestRoom(t, env, project.ID)

	qty := 100.0
	item, err := env.rooms.AddItem(context.Background(), room.ID, &domain.CreateItemRequest{
		TemplateID: "tpl_walls",
		Quantity:   &qty,
	})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, item.Quantity, 0.001)
}

func TestRoomService_AddItem_TemplateNotFound(t *testing.T) {
	env := newTestEnv(t)
	seedWallsCatalog(t, env)
	client := createTestClient(t, env, "Missing Co")
	project := createTestProject(t, env, client.ID)
	room := createTestRoom(t, env, project.ID)

	_, err := env.rooms.AddItem(context.Background(), room.ID, &domain.CreateItemRequest{
		TemplateID: "tpl_nope",
	})
	assert.ErrorIs(t, err, service.ErrTemplateNotFound)
}

func TestRoomService_Update_GeometryChangeReplacesManualQuantity(t *testing.T) {
	env := newTestEnv(t)
	seedWallsCatalog(t, env)
	client := createTestClient(t, env, "Geometry Co")
	project := createTestProject(t, env, client.ID)
	room := createTestRoom(t, env, project.ID)

	qty := 100.0
	_, err := env.rooms.AddItem(context.Background(), room.ID, &domain.CreateItemRequest{
		TemplateID: "tpl_walls",
		Quantity:   &qty,
	})
	require.NoError(t, err)

	// Stretch the room to 14 ft; measurements win over the manual override
	_, err = env.rooms.Update(context.Background(), room.ID, &domain.UpdateRoomRequest{
		Name:             room.Name,
		Length:           14,
		Width:            12,
		Height:           8,
		Doors:            1,
		Windows:          1,
		DefaultWallGrade: domain.GradeContractor,
	})
	require.NoError(t, err)

	after, err := env.rooms.GetByID(context.Background(), room.ID)
	require.NoError(t, err)
	require.Len(t, after.Items, 1)
	// Perimeter 52 ft x 8 ft, minus openings
	assert.InDelta(t, 380.0, after.Items[0].Quantity, 0.001)
}

func TestRoomService_Update_RenameKeepsManualQuantity(t *testing.T) {
	env := newTestEnv(t)
	seedWallsCatalog(t, env)
	client := createTestClient(t, env, "Rename Co")
	project := createTestProject(t, env, client.ID)
	room := createTestRoom(t, env, project.ID)

	qty := 100.0
	_, err := env.rooms.AddItem(context.Background(), room.ID, &domain.CreateItemRequest{
		TemplateID: "tpl_walls",
		Quantity:   &qty,
	})
	require.NoError(t, err)

	_, err = env.rooms.Update(context.Background(), room.ID, &domain.UpdateRoomRequest{
		Name:             "Master Bedroom",
		Length:           12,
		Width:            12,
		Height:           8,
		Doors:            1,
		Windows:          1,
		DefaultWallGrade: domain.GradeContractor,
	})
	require.NoError(t, err)

	after, err := env.rooms.GetByID(context.Background(), room.ID)
	require.NoError(t, err)
	assert.Equal(t, "Master Bedroom", after.Name)
	require.Len(t, after.Items, 1)
	assert.InDelta(t, 100.0, after.Items[0].Quantity, 0.001)
}

func TestRoomService_ExcludedRoomContributesNothing(t *testing.T) {
	env := newTestEnv(t)
	seedWallsCatalog(t, env)
	client := createTestClient(t, env, "Exclude Co")
	project := createTestProject(t, env, client.ID)
	room := createTestRoom(t, env, project.ID)

	_, err := env.rooms.AddItem(context.Background(), room.ID, &domain.CreateItemRequest{
		TemplateID: "tpl_walls",
	})
	require.NoError(t, err)

	excluded := false
	_, err = env.rooms.Update(context.Background(), room.ID, &domain.UpdateRoomRequest{
		Name:             room.Name,
		Length:           12,
		Width:            12,
		Height:           8,
		Doors:            1,
		Windows:          1,
		DefaultWallGrade: domain.GradeContractor,
		Included:         &excluded,
	})
	require.NoError(t, err)

	refreshed, err := env.projects.GetByID(context.Background(), project.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, refreshed.TotalPrice, 0.001)
}

func TestRoomService_DeleteItem_RefreshesTotals(t *testing.T) {
	env := newTestEnv(t)
	seedWallsCatalog(t, env)
	client := createTestClient(t, env, "Delete Co")
	project := createTestProject(t, env, client.ID)
	room := createTestRoom(t, env, project.ID)

	item, err := env.rooms.AddItem(context.Background(), room.ID, &domain.CreateItemRequest{
		TemplateID: "tpl_walls",
	})
	require.NoError(t, err)

	require.NoError(t, env.rooms.DeleteItem(context.Background(), item.ID))

	refreshed, err := env.projects.GetByID(context.Background(), project.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, refreshed.TotalPrice, 0.001)
}

func TestRoomService_Delete_RefreshesTotals(t *testing.T) {
	env := newTestEnv(t)
	seedWallsCatalog(t, env)
	client := createTestClient(t, env, "Room Delete Co")
	project := createTestProject(t, env, client.ID)
	room := createTestRoom(t, env, project.ID)

	_, err := env.rooms.AddItem(context.Background(), room.ID, &domain.CreateItemRequest{
		TemplateID: "tpl_walls",
	})
	require.NoError(t, err)

	require.NoError(t, env.rooms.Delete(context.Background(), room.ID))

	refreshed, err := env.projects.GetByID(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, refreshed.RoomCount)
	assert.InDelta(t, 0.0, refreshed.TotalPrice, 0.001)

	_, err = env.rooms.GetByID(context.Background(), room.ID)
	assert.ErrorIs(t, err, service.ErrRoomNotFound)
}

func TestRoomService_GetByID_NotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.rooms.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrRoomNotFound)
}
