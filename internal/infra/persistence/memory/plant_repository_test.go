package memory

import (
	"context"
	"testing"

	"herbal/internal/domain/entity"
	"herbal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantRepository_ListSortedByName(t *testing.T) {
	repo := NewPlantRepository([]*entity.Plant{
		{ID: uuid.New(), Name: "Valerian"},
		{ID: uuid.New(), Name: "Chamomile"},
		{ID: uuid.New(), Name: "Ginger"},
	})

	plants, err := repo.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, plants, 3)
	assert.Equal(t, "Chamomile", plants[0].Name)
	assert.Equal(t, "Ginger", plants[1].Name)
	assert.Equal(t, "Valerian", plants[2].Name)
}

func TestPlantRepository_ListPaging(t *testing.T) {
	repo := NewPlantRepository(nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		limit  int
		offset int
		want   int
	}{
		{name: "first page", limit: 3, offset: 0, want: 3},
		{name: "tail", limit: 5, offset: 6, want: 2},
		{name: "past end", limit: 5, offset: 100, want: 0},
		{name: "zero limit", limit: 0, offset: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plants, err := repo.List(ctx, tt.limit, tt.offset)
			require.NoError(t, err)
			assert.NotNil(t, plants)
			assert.Len(t, plants, tt.want)
		})
	}
}

func TestPlantRepository_Count(t *testing.T) {
	repo := NewPlantRepository(nil)

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(len(DefaultPlants())), total)
}

func TestPlantRepository_FindByID(t *testing.T) {
	repo := NewPlantRepository(nil)
	ctx := context.Background()
	want := DefaultPlants()[0]

	plant, err := repo.FindByID(ctx, want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.Name, plant.Name)
	assert.Equal(t, want.Uses, plant.Uses)
	assert.False(t, plant.CreatedAt.IsZero())

	plant.Uses[0] = "tampered"
	again, err := repo.FindByID(ctx, want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.Uses[0], again.Uses[0])

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrPlantNotFound)
}
