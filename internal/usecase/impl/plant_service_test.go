package impl

import (
	"context"
	"testing"

	"herbal/internal/domain/entity"
	domainerrors "herbal/internal/domain/errors"
	"herbal/internal/domain/repository"
	"herbal/internal/errors"
	"herbal/internal/infra/persistence/memory"
	mockRepo "herbal/internal/mocks/repository"
	"herbal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlantService_ListPlants_Limits(t *testing.T) {
	tests := []struct {
		name      string
		input     *usecase.ListPlantsInput
		wantLimit int
	}{
		{name: "nil input uses default", input: nil, wantLimit: 3},
		{name: "zero limit uses default", input: &usecase.ListPlantsInput{}, wantLimit: 3},
		{name: "explicit limit", input: &usecase.ListPlantsInput{Limit: 2}, wantLimit: 2},
		{name: "limit capped", input: &usecase.ListPlantsInput{Limit: 500}, wantLimit: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockPlantRepository(t)
			srv := NewPlantService(PlantServiceParams{
				PlantRepo: repo,
				Config:    newTestConfig(3, 5),
				Logger:    newDiscardLogger(),
			})

			repo.EXPECT().List(mock.Anything, tt.wantLimit, 0).Return([]*entity.Plant{}, nil).Once()
			repo.EXPECT().Count(mock.Anything).Return(int64(8), nil).Once()

			out, err := srv.ListPlants(context.Background(), tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, out.Limit)
			assert.Equal(t, int64(8), out.Total)
		})
	}
}

func TestPlantService_ListPlants_NegativeOffset(t *testing.T) {
	srv := NewPlantService(PlantServiceParams{
		PlantRepo: mockRepo.NewMockPlantRepository(t),
		Config:    newTestConfig(3, 5),
		Logger:    newDiscardLogger(),
	})

	_, err := srv.ListPlants(context.Background(), &usecase.ListPlantsInput{Offset: -1})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPlantService_ListPlants_RepositoryError(t *testing.T) {
	repo := mockRepo.NewMockPlantRepository(t)
	srv := NewPlantService(PlantServiceParams{PlantRepo: repo, Logger: newDiscardLogger()})
	repoErr := errors.New("db down")

	repo.EXPECT().List(mock.Anything, 50, 0).Return(nil, repoErr).Once()

	_, err := srv.ListPlants(context.Background(), nil)

	assert.ErrorIs(t, err, repoErr)
}

func TestPlantService_ListPlants_Catalog(t *testing.T) {
	srv := NewPlantService(PlantServiceParams{
		PlantRepo: memory.NewPlantRepository(nil),
		Config:    newTestConfig(3, 5),
		Logger:    newDiscardLogger(),
	})

	out, err := srv.ListPlants(context.Background(), &usecase.ListPlantsInput{Offset: 3})

	require.NoError(t, err)
	require.Len(t, out.Plants, 3)
	assert.Equal(t, "Lavender", out.Plants[0].Name)
	assert.Equal(t, 3, out.Offset)
}

func TestPlantService_GetPlant(t *testing.T) {
	repo := mockRepo.NewMockPlantRepository(t)
	srv := NewPlantService(PlantServiceParams{PlantRepo: repo, Logger: newDiscardLogger()})
	ctx := context.Background()
	known := &entity.Plant{ID: uuid.New(), Name: "Ginger"}
	unknownID := uuid.New()

	repo.EXPECT().FindByID(ctx, known.ID).Return(known, nil).Once()
	repo.EXPECT().FindByID(ctx, unknownID).Return(nil, repository.ErrPlantNotFound).Once()

	plant, err := srv.GetPlant(ctx, known.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ginger", plant.Name)

	_, err = srv.GetPlant(ctx, unknownID)
	assert.ErrorIs(t, err, domainerrors.ErrPlantNotFound)
}
