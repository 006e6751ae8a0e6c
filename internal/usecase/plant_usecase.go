package usecase

import (
	"context"

	"herbal/internal/domain/entity"

	"github.com/google/uuid"
)

// ListPlantsInput pages through the catalog. Zero Limit selects the configured default.
type ListPlantsInput struct {
	Limit  int `query:"limit" validate:"gte=0"`
	Offset int `query:"offset" validate:"gte=0"`
}

// ListPlantsOutput is one page of the catalog plus its total size.
type ListPlantsOutput struct {
	Plants []*entity.Plant `json:"plants"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// PlantUsecase serves the read-only plant catalog.
type PlantUsecase interface {
	ListPlants(ctx context.Context, input *ListPlantsInput) (*ListPlantsOutput, error)
	GetPlant(ctx context.Context, id uuid.UUID) (*entity.Plant, error)
}
