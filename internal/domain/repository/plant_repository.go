package repository

import (
	"context"
	"errors"

	"herbal/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPlantNotFound is returned when a plant id does not exist in the catalog.
var ErrPlantNotFound = errors.New("plant not found")

// PlantRepository reads the plant catalog.
type PlantRepository interface {
	// List returns plants ordered by name.
	List(ctx context.Context, limit, offset int) ([]*entity.Plant, error)

	// Count returns the size of the catalog.
	Count(ctx context.Context) (int64, error)

	// FindByID returns one plant or ErrPlantNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error)
}
