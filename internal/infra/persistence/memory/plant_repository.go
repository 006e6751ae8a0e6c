package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"herbal/internal/domain/entity"
	"herbal/internal/domain/repository"

	"github.com/google/uuid"
)

// seedCreatedAt matches the timestamp written by the plants seed migration.
var seedCreatedAt = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultPlants is the catalog served when no database is configured.
// IDs are shared with the seed migration.
func DefaultPlants() []*entity.Plant {
	return []*entity.Plant{
		{
			ID:             uuid.MustParse("0b6f5f4e-1c1a-4d55-9a53-6a8f1f0e0001"),
			Name:           "Chamomile",
			ScientificName: "Matricaria chamomilla",
			Description:    "Daisy-like flower dried for a mild, apple-scented tea.",
			Uses:           []string{"sleep", "digestion", "skin irritation"},
		},
		{
			ID:             uuid.MustParse("0b6f5f4e-1c1a-4d55-9a53-6a8f1f0e0002"),
			Name:           "Echinacea",
			ScientificName: "Echinacea purpurea",
			Description:    "Purple coneflower whose root and aerial parts are taken at the onset of colds.",
			Uses:           []string{"immune support", "colds"},
		},
		{
			ID:             uuid.MustParse("0b6f5f4e-1c1a-4d55-9a53-6a8f1f0e0003"),
			Name:           "Ginger",
			ScientificName: "Zingiber officinale",
			Description:    "Pungent rhizome used fresh, dried, or as tea.",
			Uses:           []string{"nausea", "digestion", "inflammation"},
		},
		{
			ID:             uuid.MustParse("0b6f5f4e-1c1a-4d55-9a53-6a8f1f0e0004"),
			Name:           "Lavender",
			ScientificName: "Lavandula angustifolia",
			Description:    "Aromatic shrub whose flowers are used in oils and infusions.",
			Uses:           []string{"anxiety", "sleep", "aromatherapy"},
		},
		{
			ID:             uuid.MustParse("0b6f5f4e-1c1a-4d55-9a53-6a8f1f0e0005"),
			Name:           "Lemon Balm",
			ScientificName: "Melissa officinalis",
			Description:    "Lemon-scented mint family herb brewed as a calming tea.",
			Uses:           []string{"anxiety", "sleep", "cold sores"},
		},
		{
			ID:             uuid.MustParse("0b6f5f4e-1c1a-4d55-9a53-6a8f1f0e0006"),
			Name:           "Peppermint",
			ScientificName: "Mentha x piperita",
			Description:    "Hybrid mint with a high menthol content.",
			Uses:           []string{"digestion", "headache", "congestion"},
		},
		{
			ID:             uuid.MustParse("0b6f5f4e-1c1a-4d55-9a53-6a8f1f0e0007"),
			Name:           "Turmeric",
			ScientificName: "Curcuma longa",
			Description:    "Golden rhizome rich in curcumin, used as spice and remedy.",
			Uses:           []string{"inflammation", "joint pain", "digestion"},
		},
		{
			ID:             uuid.MustParse("0b6f5f4e-1c1a-4d55-9a53-6a8f1f0e0008"),
			Name:           "Valerian",
			ScientificName: "Valeriana officinalis",
			Description:    "Perennial whose strong-smelling root is taken as a sedative.",
			Uses:           []string{"sleep", "anxiety"},
		},
	}
}

// plantRepository is an immutable catalog sorted by name.
type plantRepository struct {
	plants []entity.Plant
}

// NewPlantRepository creates a read-only store over plants. Nil plants selects DefaultPlants.
func NewPlantRepository(plants []*entity.Plant) repository.PlantRepository {
	if plants == nil {
		plants = DefaultPlants()
	}

	catalog := make([]entity.Plant, 0, len(plants))
	for _, plant := range plants {
		p := *plant
		p.Uses = slices.Clone(plant.Uses)
		if p.CreatedAt.IsZero() {
			p.CreatedAt = seedCreatedAt
		}
		catalog = append(catalog, p)
	}
	slices.SortFunc(catalog, func(a, b entity.Plant) int {
		return strings.Compare(a.Name, b.Name)
	})

	return &plantRepository{plants: catalog}
}

func (repo *plantRepository) List(ctx context.Context, limit, offset int) ([]*entity.Plant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]*entity.Plant, 0)
	if offset >= len(repo.plants) || limit <= 0 {
		return result, nil
	}

	end := min(offset+limit, len(repo.plants))
	for i := offset; i < end; i++ {
		result = append(result, clonePlant(repo.plants[i]))
	}

	return result, nil
}

func (repo *plantRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return int64(len(repo.plants)), nil
}

func (repo *plantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, plant := range repo.plants {
		if plant.ID == id {
			return clonePlant(plant), nil
		}
	}

	return nil, repository.ErrPlantNotFound
}

func clonePlant(plant entity.Plant) *entity.Plant {
	plant.Uses = slices.Clone(plant.Uses)

	return &plant
}
