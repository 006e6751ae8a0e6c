package postgres

import (
	"context"

	"herbal/internal/domain/entity"
	"herbal/internal/domain/repository"
	"herbal/internal/errors"
	"herbal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// plantRepository implements repository.PlantRepository using GORM.
type plantRepository struct {
	db *gorm.DB
}

// NewPlantRepository is the constructor for plantRepository.
func NewPlantRepository(db *gorm.DB) repository.PlantRepository {
	return &plantRepository{db: db}
}

func (repo *plantRepository) List(ctx context.Context, limit, offset int) ([]*entity.Plant, error) {
	var plantMs []model.PlantModel
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&plantMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plants")
	}

	plants := make([]*entity.Plant, 0, len(plantMs))
	for i := range plantMs {
		plants = append(plants, toPlantDomain(&plantMs[i]))
	}

	return plants, nil
}

func (repo *plantRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.PlantModel{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count plants")
	}

	return total, nil
}

func (repo *plantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error) {
	var plantM model.PlantModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&plantM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlantNotFound
		}

		return nil, errors.Wrap(err, "failed to find plant by id")
	}

	return toPlantDomain(&plantM), nil
}

func toPlantDomain(plantM *model.PlantModel) *entity.Plant {
	uses := plantM.Uses
	if uses == nil {
		uses = []string{}
	}

	return &entity.Plant{
		ID:             plantM.ID,
		Name:           plantM.Name,
		ScientificName: plantM.ScientificName,
		Description:    plantM.Description,
		Uses:           uses,
		CreatedAt:      plantM.CreatedAt,
	}
}
