package impl

import (
	"context"
	"log/slog"

	"herbal/config"
	deliverycontext "herbal/internal/delivery/context"
	"herbal/internal/domain/entity"
	domainerrors "herbal/internal/domain/errors"
	"herbal/internal/domain/repository"
	"herbal/internal/errors"
	"herbal/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type plantService struct {
	plantRepo    repository.PlantRepository
	validate     *validator.Validate
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// PlantServiceParams holds dependencies for PlantService, injected by Fx.
type PlantServiceParams struct {
	fx.In

	PlantRepo repository.PlantRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPlantService is the constructor for plantService.
func NewPlantService(params PlantServiceParams) usecase.PlantUsecase {
	defaultLimit, maxLimit := 50, 200
	if params.Config != nil && params.Config.Plants != nil {
		defaultLimit = params.Config.Plants.DefaultLimit
		maxLimit = params.Config.Plants.MaxLimit
	}

	return &plantService{
		plantRepo:    params.PlantRepo,
		validate:     validator.New(),
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       params.Logger,
	}
}

func (srv *plantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPlants returns one page of the catalog ordered by name.
func (srv *plantService) ListPlants(ctx context.Context, input *usecase.ListPlantsInput) (*usecase.ListPlantsOutput, error) {
	if input == nil {
		input = &usecase.ListPlantsInput{}
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("limit and offset must not be negative")
	}

	limit := input.Limit
	if limit == 0 {
		limit = srv.defaultLimit
	}
	limit = min(limit, srv.maxLimit)

	plants, err := srv.plantRepo.List(ctx, limit, input.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plants")
	}

	total, err := srv.plantRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count plants")
	}

	srv.log(ctx).Debug("Listed plants", slog.Int("count", len(plants)), slog.Int64("total", total))

	return &usecase.ListPlantsOutput{
		Plants: plants,
		Total:  total,
		Limit:  limit,
		Offset: input.Offset,
	}, nil
}

// GetPlant returns a single catalog entry.
func (srv *plantService) GetPlant(ctx context.Context, id uuid.UUID) (*entity.Plant, error) {
	plant, err := srv.plantRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPlantNotFound) {
		return nil, domainerrors.ErrPlantNotFound.WrapMessage("get plant")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find plant")
	}

	return plant, nil
}
