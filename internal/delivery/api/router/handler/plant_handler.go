package handler

import (
	"net/http"

	"herbal/internal/delivery/api/response"
	domainerrors "herbal/internal/domain/errors"
	"herbal/internal/errors"
	"herbal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PlantHandler serves the read-only plant catalog.
type PlantHandler struct {
	uc usecase.PlantUsecase
}

// NewPlantHandler is the constructor for PlantHandler, injected by Fx.
func NewPlantHandler(uc usecase.PlantUsecase) *PlantHandler {
	return &PlantHandler{uc: uc}
}

// ListPlants handles GET /plants?limit=&offset=.
func (h *PlantHandler) ListPlants(c echo.Context) error {
	input := new(usecase.ListPlantsInput)
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("limit and offset must be integers")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.ListPlants(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// GetPlant handles GET /plants/:id.
func (h *PlantHandler) GetPlant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidPlantID
	}

	plant, err := h.uc.GetPlant(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plant)
}
