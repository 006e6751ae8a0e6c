// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"herbal/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CredentialHandler *handler.CredentialHandler
	PlantHandler      *handler.PlantHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	credentialHandler *handler.CredentialHandler
	plantHandler      *handler.PlantHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		credentialHandler: params.CredentialHandler,
		plantHandler:      params.PlantHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/register", r.credentialHandler.Register)
	e.POST("/login", r.credentialHandler.Login)

	plantsGroup := e.Group("/plants")
	{
		plantsGroup.GET("", r.plantHandler.ListPlants)
		plantsGroup.GET("/:id", r.plantHandler.GetPlant)
	}
}
