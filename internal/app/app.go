// Package app assembles the fx dependency graph of the HTTP server.
package app

import (
	"context"
	"log/slog"

	"herbal/config"
	"herbal/internal/delivery"
	"herbal/internal/delivery/api"
	"herbal/internal/delivery/api/router/handler"
	"herbal/internal/domain/repository"
	"herbal/internal/infra/auth"
	logs "herbal/internal/infra/log"
	"herbal/internal/infra/persistence/memory"
	"herbal/internal/infra/persistence/postgres"
	"herbal/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

// Options returns the server graph for cfg. The storage driver decides which
// repositories are provided.
func Options(cfg *config.Config) fx.Option {
	return fx.Options(
		injectInfra(cfg),
		injectRepo(cfg),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	)
}

func injectInfra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
		),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			fxLogger := &fxevent.SlogLogger{Logger: logger}
			fxLogger.UseLogLevel(slog.LevelDebug)

			return fxLogger
		}),
	)
}

func injectRepo(cfg *config.Config) fx.Option {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		return fx.Provide(
			memory.NewAccountRepository,
			newMemoryPlantRepository,
		)
	}

	return fx.Provide(
		postgres.New,
		postgres.NewAccountRepository,
		postgres.NewPlantRepository,
	)
}

func newMemoryPlantRepository() repository.PlantRepository {
	return memory.NewPlantRepository(nil)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewBcryptHasher,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewCredentialService,
		impl.NewPlantService,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewCredentialHandler,
		handler.NewPlantHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

// startServer launches every delivery once the other start hooks have run.
func startServer(params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(context.Background()); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
					}
				}()
			}

			return nil
		},
	})
}
