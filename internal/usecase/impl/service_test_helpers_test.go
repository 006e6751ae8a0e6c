package impl

import (
	"io"
	"log/slog"

	"herbal/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(defaultLimit, maxLimit int) *config.Config {
	return &config.Config{
		Plants: &config.PlantsConfig{
			DefaultLimit: defaultLimit,
			MaxLimit:     maxLimit,
		},
	}
}
