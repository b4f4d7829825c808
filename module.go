package dotconf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/dotconf/config"

	"go.uber.org/fx"
)

// ErrEmptyPath is returned when the store module is given no document path.
var ErrEmptyPath = errors.New("config path must not be empty")

// NewStoreModule creates an Fx module that loads the document at path and provides
// *config.Store. Load errors abort application construction.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewStoreModule(path string, opts ...config.Option) fx.Option {
	if path == "" {
		return fx.Error(ErrEmptyPath)
	}

	return fx.Module("config",
		fx.Provide(func(logger *slog.Logger) (*config.Store, error) {
			storeOpts := append([]config.Option{config.WithLogger(logger)}, opts...)

			return config.Load(path, storeOpts...)
		}),
	)
}

// registerSaveOnStop writes the store back to its file when the application stops.
func registerSaveOnStop(lc fx.Lifecycle, store *config.Store, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			err := store.Save()
			if err != nil {
				logger.Error("saving config on stop", slog.String("path", store.Path()), slog.Any("error", err))

				return fmt.Errorf("saving config on stop: %w", err)
			}

			return nil
		},
	})
}
