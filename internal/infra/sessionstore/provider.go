// Package sessionstore persists backend session blobs under the fixed
// sb-auth-token key prefix. Stores never return errors: a read that
// fails for any reason behaves like a missing session, which leaves the
// user signed out rather than wedged.
package sessionstore

import (
	"context"
	"log/slog"

	"roost/config"
	"roost/internal/domain/constants"
	"roost/internal/domain/lifecycle"
	"roost/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the session store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New creates a SessionStore based on configuration
func New(params StoreParams) (service.SessionStore, error) {
	cfg := params.Config.SessionStore
	logger := params.Logger

	// Without configuration sessions live only as long as the process.
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Session store not configured, using in-memory store")

		return NewMemoryStore(logger), nil
	}

	switch cfg.Provider {
	case constants.SessionStoreProviderMemory:
		return NewMemoryStore(logger), nil

	case constants.SessionStoreProviderFile:
		if cfg.Path == "" {
			return nil, errors.New("path is required for file provider")
		}
		logger.Info("Using file session store",
			slog.String("path", cfg.Path),
		)

		return NewFileStore(cfg.Path, logger)

	case constants.SessionStoreProviderRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		logger.Info("Using redis session store",
			slog.String("addr", cfg.Redis.Addr),
		)

		store := NewRedisStore(cfg.Redis, logger)

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				defer cancel()

				return store.Ping(pingCtx)
			},
			OnStop: func(context.Context) error {
				return store.Close()
			},
		})

		return store, nil

	default:
		return nil, errors.Errorf("unknown session store provider: %s", cfg.Provider)
	}
}

// Module provides the session store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
