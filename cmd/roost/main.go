package main

import (
	"context"
	"log/slog"
	"os"

	"roost/config"
	"roost/internal/delivery"
	"roost/internal/delivery/http"
	"roost/internal/delivery/http/middleware"
	"roost/internal/delivery/http/router/handler"
	"roost/internal/delivery/worker"
	"roost/internal/domain/service"
	"roost/internal/infra/auth"
	"roost/internal/infra/auth/backend"
	"roost/internal/infra/auth/facebook"
	"roost/internal/infra/clock"
	"roost/internal/infra/crypto"
	logs "roost/internal/infra/log"
	"roost/internal/infra/persistence/postgres"
	"roost/internal/infra/pubsub"
	"roost/internal/infra/qrcode"
	"roost/internal/infra/sessionstore"
	"roost/internal/usecase"
	"roost/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			bootstrapSessions,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewConnectionRepository,
			postgres.NewHandoffRepository,
			postgres.NewDeletionRequestRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		sessionstore.Module,
		pubsub.Module,
		fx.Provide(
			clock.New,
			backend.New,
			facebook.New,
			newTokenService,
			newTokenCipher,
			newQRCodeService,
		),
	)
}

// newTokenService builds the optional local token verifier. Without
// the shared signing secret the backend client resolves every user
// check against the auth service instead.
func newTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.AuthBackend == nil || cfg.AuthBackend.JWTSecret == "" {
		return nil, nil
	}

	return auth.NewTokenService(cfg)
}

// newTokenCipher creates the cipher sealing stored access tokens.
// Nothing can seal or open tokens without the key, so a missing key is
// a boot error rather than a degraded mode.
func newTokenCipher(cfg *config.Config) (service.TokenCipher, error) {
	if cfg.TokenCipher == nil || cfg.TokenCipher.Key == "" {
		return nil, errors.New("tokenCipher.key is required")
	}

	return crypto.NewTokenCipher(cfg.TokenCipher.Key)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewConnectionService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPageHandler,
			handler.NewConnectionHandler,
			handler.NewDeletionHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewJanitor,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

type bootstrapParams struct {
	fx.In
	fx.Lifecycle

	SessionUC usecase.SessionUsecase
}

// bootstrapSessions force-signs-out every stored session before the
// server takes requests, and stops the session managers on shutdown.
func bootstrapSessions(ctx context.Context, params bootstrapParams) error {
	if err := params.SessionUC.Bootstrap(ctx); err != nil {
		return err
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.SessionUC.Close()

			return nil
		},
	})

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
