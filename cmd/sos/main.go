package main

import (
	"context"
	"log/slog"
	"os"

	"sos/config"
	"sos/internal/delivery"
	"sos/internal/delivery/http"
	"sos/internal/delivery/http/middleware"
	"sos/internal/delivery/http/router/handler"
	"sos/internal/domain/service"
	"sos/internal/infra/auth"
	"sos/internal/infra/cache"
	"sos/internal/infra/device"
	"sos/internal/infra/dispatch"
	"sos/internal/infra/firebase"
	"sos/internal/infra/geocode"
	logs "sos/internal/infra/log"
	"sos/internal/infra/persistence"
	"sos/internal/infra/pubsub"
	"sos/internal/infra/sms"
	"sos/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			func() service.Clock { return service.SystemClock{} },
			func() service.Sleeper { return service.Sleep },
		),
		firebase.Module,
	)
}

func injectRepo() fx.Option {
	return persistence.Module
}

func injectService() fx.Option {
	return fx.Options(
		cache.Module,
		geocode.Module,
		sms.Module,
		dispatch.Module,
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			device.NewContextLocator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationResolver,
			impl.NewNotificationGateway,
			impl.NewDispatchConnector,
			impl.NewAlertStore,
			impl.NewAlertOrchestrator,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAlertHandler,
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
		),
	)
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
