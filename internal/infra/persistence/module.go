// Package persistence selects the alert store and delivery log backends from configuration.
package persistence

import (
	"context"
	"log/slog"

	"sos/config"
	"sos/internal/domain/constants"
	"sos/internal/domain/lifecycle"
	"sos/internal/domain/repository"
	firestorerepo "sos/internal/infra/persistence/firestore"
	"sos/internal/infra/persistence/memory"
	mongorepo "sos/internal/infra/persistence/mongo"
	"sos/internal/infra/persistence/postgres"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *firebase.App `optional:"true"`
}

// NewAlertRepository creates the AlertRepository selected by store.provider.
func NewAlertRepository(params Params) (repository.AlertRepository, error) {
	storeCfg := params.Config.Store
	logger := params.Logger

	switch storeCfg.Provider {
	case "", constants.StoreProviderMemory:
		logger.Info("Using in-memory alert store")

		return memory.NewAlertRepository(), nil

	case constants.StoreProviderFirestore:
		if params.FirebaseApp == nil {
			return nil, errors.New("firebase must be configured for the firestore alert store")
		}

		client, err := params.FirebaseApp.Firestore(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Firestore client")
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		logger.Info("Using Firestore alert store", slog.String("collection", storeCfg.Collection))

		return firestorerepo.NewAlertRepository(client, storeCfg.Collection), nil

	case constants.StoreProviderMongo:
		db, err := connectMongo(params)
		if err != nil {
			return nil, err
		}
		logger.Info("Using MongoDB alert store", slog.String("collection", storeCfg.Collection))

		return mongorepo.NewAlertRepository(db, storeCfg.Collection), nil

	default:
		return nil, errors.Errorf("unknown alert store provider: %s", storeCfg.Provider)
	}
}

func connectMongo(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo uri is required for the mongo alert store")
	}

	client, err := mongo.Connect(params.Ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to MongoDB")
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Ping(ctx, nil), "failed to ping MongoDB")
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	database := cfg.Database
	if database == "" {
		database = params.Config.Env.ServiceName
	}

	return client.Database(database), nil
}

// NewDeliveryLogRepository writes the SMS tracking log to PostgreSQL when configured, in memory otherwise.
func NewDeliveryLogRepository(params Params) (repository.DeliveryLogRepository, error) {
	if params.Config.Postgres == nil {
		params.Logger.Warn("PostgreSQL not configured, keeping delivery logs in memory; use for development only",
			slog.Int("capacity", memory.DeliveryLogCapacity),
		)

		return memory.NewDeliveryLogRepository(), nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lc,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return postgres.NewDeliveryLogRepository(db), nil
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewAlertRepository,
		NewDeliveryLogRepository,
	),
)
