package db

import (
	"context"
	"fmt"

	"libros/config"
	"libros/models"

	"go.uber.org/zap"
)

// NewLibrary builds the store selected by LIBRARY_BACKEND. The returned
// close function releases its connections.
func NewLibrary(ctx context.Context, cfg *config.Config, logger *zap.Logger) (models.Library, func(), error) {
	switch cfg.Library.Backend {
	case config.BackendMongo:
		client, collection, err := config.SetupMongo(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}

		logger.Info("connected to mongo",
			zap.String("database", cfg.Mongo.Database),
			zap.String("collection", cfg.Mongo.Collection))

		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Error("can not disconnect from mongo", zap.Error(err))
			}
		}

		return NewMongoLibrary(collection), closeFn, nil

	case config.BackendElastic:
		client, err := config.SetupElasticSearch(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("can not create elastic client: %w", err)
		}

		logger.Info("connected to elasticsearch", zap.String("index", cfg.Elastic.Index))

		return NewElasticLibrary(cfg.Elastic.Index, client), client.Stop, nil

	case config.BackendMemory:
		logger.Warn("using in-memory library, books are lost on restart")

		return NewMemoryLibrary(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Library.Backend)
	}
}
