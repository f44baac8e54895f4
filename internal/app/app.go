package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/roto-draft/internal/config"
	"github.com/riskibarqy/roto-draft/internal/infrastructure/dataset"
	"github.com/riskibarqy/roto-draft/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/roto-draft/internal/platform/cache"
	"github.com/riskibarqy/roto-draft/internal/platform/logging"
	"github.com/riskibarqy/roto-draft/internal/usecase"
)

// Services bundles the query services over one loaded dataset.
type Services struct {
	Players   *usecase.PlayerService
	Analytics *usecase.AnalyticsService
	Draft     *usecase.DraftService
	Dataset   dataset.Dataset
}

func NewSource(cfg config.Config) dataset.Source {
	if cfg.DataSource == config.DataSourceHTTP {
		return dataset.NewHTTPSource(cfg.DataBaseURL, cfg.DataFetchTimeout, nil)
	}
	return dataset.NewFileSource(cfg.DataDir)
}

func NewLoader(cfg config.Config, source dataset.Source, logger *logging.Logger) *dataset.Loader {
	return dataset.NewLoader(source, dataset.DocumentNames{
		Master:     cfg.DataMasterFile,
		Historical: cfg.DataHistoricalFile,
		ADP:        cfg.DataADPFile,
		Buckets:    cfg.DataBucketsFile,
	}, logger)
}

// NewServices loads the dataset once and wires the services over it. A load
// failure is reported as ErrDependencyUnavailable.
func NewServices(ctx context.Context, cfg config.Config, loader *dataset.Loader, logger *logging.Logger) (*Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	ds, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load dataset: %w", usecase.ErrDependencyUnavailable, err)
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL, cfg.CacheMaxEntries)
	}

	playerRepo := memory.NewPlayerRepository(ds.Ordered())
	analyticsSvc := usecase.NewAnalyticsService(playerRepo, store, logger.Named("analytics"))

	return &Services{
		Players:   usecase.NewPlayerService(playerRepo),
		Analytics: analyticsSvc,
		Draft:     usecase.NewDraftService(playerRepo, analyticsSvc),
		Dataset:   ds,
	}, nil
}
