package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/halmos/timely/internal/application/history"
	"github.com/halmos/timely/internal/domain"
	"github.com/halmos/timely/internal/infrastructure/cache"
	"github.com/halmos/timely/internal/infrastructure/config"
	"github.com/halmos/timely/internal/infrastructure/wiki"
	"github.com/halmos/timely/internal/pkg/logger"
	"github.com/halmos/timely/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	HistoryService *history.Service
	Cache          ports.CacheRepository
	Logger         ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	ttl, err := time.ParseDuration(cfg.CacheTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid cache_ttl %q: %w", cfg.CacheTTL, err)
	}

	log := logger.New(os.Stderr, verbose)
	store := cache.NewMemoryCache(ttl)
	source := wiki.NewClient(cfg.APIBase)

	historyService := &history.Service{
		Source: source,
		Cache:  store,
		Logger: log,
	}

	return &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		HistoryService: historyService,
		Cache:          store,
		Logger:         log,
	}, nil
}
