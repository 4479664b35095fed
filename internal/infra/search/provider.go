// Package search keeps the full-text book index used by the catalog search endpoint.
package search

import (
	"context"
	"io"
	"log/slog"

	"madr/config"
	"madr/internal/domain/entity"
	"madr/internal/domain/lifecycle"
	"madr/internal/domain/service"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopIndex is used when search is disabled. Writes are dropped and queries
// report ErrSearchUnavailable so callers fall back to the database.
type noopIndex struct{}

// NewNoopIndex returns a CatalogIndex that indexes nothing.
func NewNoopIndex() service.CatalogIndex {
	return noopIndex{}
}

func (noopIndex) IndexBook(context.Context, *entity.Book) error { return nil }

func (noopIndex) RemoveBook(context.Context, uuid.UUID) error { return nil }

func (noopIndex) SearchBooks(context.Context, string, entity.Page) ([]uuid.UUID, error) {
	return nil, service.ErrSearchUnavailable
}

// IndexParams holds dependencies for CatalogIndex, injected by Fx
type IndexParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCatalogIndex creates a CatalogIndex based on configuration
func NewCatalogIndex(params IndexParams) (service.CatalogIndex, error) {
	cfg := params.Config.Search
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("Search not enabled, using no-op catalog index")

		return NewNoopIndex(), nil
	}

	if len(cfg.Addresses) == 0 {
		return nil, errors.New("at least one address is required when search is enabled")
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Elasticsearch client")
	}

	logger.Info("Using Elasticsearch catalog index",
		slog.Any("addresses", cfg.Addresses),
		slog.String("index", cfg.Index),
	)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// An unreachable cluster degrades search to the database fallback.
			res, err := client.Info(client.Info.WithContext(ctx))
			if err != nil {
				logger.Warn("Elasticsearch is not reachable", slog.Any("error", err))

				return nil
			}
			defer res.Body.Close()
			_, _ = io.Copy(io.Discard, res.Body)

			if res.IsError() {
				logger.Warn("Elasticsearch info request failed", slog.String("status", res.Status()))
			}

			return nil
		},
	})

	return NewElasticIndex(client, cfg.Index), nil
}

// Module provides the search FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCatalogIndex),
)
