package question

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CatalogWarmer periodically reloads the category list from the store so
// the category cache is refreshed ahead of requests.
type CatalogWarmer struct {
	catalog  *Catalog
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger
}

const defaultRefreshInterval = time.Minute

// NewCatalogWarmer builds a warmer. A non-positive interval falls back to
// one minute.
func NewCatalogWarmer(catalog *Catalog, interval, timeout time.Duration, logger zerolog.Logger) *CatalogWarmer {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if timeout <= 0 {
		timeout = 4 * time.Second
	}
	return &CatalogWarmer{
		catalog:  catalog,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With().Str("component", "catalog_warmer").Logger(),
	}
}

// Run refreshes once immediately, then every interval until ctx is done.
func (w *CatalogWarmer) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("catalog warmer stopping")
			return ctx.Err()
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CatalogWarmer) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	categories, err := w.catalog.Refresh(ctx)
	if err != nil {
		w.logger.Warn().Err(err).Msg("category refresh failed")
		return
	}
	w.logger.Debug().Int("categories", len(categories)).Msg("category cache refreshed")
}
