package question

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// CategoryCache holds the category list between store reads. Get returns
// nil, nil on a miss.
type CategoryCache interface {
	Get(ctx context.Context) ([]Category, error)
	Set(ctx context.Context, categories []Category) error
}

type categoryLister interface {
	ListCategories(ctx context.Context) ([]Category, error)
}

// Catalog resolves category ids against the categories held by the store.
type Catalog struct {
	store  categoryLister
	cache  CategoryCache
	logger zerolog.Logger
}

// NewCatalog builds a catalog. cache may be nil.
func NewCatalog(store categoryLister, cache CategoryCache, logger zerolog.Logger) *Catalog {
	return &Catalog{
		store:  store,
		cache:  cache,
		logger: logger.With().Str("component", "category_catalog").Logger(),
	}
}

// All returns every category ordered by id.
func (c *Catalog) All(ctx context.Context) ([]Category, error) {
	return c.load(ctx, true)
}

// Resolve returns the category with the given id or ErrNotFound.
func (c *Catalog) Resolve(ctx context.Context, id int) (Category, error) {
	if id < 1 {
		return Category{}, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	categories, err := c.load(ctx, true)
	if err != nil {
		return Category{}, err
	}
	if cat, ok := find(categories, id); ok {
		return cat, nil
	}
	if c.cache != nil {
		// The cached list may predate a newly added category.
		categories, err = c.load(ctx, false)
		if err != nil {
			return Category{}, err
		}
		if cat, ok := find(categories, id); ok {
			return cat, nil
		}
	}
	return Category{}, fmt.Errorf("category %d: %w", id, ErrNotFound)
}

// Refresh reloads categories from the store, bypassing and then
// repopulating the cache.
func (c *Catalog) Refresh(ctx context.Context) ([]Category, error) {
	return c.load(ctx, false)
}

func (c *Catalog) load(ctx context.Context, useCache bool) ([]Category, error) {
	if useCache && c.cache != nil {
		cached, err := c.cache.Get(ctx)
		if err != nil {
			c.logger.Warn().Err(err).Msg("category cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	categories, err := c.store.ListCategories(ctx)
	if err != nil {
		return nil, storeErr("list categories", err)
	}
	categories = slices.Clone(categories)
	slices.SortFunc(categories, func(a, b Category) int { return cmp.Compare(a.ID, b.ID) })

	if c.cache != nil {
		if err := c.cache.Set(ctx, categories); err != nil {
			c.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

func find(categories []Category, id int) (Category, bool) {
	i, ok := slices.BinarySearchFunc(categories, id, func(c Category, id int) int { return cmp.Compare(c.ID, id) })
	if !ok {
		return Category{}, false
	}
	return categories[i], true
}
