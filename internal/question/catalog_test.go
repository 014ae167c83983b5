package question

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) ListCategories(ctx context.Context) ([]Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Category), args.Error(1)
}

type memoryCategoryCache struct {
	stored []Category
	sets   int
}

func (c *memoryCategoryCache) Get(context.Context) ([]Category, error) {
	return c.stored, nil
}

func (c *memoryCategoryCache) Set(_ context.Context, categories []Category) error {
	c.stored = categories
	c.sets++
	return nil
}

func TestCatalogAllOrdersByID(t *testing.T) {
	store := new(mockCategoryStore)
	store.On("ListCategories", mock.Anything).Return([]Category{{ID: 3, Type: "Geography"}, {ID: 1, Type: "Science"}}, nil)

	catalog := NewCatalog(store, nil, zerolog.Nop())
	got, err := catalog.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Category{{ID: 1, Type: "Science"}, {ID: 3, Type: "Geography"}}, got)
}

func TestCatalogResolve(t *testing.T) {
	store := new(mockCategoryStore)
	store.On("ListCategories", mock.Anything).Return([]Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}, nil)
	catalog := NewCatalog(store, nil, zerolog.Nop())

	cat, err := catalog.Resolve(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Art", cat.Type)

	// Validation follows the stored rows, not a fixed 1..6 range.
	_, err = catalog.Resolve(context.Background(), 6)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = catalog.Resolve(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogStoreFailure(t *testing.T) {
	store := new(mockCategoryStore)
	store.On("ListCategories", mock.Anything).Return([]Category(nil), errors.New("connection refused"))
	catalog := NewCatalog(store, nil, zerolog.Nop())

	_, err := catalog.Resolve(context.Background(), 1)
	assert.ErrorIs(t, err, ErrStore)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestCatalogUsesCache(t *testing.T) {
	store := new(mockCategoryStore)
	store.On("ListCategories", mock.Anything).Return([]Category{{ID: 1, Type: "Science"}}, nil).Once()
	cache := &memoryCategoryCache{}
	catalog := NewCatalog(store, cache, zerolog.Nop())

	_, err := catalog.All(context.Background())
	require.NoError(t, err)
	_, err = catalog.Resolve(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, cache.sets)
	store.AssertNumberOfCalls(t, "ListCategories", 1)
}

func TestCatalogResolveRefreshesStaleCache(t *testing.T) {
	store := new(mockCategoryStore)
	store.On("ListCategories", mock.Anything).Return([]Category{{ID: 1, Type: "Science"}, {ID: 7, Type: "Music"}}, nil)
	cache := &memoryCategoryCache{stored: []Category{{ID: 1, Type: "Science"}}}
	catalog := NewCatalog(store, cache, zerolog.Nop())

	cat, err := catalog.Resolve(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Music", cat.Type)
	assert.Len(t, cache.stored, 2)
}
