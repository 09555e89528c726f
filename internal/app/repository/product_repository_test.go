package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Create_AppliesPlaceholderImage(t *testing.T) {
	testDB := setupTestDB(t)
	fixture := seedCatalog(t, testDB)
	repo := NewProductRepository(testDB)

	product := &model.Product{
		StoreID:    fixture.Store.ID,
		CategoryID: fixture.Category.ID,
		Name:       "Laptop",
		Price:      decimal.RequireFromString("999.99"),
		Available:  true,
	}
	require.NoError(t, repo.Create(product))

	found, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultImageKey, found.Image)
	assert.Equal(t, fixture.Store.Name, found.Store.Name)
	assert.Equal(t, fixture.Category.Name, found.Category.Name)
}

func TestProductRepository_FindWithFilter(t *testing.T) {
	testDB := setupTestDB(t)
	fixture := seedCatalog(t, testDB)
	repo := NewProductRepository(testDB)

	products := []*model.Product{
		{
			StoreID: fixture.Store.ID, CategoryID: fixture.Category.ID,
			Name: "Budget Phone", Price: decimal.RequireFromString("99.00"),
			Available: true, Digital: boolPtr(false),
		},
		{
			StoreID: fixture.Store.ID, CategoryID: fixture.Category.ID,
			Name: "Flagship Phone", Price: decimal.RequireFromString("899.00"),
			Available: true, Digital: boolPtr(false),
		},
		{
			StoreID: fixture.Store.ID, CategoryID: fixture.Category.ID,
			Name: "Ringtone Pack", Price: decimal.RequireFromString("1.99"),
			Available: false, Digital: boolPtr(true),
		},
	}
	for _, p := range products {
		require.NoError(t, repo.Create(p))
	}

	t.Run("by store", func(t *testing.T) {
		found, err := repo.FindWithFilter(ProductFilter{StoreID: uintPtr(fixture.Store.ID)})
		require.NoError(t, err)
		assert.Len(t, found, 3)
	})

	t.Run("available only", func(t *testing.T) {
		found, err := repo.FindWithFilter(ProductFilter{Available: boolPtr(true)})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("digital only", func(t *testing.T) {
		found, err := repo.FindWithFilter(ProductFilter{Digital: boolPtr(true)})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Ringtone Pack", found[0].Name)
	})

	t.Run("name search", func(t *testing.T) {
		found, err := repo.FindWithFilter(ProductFilter{Search: "Phone"})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("sorted by price ascending", func(t *testing.T) {
		found, err := repo.FindWithFilter(ProductFilter{
			SortBy:        ProductSortPrice,
			SortAscending: true,
		})
		require.NoError(t, err)
		require.Len(t, found, 3)
		assert.Equal(t, "Ringtone Pack", found[0].Name)
		assert.Equal(t, "Flagship Phone", found[2].Name)
	})

	t.Run("limit and offset", func(t *testing.T) {
		found, err := repo.FindWithFilter(ProductFilter{
			SortBy:        ProductSortPrice,
			SortAscending: true,
			Limit:         1,
			Offset:        1,
		})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Budget Phone", found[0].Name)
	})
}

func TestProductRepository_UpdateStock(t *testing.T) {
	testDB := setupTestDB(t)
	fixture := seedCommerce(t, testDB)
	repo := NewProductRepository(testDB)

	require.NoError(t, repo.UpdateStock(fixture.Product.ID, -4))

	found, err := repo.FindByID(fixture.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(6), found.Stock)

	require.NoError(t, repo.UpdateStock(fixture.Product.ID, 10))
	found, err = repo.FindByID(fixture.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(16), found.Stock)
}

func TestProductVariantRepository_UpdateStock(t *testing.T) {
	testDB := setupTestDB(t)
	fixture := seedCommerce(t, testDB)
	repo := NewProductVariantRepository(testDB)

	require.NoError(t, repo.UpdateStock(fixture.Variant.ID, -3))

	found, err := repo.FindByID(fixture.Variant.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(7), found.Stock)
	assert.Equal(t, fixture.Product.Name, found.Product.Name)
}

func TestProductRepository_FindByID_IncludesVariants(t *testing.T) {
	testDB := setupTestDB(t)
	fixture := seedCommerce(t, testDB)
	repo := NewProductRepository(testDB)

	found, err := repo.FindByID(fixture.Product.ID)
	require.NoError(t, err)
	require.Len(t, found.Variants, 1)
	assert.Equal(t, "128GB", found.Variants[0].Name)
}
