package service

import (
	"testing"

	"github.com/storelink/storelink-backend/internal/app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(fixture marketFixture) CatalogService {
	return NewCatalogService(
		repository.NewIndustryRepository(fixture.DB),
		repository.NewCategoryRepository(fixture.DB),
	)
}

func TestCatalogService_CreateIndustry_NameTaken(t *testing.T) {
	fixture := seedMarket(t)
	catalogService := newCatalogService(fixture)

	// "Electronics" already exists in the fixture
	_, err := catalogService.CreateIndustry(CreateIndustryInput{Name: "Electronics"})
	assert.ErrorIs(t, err, ErrIndustryNameTaken)

	industry, err := catalogService.CreateIndustry(CreateIndustryInput{Name: "Fashion"})
	require.NoError(t, err)
	assert.NotZero(t, industry.ID)
}

func TestCatalogService_CreateCategory_RequiresIndustry(t *testing.T) {
	fixture := seedMarket(t)
	catalogService := newCatalogService(fixture)

	_, err := catalogService.CreateCategory(CreateCategoryInput{
		IndustryID: 9999,
		Name:       "Orphan",
	})
	assert.ErrorIs(t, err, ErrIndustryNotFound)

	category, err := catalogService.CreateCategory(CreateCategoryInput{
		IndustryID: fixture.Industry.ID,
		Name:       "Laptops",
	})
	require.NoError(t, err)
	assert.NotZero(t, category.ID)
}

func TestCatalogService_ListCategoriesByIndustry(t *testing.T) {
	fixture := seedMarket(t)
	catalogService := newCatalogService(fixture)

	categories, err := catalogService.ListCategoriesByIndustry(fixture.Industry.ID)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestCatalogService_DeleteIndustry(t *testing.T) {
	fixture := seedMarket(t)
	catalogService := newCatalogService(fixture)

	require.NoError(t, catalogService.DeleteIndustry(fixture.Industry.ID))

	_, err := catalogService.GetIndustry(fixture.Industry.ID)
	assert.ErrorIs(t, err, ErrIndustryNotFound)

	_, err = catalogService.GetCategory(fixture.Category.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
