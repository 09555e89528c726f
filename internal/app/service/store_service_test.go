package service

import (
	"testing"

	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/internal/app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreService(fixture marketFixture) StoreService {
	return NewStoreService(
		repository.NewStoreRepository(fixture.DB),
		repository.NewUserRepository(fixture.DB),
		fixedResolver{},
	)
}

func TestStoreService_CreateStore_PlaceholderLogo(t *testing.T) {
	fixture := seedMarket(t)
	storeService := newStoreService(fixture)

	store, err := storeService.CreateStore(fixture.Owner.ID, CreateStoreInput{
		Name:        "Second Shop",
		Description: "More gadgets",
	})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultImageKey, store.Logo)
	assert.Equal(t, "https://cdn.example.com/"+model.DefaultImageKey, storeService.LogoURL(store))
}

func TestStoreService_CreateStore_UnknownOwner(t *testing.T) {
	fixture := seedMarket(t)
	storeService := newStoreService(fixture)

	_, err := storeService.CreateStore(9999, CreateStoreInput{Name: "Ghost Shop"})
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestStoreService_UpdateStore_DeniedForNonOwner(t *testing.T) {
	fixture := seedMarket(t)
	storeService := newStoreService(fixture)

	store, err := storeService.GetStore(fixture.Store.ID)
	require.NoError(t, err)

	store.Description = "hijacked"
	err = storeService.UpdateStore(fixture.Buyer.ID, store)
	assert.ErrorIs(t, err, ErrStoreAccessDenied)
}

func TestStoreService_Locations(t *testing.T) {
	fixture := seedMarket(t)
	storeService := newStoreService(fixture)

	location, err := storeService.AddLocation(fixture.Owner.ID, fixture.Store.ID, AddLocationInput{
		Address: "12 Market Rd",
		City:    "Accra",
		State:   "Greater Accra",
		Country: "Ghana",
	})
	require.NoError(t, err)
	assert.NotZero(t, location.ID)

	locations, err := storeService.ListLocations(fixture.Store.ID)
	require.NoError(t, err)
	assert.Len(t, locations, 1)

	err = storeService.RemoveLocation(fixture.Buyer.ID, location.ID)
	assert.ErrorIs(t, err, ErrStoreAccessDenied)

	require.NoError(t, storeService.RemoveLocation(fixture.Owner.ID, location.ID))

	locations, err = storeService.ListLocations(fixture.Store.ID)
	require.NoError(t, err)
	assert.Len(t, locations, 0)
}

func TestStoreService_DeleteStore(t *testing.T) {
	fixture := seedMarket(t)
	storeService := newStoreService(fixture)

	require.NoError(t, storeService.DeleteStore(fixture.Owner.ID, fixture.Store.ID))

	_, err := storeService.GetStore(fixture.Store.ID)
	assert.ErrorIs(t, err, ErrStoreNotFound)

	// Products under the store are gone with it
	var count int64
	fixture.DB.Model(&model.Product{}).Where("store_id = ?", fixture.Store.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}
