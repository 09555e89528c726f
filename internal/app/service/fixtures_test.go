package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/internal/db"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func boolPtr(b bool) *bool {
	return &b
}

// marketFixture seeds a full buying scenario: a store with a sellable
// variant and a registered customer.
type marketFixture struct {
	DB       *gorm.DB
	Owner    *model.User
	Industry *model.Industry
	Category *model.Category
	Store    *model.Store
	Product  *model.Product
	Variant  *model.ProductVariant
	Buyer    *model.User
	Customer *model.Customer
}

func seedMarket(t *testing.T) marketFixture {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	owner := &model.User{Email: "owner@example.com", PasswordHash: "hash", Name: "Owner"}
	require.NoError(t, testDB.Create(owner).Error)

	industry := &model.Industry{Name: "Electronics"}
	require.NoError(t, testDB.Create(industry).Error)

	category := &model.Category{IndustryID: industry.ID, Name: "Phones"}
	require.NoError(t, testDB.Create(category).Error)

	store := &model.Store{OwnerID: owner.ID, Name: "Gadget Hub"}
	require.NoError(t, testDB.Create(store).Error)

	product := &model.Product{
		StoreID:    store.ID,
		CategoryID: category.ID,
		Name:       "Smartphone",
		Price:      decimal.RequireFromString("500.00"),
		Stock:      10,
		Available:  true,
		Digital:    boolPtr(false),
	}
	require.NoError(t, testDB.Create(product).Error)

	variant := &model.ProductVariant{
		ProductID: product.ID,
		Name:      "128GB",
		Price:     decimal.RequireFromString("550.00"),
		Stock:     10,
		Available: true,
	}
	require.NoError(t, testDB.Create(variant).Error)

	buyer := &model.User{Email: "buyer@example.com", PasswordHash: "hash", Name: "Buyer"}
	require.NoError(t, testDB.Create(buyer).Error)

	customer := &model.Customer{UserID: buyer.ID, Address: "1 Main St"}
	require.NoError(t, testDB.Create(customer).Error)

	return marketFixture{
		DB:       testDB,
		Owner:    owner,
		Industry: industry,
		Category: category,
		Store:    store,
		Product:  product,
		Variant:  variant,
		Buyer:    buyer,
		Customer: customer,
	}
}
