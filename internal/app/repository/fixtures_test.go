package repository

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

func uintPtr(u uint) *uint {
	return &u
}

// catalogFixture is the minimal data chain most repository tests need:
// an owner with a store inside a category taxonomy.
type catalogFixture struct {
	Owner    *model.User
	Industry *model.Industry
	Category *model.Category
	Store    *model.Store
}

func setupTestDB(t *testing.T) *gorm.DB {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})
	return testDB
}

func seedCatalog(t *testing.T, testDB *gorm.DB) catalogFixture {
	owner := &model.User{
		Email:        "owner@example.com",
		PasswordHash: "hash",
		Name:         "Store Owner",
	}
	require.NoError(t, testDB.Create(owner).Error)

	industry := &model.Industry{
		Name:        "Electronics",
		Description: "Consumer electronics",
	}
	require.NoError(t, testDB.Create(industry).Error)

	category := &model.Category{
		IndustryID: industry.ID,
		Name:       "Phones",
	}
	require.NoError(t, testDB.Create(category).Error)

	store := &model.Store{
		OwnerID: owner.ID,
		Name:    "Gadget Hub",
	}
	require.NoError(t, testDB.Create(store).Error)

	return catalogFixture{
		Owner:    owner,
		Industry: industry,
		Category: category,
		Store:    store,
	}
}

// commerceFixture extends the catalog chain with a sellable variant and a
// buyer who has placed an order for it.
type commerceFixture struct {
	catalogFixture
	Product  *model.Product
	Variant  *model.ProductVariant
	Buyer    *model.User
	Customer *model.Customer
	Order    *model.Order
}

func seedCommerce(t *testing.T, testDB *gorm.DB) commerceFixture {
	catalog := seedCatalog(t, testDB)

	product := &model.Product{
		StoreID:    catalog.Store.ID,
		CategoryID: catalog.Category.ID,
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

	buyer := &model.User{
		Email:        "buyer@example.com",
		PasswordHash: "hash",
		Name:         "Buyer",
	}
	require.NoError(t, testDB.Create(buyer).Error)

	customer := &model.Customer{
		UserID:      buyer.ID,
		Address:     "1 Main St",
		PhoneNumber: "555-0100",
	}
	require.NoError(t, testDB.Create(customer).Error)

	order := &model.Order{
		CustomerID:  customer.ID,
		StoreID:     catalog.Store.ID,
		TotalAmount: decimal.RequireFromString("1100.00"),
		Status:      model.OrderStatusPending,
		Items: []model.OrderItem{
			{
				ProductVariantID: variant.ID,
				Quantity:         2,
				Price:            decimal.RequireFromString("550.00"),
			},
		},
	}
	require.NoError(t, testDB.Create(order).Error)

	return commerceFixture{
		catalogFixture: catalog,
		Product:        product,
		Variant:        variant,
		Buyer:          buyer,
		Customer:       customer,
		Order:          order,
	}
}
