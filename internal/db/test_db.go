package db

import (
	"fmt"
	"log"

	"github.com/storelink/storelink-backend/internal/app/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing. Foreign keys
// are switched on so cascade and SET NULL paths behave like Postgres.
func SetupTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Industry{},
		&model.Category{},
		&model.Store{},
		&model.StoreLocation{},
		&model.Product{},
		&model.ProductVariant{},
		&model.PaymentOption{},
		&model.Customer{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
		&model.ShippingAddress{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	return db, nil
}

// CleanupTestDB cleans up the test database
func CleanupTestDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Failed to get DB instance: %v", err)
		return
	}
	sqlDB.Close()
}

// TruncateAllTables removes all data from tables
func TruncateAllTables(db *gorm.DB) error {
	tables := []string{
		"shipping_addresses", "payments", "order_items", "orders",
		"customers", "payment_options", "product_variants", "products",
		"store_locations", "stores", "categories", "industries", "users",
	}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return err
		}
	}
	return nil
}
