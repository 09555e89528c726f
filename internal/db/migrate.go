package db

import (
	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/pkg/logger"
)

// Migrate runs database migrations. Model order follows foreign-key
// dependency order so constraints can be created in one pass.
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
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
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedInitialData(); err != nil {
		logger.Error("Failed to seed initial data during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds initial data to the database (optional)
func Seed() error {
	return seedInitialData()
}

func seedInitialData() error {
	logger.Info("Seeding initial data...")

	if err := seedPaymentOptions(); err != nil {
		logger.Error("Failed to seed payment options", err)
		return err
	}

	logger.Info("Initial data seeded successfully")
	return nil
}

// seedPaymentOptions creates the baseline payment option catalog.
func seedPaymentOptions() error {
	var count int64
	if err := DB.Model(&model.PaymentOption{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Payment options already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	options := []model.PaymentOption{
		{Name: "Card", Description: "Credit or debit card"},
		{Name: "Bank Transfer", Description: "Direct bank transfer"},
		{Name: "Mobile Money", Description: "Mobile wallet payment"},
		{Name: "Cash on Delivery", Description: "Pay the courier on delivery"},
	}

	totalInserted := 0
	for _, option := range options {
		if err := DB.Create(&option).Error; err != nil {
			logger.Error("Failed to create payment option", err, map[string]interface{}{
				"name": option.Name,
			})
			return err
		}
		totalInserted++
	}

	logger.Info("Payment options seeded successfully", map[string]interface{}{
		"total_options": totalInserted,
	})
	return nil
}
