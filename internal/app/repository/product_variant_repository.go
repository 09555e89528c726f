package repository

import (
	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/pkg/logger"
	"gorm.io/gorm"
)

type ProductVariantRepository interface {
	Create(variant *model.ProductVariant) error
	FindByID(id uint) (*model.ProductVariant, error)
	FindByProductID(productID uint) ([]model.ProductVariant, error)
	Update(variant *model.ProductVariant) error
	Delete(id uint) error
	UpdateStock(id uint, delta int) error
}

type productVariantRepository struct {
	db *gorm.DB
}

func NewProductVariantRepository(db *gorm.DB) ProductVariantRepository {
	return &productVariantRepository{db: db}
}

func (r *productVariantRepository) Create(variant *model.ProductVariant) error {
	logger.Debug("Creating product variant in database", map[string]interface{}{
		"name":       variant.Name,
		"product_id": variant.ProductID,
	})

	if err := r.db.Create(variant).Error; err != nil {
		logger.Error("Failed to create product variant in database", err, map[string]interface{}{
			"name":       variant.Name,
			"product_id": variant.ProductID,
		})
		return err
	}

	logger.Debug("Product variant created in database", map[string]interface{}{
		"variant_id": variant.ID,
		"name":       variant.Name,
	})
	return nil
}

func (r *productVariantRepository) FindByID(id uint) (*model.ProductVariant, error) {
	var variant model.ProductVariant
	if err := r.db.Preload("Product").First(&variant, id).Error; err != nil {
		logger.Error("Failed to find product variant by ID in database", err, map[string]interface{}{
			"variant_id": id,
		})
		return nil, err
	}
	return &variant, nil
}

func (r *productVariantRepository) FindByProductID(productID uint) ([]model.ProductVariant, error) {
	var variants []model.ProductVariant
	if err := r.db.Where("product_id = ?", productID).
		Order("name ASC").
		Find(&variants).Error; err != nil {
		logger.Error("Failed to find product variants in database", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}
	return variants, nil
}

func (r *productVariantRepository) Update(variant *model.ProductVariant) error {
	if err := r.db.Save(variant).Error; err != nil {
		logger.Error("Failed to update product variant in database", err, map[string]interface{}{
			"variant_id": variant.ID,
		})
		return err
	}
	return nil
}

func (r *productVariantRepository) Delete(id uint) error {
	logger.Debug("Deleting product variant from database", map[string]interface{}{
		"variant_id": id,
	})

	if err := r.db.Delete(&model.ProductVariant{}, id).Error; err != nil {
		logger.Error("Failed to delete product variant from database", err, map[string]interface{}{
			"variant_id": id,
		})
		return err
	}
	return nil
}

func (r *productVariantRepository) UpdateStock(id uint, delta int) error {
	logger.Debug("Updating product variant stock in database", map[string]interface{}{
		"variant_id": id,
		"delta":      delta,
	})

	if err := r.db.Model(&model.ProductVariant{}).Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta)).Error; err != nil {
		logger.Error("Failed to update product variant stock in database", err, map[string]interface{}{
			"variant_id": id,
			"delta":      delta,
		})
		return err
	}
	return nil
}
