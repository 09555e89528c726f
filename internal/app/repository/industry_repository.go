package repository

import (
	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/pkg/logger"
	"gorm.io/gorm"
)

type IndustryRepository interface {
	Create(industry *model.Industry) error
	FindAll() ([]model.Industry, error)
	FindByID(id uint) (*model.Industry, error)
	FindByName(name string) (*model.Industry, error)
	Update(industry *model.Industry) error
	Delete(id uint) error
}

type industryRepository struct {
	db *gorm.DB
}

func NewIndustryRepository(db *gorm.DB) IndustryRepository {
	return &industryRepository{db: db}
}

func (r *industryRepository) Create(industry *model.Industry) error {
	logger.Debug("Creating industry in database", map[string]interface{}{
		"name": industry.Name,
	})

	if err := r.db.Create(industry).Error; err != nil {
		logger.Error("Failed to create industry in database", err, map[string]interface{}{
			"name": industry.Name,
		})
		return err
	}

	logger.Debug("Industry created in database", map[string]interface{}{
		"industry_id": industry.ID,
		"name":        industry.Name,
	})
	return nil
}

func (r *industryRepository) FindAll() ([]model.Industry, error) {
	var industries []model.Industry
	if err := r.db.Preload("Categories").
		Order("name ASC").
		Find(&industries).Error; err != nil {
		logger.Error("Failed to find industries in database", err)
		return nil, err
	}
	return industries, nil
}

func (r *industryRepository) FindByID(id uint) (*model.Industry, error) {
	logger.Debug("Finding industry by ID in database", map[string]interface{}{
		"industry_id": id,
	})

	var industry model.Industry
	if err := r.db.Preload("Categories").First(&industry, id).Error; err != nil {
		logger.Error("Failed to find industry by ID in database", err, map[string]interface{}{
			"industry_id": id,
		})
		return nil, err
	}
	return &industry, nil
}

func (r *industryRepository) FindByName(name string) (*model.Industry, error) {
	var industry model.Industry
	if err := r.db.Where("name = ?", name).First(&industry).Error; err != nil {
		return nil, err
	}
	return &industry, nil
}

func (r *industryRepository) Update(industry *model.Industry) error {
	logger.Debug("Updating industry in database", map[string]interface{}{
		"industry_id": industry.ID,
		"name":        industry.Name,
	})

	if err := r.db.Save(industry).Error; err != nil {
		logger.Error("Failed to update industry in database", err, map[string]interface{}{
			"industry_id": industry.ID,
		})
		return err
	}
	return nil
}

func (r *industryRepository) Delete(id uint) error {
	logger.Debug("Deleting industry from database", map[string]interface{}{
		"industry_id": id,
	})

	if err := r.db.Delete(&model.Industry{}, id).Error; err != nil {
		logger.Error("Failed to delete industry from database", err, map[string]interface{}{
			"industry_id": id,
		})
		return err
	}
	return nil
}
