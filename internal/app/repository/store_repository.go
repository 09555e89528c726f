package repository

import (
	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/pkg/logger"
	"gorm.io/gorm"
)

type StoreRepository interface {
	Create(store *model.Store) error
	BulkCreate(stores []model.Store, batchSize int) error
	FindByID(id uint) (*model.Store, error)
	FindByOwnerID(ownerID uint) ([]model.Store, error)
	Update(store *model.Store) error
	Delete(id uint) error

	CreateLocation(location *model.StoreLocation) error
	FindLocationByID(id uint) (*model.StoreLocation, error)
	FindLocationsByStoreID(storeID uint) ([]model.StoreLocation, error)
	DeleteLocation(id uint) error
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(store *model.Store) error {
	logger.Debug("Creating store in database", map[string]interface{}{
		"name":     store.Name,
		"owner_id": store.OwnerID,
	})

	if err := r.db.Create(store).Error; err != nil {
		logger.Error("Failed to create store in database", err, map[string]interface{}{
			"name":     store.Name,
			"owner_id": store.OwnerID,
		})
		return err
	}

	logger.Debug("Store created in database", map[string]interface{}{
		"store_id": store.ID,
		"name":     store.Name,
	})
	return nil
}

// BulkCreate inserts stores in batches, used by the seed importer.
func (r *storeRepository) BulkCreate(stores []model.Store, batchSize int) error {
	logger.Info("Bulk creating stores in database", map[string]interface{}{
		"count":      len(stores),
		"batch_size": batchSize,
	})

	if err := r.db.CreateInBatches(stores, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create stores in database", err, map[string]interface{}{
			"count": len(stores),
		})
		return err
	}
	return nil
}

func (r *storeRepository) FindByID(id uint) (*model.Store, error) {
	var store model.Store
	if err := r.db.Preload("Locations").Preload("Owner").
		First(&store, id).Error; err != nil {
		logger.Error("Failed to find store by ID in database", err, map[string]interface{}{
			"store_id": id,
		})
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) FindByOwnerID(ownerID uint) ([]model.Store, error) {
	var stores []model.Store
	if err := r.db.Preload("Locations").
		Where("owner_id = ?", ownerID).
		Order("created_on DESC").
		Find(&stores).Error; err != nil {
		logger.Error("Failed to find stores by owner in database", err, map[string]interface{}{
			"owner_id": ownerID,
		})
		return nil, err
	}
	return stores, nil
}

func (r *storeRepository) Update(store *model.Store) error {
	logger.Debug("Updating store in database", map[string]interface{}{
		"store_id": store.ID,
		"name":     store.Name,
	})

	if err := r.db.Save(store).Error; err != nil {
		logger.Error("Failed to update store in database", err, map[string]interface{}{
			"store_id": store.ID,
		})
		return err
	}
	return nil
}

func (r *storeRepository) Delete(id uint) error {
	logger.Debug("Deleting store from database", map[string]interface{}{
		"store_id": id,
	})

	if err := r.db.Delete(&model.Store{}, id).Error; err != nil {
		logger.Error("Failed to delete store from database", err, map[string]interface{}{
			"store_id": id,
		})
		return err
	}
	return nil
}

func (r *storeRepository) CreateLocation(location *model.StoreLocation) error {
	logger.Debug("Creating store location in database", map[string]interface{}{
		"store_id": location.StoreID,
		"city":     location.City,
	})

	if err := r.db.Create(location).Error; err != nil {
		logger.Error("Failed to create store location in database", err, map[string]interface{}{
			"store_id": location.StoreID,
			"city":     location.City,
		})
		return err
	}
	return nil
}

func (r *storeRepository) FindLocationByID(id uint) (*model.StoreLocation, error) {
	var location model.StoreLocation
	if err := r.db.First(&location, id).Error; err != nil {
		logger.Error("Failed to find store location by ID in database", err, map[string]interface{}{
			"location_id": id,
		})
		return nil, err
	}
	return &location, nil
}

func (r *storeRepository) FindLocationsByStoreID(storeID uint) ([]model.StoreLocation, error) {
	var locations []model.StoreLocation
	if err := r.db.Where("store_id = ?", storeID).
		Find(&locations).Error; err != nil {
		logger.Error("Failed to find store locations in database", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, err
	}
	return locations, nil
}

func (r *storeRepository) DeleteLocation(id uint) error {
	if err := r.db.Delete(&model.StoreLocation{}, id).Error; err != nil {
		logger.Error("Failed to delete store location from database", err, map[string]interface{}{
			"location_id": id,
		})
		return err
	}
	return nil
}
