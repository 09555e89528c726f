package repository

import (
	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/pkg/logger"
	"gorm.io/gorm"
)

type ShippingAddressRepository interface {
	Create(address *model.ShippingAddress) error
	FindByID(id uint) (*model.ShippingAddress, error)
	FindByCustomerID(customerID uint) ([]model.ShippingAddress, error)
	Update(address *model.ShippingAddress) error
	Delete(id uint) error
}

type shippingAddressRepository struct {
	db *gorm.DB
}

func NewShippingAddressRepository(db *gorm.DB) ShippingAddressRepository {
	return &shippingAddressRepository{db: db}
}

func (r *shippingAddressRepository) Create(address *model.ShippingAddress) error {
	logger.Debug("Creating shipping address in database", map[string]interface{}{
		"customer_id": address.CustomerID,
		"order_id":    address.OrderID,
		"city":        address.City,
	})

	if err := r.db.Create(address).Error; err != nil {
		logger.Error("Failed to create shipping address in database", err, map[string]interface{}{
			"customer_id": address.CustomerID,
			"order_id":    address.OrderID,
		})
		return err
	}
	return nil
}

func (r *shippingAddressRepository) FindByID(id uint) (*model.ShippingAddress, error) {
	var address model.ShippingAddress
	if err := r.db.First(&address, id).Error; err != nil {
		logger.Error("Failed to find shipping address by ID in database", err, map[string]interface{}{
			"address_id": id,
		})
		return nil, err
	}
	return &address, nil
}

func (r *shippingAddressRepository) FindByCustomerID(customerID uint) ([]model.ShippingAddress, error) {
	var addresses []model.ShippingAddress
	if err := r.db.Where("customer_id = ?", customerID).
		Order("date_added DESC").
		Find(&addresses).Error; err != nil {
		logger.Error("Failed to find shipping addresses by customer in database", err, map[string]interface{}{
			"customer_id": customerID,
		})
		return nil, err
	}
	return addresses, nil
}

func (r *shippingAddressRepository) Update(address *model.ShippingAddress) error {
	// Save refreshes date_added; that field tracks last touch, not creation.
	if err := r.db.Save(address).Error; err != nil {
		logger.Error("Failed to update shipping address in database", err, map[string]interface{}{
			"address_id": address.ID,
		})
		return err
	}
	return nil
}

func (r *shippingAddressRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.ShippingAddress{}, id).Error; err != nil {
		logger.Error("Failed to delete shipping address from database", err, map[string]interface{}{
			"address_id": id,
		})
		return err
	}
	return nil
}
