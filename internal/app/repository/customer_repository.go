package repository

import (
	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/pkg/logger"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindByID(id uint) (*model.Customer, error)
	FindByUserID(userID uint) (*model.Customer, error)
	Update(customer *model.Customer) error
	Delete(id uint) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *model.Customer) error {
	logger.Debug("Creating customer in database", map[string]interface{}{
		"user_id": customer.UserID,
	})

	if err := r.db.Create(customer).Error; err != nil {
		logger.Error("Failed to create customer in database", err, map[string]interface{}{
			"user_id": customer.UserID,
		})
		return err
	}

	logger.Debug("Customer created in database", map[string]interface{}{
		"customer_id": customer.ID,
		"user_id":     customer.UserID,
	})
	return nil
}

func (r *customerRepository) FindByID(id uint) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.Preload("User").First(&customer, id).Error; err != nil {
		logger.Error("Failed to find customer by ID in database", err, map[string]interface{}{
			"customer_id": id,
		})
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindByUserID(userID uint) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.Preload("User").
		Where("user_id = ?", userID).
		First(&customer).Error; err != nil {
		logger.Error("Failed to find customer by user ID in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Update(customer *model.Customer) error {
	if err := r.db.Save(customer).Error; err != nil {
		logger.Error("Failed to update customer in database", err, map[string]interface{}{
			"customer_id": customer.ID,
		})
		return err
	}
	return nil
}

func (r *customerRepository) Delete(id uint) error {
	logger.Debug("Deleting customer from database", map[string]interface{}{
		"customer_id": id,
	})

	if err := r.db.Delete(&model.Customer{}, id).Error; err != nil {
		logger.Error("Failed to delete customer from database", err, map[string]interface{}{
			"customer_id": id,
		})
		return err
	}
	return nil
}
