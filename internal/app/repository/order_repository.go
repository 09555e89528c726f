package repository

import (
	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/pkg/logger"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	FindByID(id uint) (*model.Order, error)
	FindByCustomerID(customerID uint) ([]model.Order, error)
	FindByStoreID(storeID uint, status string) ([]model.Order, error)
	Update(order *model.Order) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// preloadOrder loads the line items down to the product so the derived
// getters (Shipping, CartTotal) have everything they need.
func (r *orderRepository) preloadOrder() *gorm.DB {
	return r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Preload("ProductVariant", func(vdb *gorm.DB) *gorm.DB {
			return vdb.Preload("Product")
		})
	}).Preload("Customer.User").Preload("Store").Preload("Payments")
}

func (r *orderRepository) Create(order *model.Order) error {
	logger.Debug("Creating order in database", map[string]interface{}{
		"customer_id":  order.CustomerID,
		"store_id":     order.StoreID,
		"total_amount": order.TotalAmount,
	})

	if err := r.db.Create(order).Error; err != nil {
		logger.Error("Failed to create order in database", err, map[string]interface{}{
			"customer_id": order.CustomerID,
			"store_id":    order.StoreID,
		})
		return err
	}

	logger.Debug("Order created in database", map[string]interface{}{
		"order_id":     order.ID,
		"customer_id":  order.CustomerID,
		"total_amount": order.TotalAmount,
	})
	return nil
}

func (r *orderRepository) FindByID(id uint) (*model.Order, error) {
	logger.Debug("Finding order by ID in database", map[string]interface{}{
		"order_id": id,
	})

	var order model.Order
	if err := r.preloadOrder().First(&order, id).Error; err != nil {
		logger.Error("Failed to find order by ID in database", err, map[string]interface{}{
			"order_id": id,
		})
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByCustomerID(customerID uint) ([]model.Order, error) {
	var orders []model.Order
	if err := r.preloadOrder().
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		logger.Error("Failed to find orders by customer in database", err, map[string]interface{}{
			"customer_id": customerID,
		})
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindByStoreID(storeID uint, status string) ([]model.Order, error) {
	query := r.preloadOrder().Where("store_id = ?", storeID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []model.Order
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		logger.Error("Failed to find orders by store in database", err, map[string]interface{}{
			"store_id": storeID,
			"status":   status,
		})
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Update(order *model.Order) error {
	logger.Debug("Updating order in database", map[string]interface{}{
		"order_id": order.ID,
		"status":   order.Status,
	})

	if err := r.db.Save(order).Error; err != nil {
		logger.Error("Failed to update order in database", err, map[string]interface{}{
			"order_id": order.ID,
		})
		return err
	}
	return nil
}

func (r *orderRepository) UpdateStatus(id uint, status string) error {
	logger.Debug("Updating order status in database", map[string]interface{}{
		"order_id": id,
		"status":   status,
	})

	if err := r.db.Model(&model.Order{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		logger.Error("Failed to update order status in database", err, map[string]interface{}{
			"order_id": id,
			"status":   status,
		})
		return err
	}
	return nil
}

func (r *orderRepository) Delete(id uint) error {
	logger.Debug("Deleting order from database", map[string]interface{}{
		"order_id": id,
	})

	if err := r.db.Delete(&model.Order{}, id).Error; err != nil {
		logger.Error("Failed to delete order from database", err, map[string]interface{}{
			"order_id": id,
		})
		return err
	}
	return nil
}
