package repository

import (
	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/pkg/logger"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	CreateOption(option *model.PaymentOption) error
	FindOptionByID(id uint) (*model.PaymentOption, error)
	FindAllOptions() ([]model.PaymentOption, error)
	DeleteOption(id uint) error

	Create(payment *model.Payment) error
	FindByID(id uint) (*model.Payment, error)
	FindByOrderID(orderID uint) ([]model.Payment, error)
	FindByTransactionID(transactionID string) (*model.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateOption(option *model.PaymentOption) error {
	logger.Debug("Creating payment option in database", map[string]interface{}{
		"name": option.Name,
	})

	if err := r.db.Create(option).Error; err != nil {
		logger.Error("Failed to create payment option in database", err, map[string]interface{}{
			"name": option.Name,
		})
		return err
	}
	return nil
}

func (r *paymentRepository) FindOptionByID(id uint) (*model.PaymentOption, error) {
	var option model.PaymentOption
	if err := r.db.First(&option, id).Error; err != nil {
		logger.Error("Failed to find payment option by ID in database", err, map[string]interface{}{
			"option_id": id,
		})
		return nil, err
	}
	return &option, nil
}

func (r *paymentRepository) FindAllOptions() ([]model.PaymentOption, error) {
	var options []model.PaymentOption
	if err := r.db.Order("name ASC").Find(&options).Error; err != nil {
		logger.Error("Failed to find payment options in database", err)
		return nil, err
	}
	return options, nil
}

func (r *paymentRepository) DeleteOption(id uint) error {
	logger.Debug("Deleting payment option from database", map[string]interface{}{
		"option_id": id,
	})

	if err := r.db.Delete(&model.PaymentOption{}, id).Error; err != nil {
		logger.Error("Failed to delete payment option from database", err, map[string]interface{}{
			"option_id": id,
		})
		return err
	}
	return nil
}

func (r *paymentRepository) Create(payment *model.Payment) error {
	logger.Debug("Creating payment in database", map[string]interface{}{
		"order_id":       payment.OrderID,
		"amount":         payment.Amount,
		"transaction_id": payment.TransactionID,
	})

	if err := r.db.Create(payment).Error; err != nil {
		logger.Error("Failed to create payment in database", err, map[string]interface{}{
			"order_id":       payment.OrderID,
			"transaction_id": payment.TransactionID,
		})
		return err
	}

	logger.Debug("Payment created in database", map[string]interface{}{
		"payment_id":     payment.ID,
		"order_id":       payment.OrderID,
		"transaction_id": payment.TransactionID,
	})
	return nil
}

func (r *paymentRepository) FindByID(id uint) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.Preload("PaymentOption").First(&payment, id).Error; err != nil {
		logger.Error("Failed to find payment by ID in database", err, map[string]interface{}{
			"payment_id": id,
		})
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByOrderID(orderID uint) ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.db.Preload("PaymentOption").
		Where("order_id = ?", orderID).
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {
		logger.Error("Failed to find payments by order in database", err, map[string]interface{}{
			"order_id": orderID,
		})
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) FindByTransactionID(transactionID string) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.Where("transaction_id = ?", transactionID).
		First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}
