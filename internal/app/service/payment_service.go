package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/internal/app/repository"
	apperrors "github.com/storelink/storelink-backend/internal/errors"
	"github.com/storelink/storelink-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrPaymentOptionNotFound = errors.New("payment option not found")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrDuplicateTransaction  = errors.New("transaction reference already recorded")
	ErrInvalidAmount         = errors.New("payment amount must not be negative")
)

type RecordPaymentInput struct {
	OrderID         uint
	PaymentOptionID uint
	Amount          decimal.Decimal
	TransactionID   string    // generated when empty
	PaymentDate     time.Time // defaults to now
}

type PaymentService interface {
	RecordPayment(input RecordPaymentInput) (*model.Payment, error)
	GetPayment(id uint) (*model.Payment, error)
	ListOrderPayments(orderID uint) ([]model.Payment, error)
	ListPaymentOptions() ([]model.PaymentOption, error)
	CreatePaymentOption(name, description string, createdBy *uint) (*model.PaymentOption, error)
	DeletePaymentOption(id uint) error
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
	}
}

// RecordPayment stores a settlement against an order. The transaction
// reference is the idempotency key; recording the same reference twice
// fails with ErrDuplicateTransaction.
func (s *paymentService) RecordPayment(input RecordPaymentInput) (*model.Payment, error) {
	logger.Info("Recording payment", map[string]interface{}{
		"order_id":       input.OrderID,
		"amount":         input.Amount,
		"transaction_id": input.TransactionID,
	})

	if input.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	if _, err := s.orderRepo.FindByID(input.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if _, err := s.paymentRepo.FindOptionByID(input.PaymentOptionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentOptionNotFound
		}
		return nil, err
	}

	transactionID := input.TransactionID
	if transactionID == "" {
		transactionID = uuid.New().String()
	}
	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	payment := &model.Payment{
		OrderID:         input.OrderID,
		PaymentOptionID: input.PaymentOptionID,
		Amount:          input.Amount,
		PaymentDate:     paymentDate,
		TransactionID:   transactionID,
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		if apperrors.IsUniqueViolation(err) {
			logger.Warn("Duplicate transaction reference", map[string]interface{}{
				"order_id":       input.OrderID,
				"transaction_id": transactionID,
			})
			return nil, ErrDuplicateTransaction
		}
		logger.Error("Failed to record payment", err, map[string]interface{}{
			"order_id": input.OrderID,
		})
		return nil, err
	}

	logger.Info("Payment recorded successfully", map[string]interface{}{
		"payment_id":     payment.ID,
		"order_id":       payment.OrderID,
		"transaction_id": payment.TransactionID,
	})
	return payment, nil
}

func (s *paymentService) GetPayment(id uint) (*model.Payment, error) {
	payment, err := s.paymentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) ListOrderPayments(orderID uint) ([]model.Payment, error) {
	if _, err := s.orderRepo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.paymentRepo.FindByOrderID(orderID)
}

func (s *paymentService) ListPaymentOptions() ([]model.PaymentOption, error) {
	return s.paymentRepo.FindAllOptions()
}

func (s *paymentService) CreatePaymentOption(name, description string, createdBy *uint) (*model.PaymentOption, error) {
	option := &model.PaymentOption{
		Name:        name,
		Description: description,
		CreatedByID: createdBy,
	}
	if err := s.paymentRepo.CreateOption(option); err != nil {
		logger.Error("Failed to create payment option", err, map[string]interface{}{
			"name": name,
		})
		return nil, err
	}
	return option, nil
}

// DeletePaymentOption removes the method; recorded payments that used
// it cascade away with it.
func (s *paymentService) DeletePaymentOption(id uint) error {
	if _, err := s.paymentRepo.FindOptionByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentOptionNotFound
		}
		return err
	}
	return s.paymentRepo.DeleteOption(id)
}
