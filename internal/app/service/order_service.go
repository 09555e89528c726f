package service

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/internal/app/repository"
	"github.com/storelink/storelink-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAccessDenied  = errors.New("order access denied")
	ErrEmptyOrder         = errors.New("order must contain at least one line item")
	ErrInvalidQuantity    = errors.New("quantity must be greater than zero")
	ErrVariantUnavailable = errors.New("product variant is not available")
	ErrStoreMismatch      = errors.New("variant does not belong to the order's store")
)

// OrderLine is one requested variant and quantity in a new order.
type OrderLine struct {
	VariantID uint
	Quantity  uint
}

type PlaceOrderInput struct {
	CustomerID uint
	StoreID    uint
	Lines      []OrderLine
}

type OrderService interface {
	PlaceOrder(input PlaceOrderInput) (*model.Order, error)
	GetOrder(id uint) (*model.Order, error)
	ListCustomerOrders(customerID uint) ([]model.Order, error)
	ListStoreOrders(storeID uint, status string) ([]model.Order, error)
	UpdateStatus(orderID uint, status string) error
	DeleteOrder(customerID, orderID uint) error
}

type orderService struct {
	db           *gorm.DB
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	storeRepo    repository.StoreRepository
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	storeRepo repository.StoreRepository,
) OrderService {
	return &orderService{
		db:           db,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		storeRepo:    storeRepo,
	}
}

// PlaceOrder creates an order with its line items in one transaction.
// Each variant row is locked, checked for availability and stock, and
// decremented. The line item records the variant's price at this moment
// so later catalog edits do not rewrite what the customer was charged.
func (s *orderService) PlaceOrder(input PlaceOrderInput) (*model.Order, error) {
	logger.Info("Placing order", map[string]interface{}{
		"customer_id": input.CustomerID,
		"store_id":    input.StoreID,
		"lines":       len(input.Lines),
	})

	if len(input.Lines) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, line := range input.Lines {
		if line.Quantity == 0 {
			return nil, ErrInvalidQuantity
		}
	}

	if _, err := s.customerRepo.FindByID(input.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	if _, err := s.storeRepo.FindByID(input.StoreID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(input.Lines))

	for _, line := range input.Lines {
		var variant model.ProductVariant
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Product").
			First(&variant, line.VariantID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVariantNotFound
			}
			return nil, err
		}

		if variant.Product.StoreID != input.StoreID {
			tx.Rollback()
			return nil, ErrStoreMismatch
		}
		if !variant.Available || !variant.Product.Available {
			tx.Rollback()
			logger.Warn("Order rejected: variant unavailable", map[string]interface{}{
				"variant_id": variant.ID,
			})
			return nil, ErrVariantUnavailable
		}
		if variant.Stock < line.Quantity {
			tx.Rollback()
			logger.Warn("Order rejected: insufficient stock", map[string]interface{}{
				"variant_id": variant.ID,
				"stock":      variant.Stock,
				"requested":  line.Quantity,
			})
			return nil, ErrInsufficientStock
		}

		if err := tx.Model(&model.ProductVariant{}).
			Where("id = ?", variant.ID).
			Update("stock", gorm.Expr("stock - ?", line.Quantity)).Error; err != nil {
			tx.Rollback()
			return nil, err
		}

		lineTotal := variant.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(lineTotal)

		items = append(items, model.OrderItem{
			ProductVariantID: variant.ID,
			Quantity:         line.Quantity,
			Price:            variant.Price,
		})
	}

	order := &model.Order{
		CustomerID:  input.CustomerID,
		StoreID:     input.StoreID,
		TotalAmount: total,
		Status:      model.OrderStatusPending,
		Items:       items,
	}

	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create order", err, map[string]interface{}{
			"customer_id": input.CustomerID,
			"store_id":    input.StoreID,
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	logger.Info("Order placed successfully", map[string]interface{}{
		"order_id":     order.ID,
		"customer_id":  input.CustomerID,
		"total_amount": total,
	})
	return s.orderRepo.FindByID(order.ID)
}

func (s *orderService) GetOrder(id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListCustomerOrders(customerID uint) ([]model.Order, error) {
	if _, err := s.customerRepo.FindByID(customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return s.orderRepo.FindByCustomerID(customerID)
}

func (s *orderService) ListStoreOrders(storeID uint, status string) ([]model.Order, error) {
	if _, err := s.storeRepo.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return s.orderRepo.FindByStoreID(storeID, status)
}

// UpdateStatus sets the free text status label. Values beyond the
// seeded "Pending" are whatever the fulfilment flow uses.
func (s *orderService) UpdateStatus(orderID uint, status string) error {
	logger.Info("Updating order status", map[string]interface{}{
		"order_id": orderID,
		"status":   status,
	})

	if _, err := s.orderRepo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return s.orderRepo.UpdateStatus(orderID, status)
}

// DeleteOrder removes the order and its line items and payments.
// Shipping addresses that pointed at it survive with order_id cleared.
func (s *orderService) DeleteOrder(customerID, orderID uint) error {
	logger.Info("Deleting order", map[string]interface{}{
		"order_id":    orderID,
		"customer_id": customerID,
	})

	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if order.CustomerID != customerID {
		logger.Warn("Order deletion denied: customer mismatch", map[string]interface{}{
			"order_id":    orderID,
			"customer_id": customerID,
			"actual":      order.CustomerID,
		})
		return ErrOrderAccessDenied
	}
	return s.orderRepo.Delete(orderID)
}
