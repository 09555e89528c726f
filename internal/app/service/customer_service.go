package service

import (
	"errors"

	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/internal/app/repository"
	apperrors "github.com/storelink/storelink-backend/internal/errors"
	"github.com/storelink/storelink-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCustomerExists   = errors.New("customer profile already exists for user")
)

type RegisterCustomerInput struct {
	UserID      uint
	Address     string
	PhoneNumber string
	CreatedBy   *uint
}

type CustomerService interface {
	RegisterCustomer(input RegisterCustomerInput) (*model.Customer, error)
	GetCustomer(id uint) (*model.Customer, error)
	GetCustomerByUserID(userID uint) (*model.Customer, error)
	UpdateCustomer(customer *model.Customer) error
	DeleteCustomer(id uint) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
}

func NewCustomerService(
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		userRepo:     userRepo,
	}
}

// RegisterCustomer creates the buyer profile for a user. A user carries
// at most one profile; the unique index on user_id backs that up.
func (s *customerService) RegisterCustomer(input RegisterCustomerInput) (*model.Customer, error) {
	logger.Info("Registering customer", map[string]interface{}{
		"user_id": input.UserID,
	})

	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	customer := &model.Customer{
		UserID:      input.UserID,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
		CreatedByID: input.CreatedBy,
	}

	if err := s.customerRepo.Create(customer); err != nil {
		if apperrors.IsUniqueViolation(err) {
			logger.Warn("Customer profile already exists", map[string]interface{}{
				"user_id": input.UserID,
			})
			return nil, ErrCustomerExists
		}
		logger.Error("Failed to register customer", err, map[string]interface{}{
			"user_id": input.UserID,
		})
		return nil, err
	}

	logger.Info("Customer registered successfully", map[string]interface{}{
		"customer_id": customer.ID,
		"user_id":     customer.UserID,
	})
	return customer, nil
}

func (s *customerService) GetCustomer(id uint) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetCustomerByUserID(userID uint) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(customer *model.Customer) error {
	if _, err := s.customerRepo.FindByID(customer.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return s.customerRepo.Update(customer)
}

// DeleteCustomer removes the profile. Orders cascade away with it;
// shipping addresses survive with customer_id cleared.
func (s *customerService) DeleteCustomer(id uint) error {
	logger.Info("Deleting customer", map[string]interface{}{
		"customer_id": id,
	})

	if _, err := s.customerRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return s.customerRepo.Delete(id)
}
