package service

import (
	"errors"

	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/internal/app/repository"
	"github.com/storelink/storelink-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrAddressNotFound = errors.New("shipping address not found")

// CreateAddressInput leaves both owner links optional. An address can
// outlive the customer or order it was captured for.
type CreateAddressInput struct {
	CustomerID *uint
	OrderID    *uint
	Address    string
	City       string
	Zipcode    string
}

type AddressService interface {
	CreateAddress(input CreateAddressInput) (*model.ShippingAddress, error)
	GetAddress(id uint) (*model.ShippingAddress, error)
	ListCustomerAddresses(customerID uint) ([]model.ShippingAddress, error)
	UpdateAddress(address *model.ShippingAddress) error
	DeleteAddress(id uint) error
}

type addressService struct {
	addressRepo  repository.ShippingAddressRepository
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
}

func NewAddressService(
	addressRepo repository.ShippingAddressRepository,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
) AddressService {
	return &addressService{
		addressRepo:  addressRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

func (s *addressService) CreateAddress(input CreateAddressInput) (*model.ShippingAddress, error) {
	logger.Info("Creating shipping address", map[string]interface{}{
		"customer_id": input.CustomerID,
		"order_id":    input.OrderID,
		"city":        input.City,
	})

	if input.CustomerID != nil {
		if _, err := s.customerRepo.FindByID(*input.CustomerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCustomerNotFound
			}
			return nil, err
		}
	}
	if input.OrderID != nil {
		if _, err := s.orderRepo.FindByID(*input.OrderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOrderNotFound
			}
			return nil, err
		}
	}

	address := &model.ShippingAddress{
		CustomerID: input.CustomerID,
		OrderID:    input.OrderID,
		Address:    input.Address,
		City:       input.City,
		Zipcode:    input.Zipcode,
	}

	if err := s.addressRepo.Create(address); err != nil {
		logger.Error("Failed to create shipping address", err, map[string]interface{}{
			"customer_id": input.CustomerID,
			"order_id":    input.OrderID,
		})
		return nil, err
	}
	return address, nil
}

func (s *addressService) GetAddress(id uint) (*model.ShippingAddress, error) {
	address, err := s.addressRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}
	return address, nil
}

func (s *addressService) ListCustomerAddresses(customerID uint) ([]model.ShippingAddress, error) {
	if _, err := s.customerRepo.FindByID(customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return s.addressRepo.FindByCustomerID(customerID)
}

func (s *addressService) UpdateAddress(address *model.ShippingAddress) error {
	if _, err := s.addressRepo.FindByID(address.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAddressNotFound
		}
		return err
	}
	return s.addressRepo.Update(address)
}

func (s *addressService) DeleteAddress(id uint) error {
	if _, err := s.addressRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAddressNotFound
		}
		return err
	}
	return s.addressRepo.Delete(id)
}
