package service

import (
	"errors"

	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/internal/app/repository"
	"github.com/storelink/storelink-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrStoreNotFound     = errors.New("store not found")
	ErrStoreAccessDenied = errors.New("store access denied")
	ErrLocationNotFound  = errors.New("store location not found")
	ErrOwnerNotFound     = errors.New("store owner not found")
)

type CreateStoreInput struct {
	Name        string
	Description string
	Logo        string // object key; placeholder applied when empty
	Website     string
	CreatedBy   *uint
}

type AddLocationInput struct {
	Address     string
	City        string
	State       string
	PostalCode  string
	Country     string
	Latitude    *float64
	Longitude   *float64
	PhoneNumber string
	CreatedBy   *uint
}

type StoreService interface {
	CreateStore(ownerID uint, input CreateStoreInput) (*model.Store, error)
	GetStore(id uint) (*model.Store, error)
	ListStoresByOwner(ownerID uint) ([]model.Store, error)
	UpdateStore(ownerID uint, store *model.Store) error
	DeleteStore(ownerID, storeID uint) error
	LogoURL(store *model.Store) string

	AddLocation(ownerID, storeID uint, input AddLocationInput) (*model.StoreLocation, error)
	ListLocations(storeID uint) ([]model.StoreLocation, error)
	RemoveLocation(ownerID, locationID uint) error
}

type storeService struct {
	storeRepo repository.StoreRepository
	userRepo  repository.UserRepository
	resolver  model.ImageResolver
}

func NewStoreService(
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
	resolver model.ImageResolver,
) StoreService {
	return &storeService{
		storeRepo: storeRepo,
		userRepo:  userRepo,
		resolver:  resolver,
	}
}

func (s *storeService) CreateStore(ownerID uint, input CreateStoreInput) (*model.Store, error) {
	logger.Info("Creating store", map[string]interface{}{
		"owner_id": ownerID,
		"name":     input.Name,
	})

	if _, err := s.userRepo.FindByID(ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	store := &model.Store{
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		Logo:        input.Logo,
		Website:     input.Website,
		CreatedByID: input.CreatedBy,
	}

	if err := s.storeRepo.Create(store); err != nil {
		logger.Error("Failed to create store", err, map[string]interface{}{
			"owner_id": ownerID,
			"name":     input.Name,
		})
		return nil, err
	}

	logger.Info("Store created successfully", map[string]interface{}{
		"store_id": store.ID,
		"owner_id": ownerID,
	})
	return store, nil
}

func (s *storeService) GetStore(id uint) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return store, nil
}

func (s *storeService) ListStoresByOwner(ownerID uint) ([]model.Store, error) {
	return s.storeRepo.FindByOwnerID(ownerID)
}

func (s *storeService) UpdateStore(ownerID uint, store *model.Store) error {
	existing, err := s.storeRepo.FindByID(store.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoreNotFound
		}
		return err
	}

	if existing.OwnerID != ownerID {
		logger.Warn("Store update denied: ownership mismatch", map[string]interface{}{
			"store_id": store.ID,
			"owner_id": ownerID,
			"actual":   existing.OwnerID,
		})
		return ErrStoreAccessDenied
	}

	return s.storeRepo.Update(store)
}

func (s *storeService) DeleteStore(ownerID, storeID uint) error {
	logger.Info("Deleting store", map[string]interface{}{
		"store_id": storeID,
		"owner_id": ownerID,
	})

	store, err := s.storeRepo.FindByID(storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoreNotFound
		}
		return err
	}

	if store.OwnerID != ownerID {
		logger.Warn("Store deletion denied: ownership mismatch", map[string]interface{}{
			"store_id": storeID,
			"owner_id": ownerID,
			"actual":   store.OwnerID,
		})
		return ErrStoreAccessDenied
	}

	return s.storeRepo.Delete(storeID)
}

// LogoURL resolves the store logo, empty string when unresolvable.
func (s *storeService) LogoURL(store *model.Store) string {
	return store.LogoURL(s.resolver)
}

func (s *storeService) AddLocation(ownerID, storeID uint, input AddLocationInput) (*model.StoreLocation, error) {
	store, err := s.storeRepo.FindByID(storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	if store.OwnerID != ownerID {
		return nil, ErrStoreAccessDenied
	}

	location := &model.StoreLocation{
		StoreID:     storeID,
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		PostalCode:  input.PostalCode,
		Country:     input.Country,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		PhoneNumber: input.PhoneNumber,
		CreatedByID: input.CreatedBy,
	}

	if err := s.storeRepo.CreateLocation(location); err != nil {
		logger.Error("Failed to add store location", err, map[string]interface{}{
			"store_id": storeID,
			"city":     input.City,
		})
		return nil, err
	}
	return location, nil
}

func (s *storeService) ListLocations(storeID uint) ([]model.StoreLocation, error) {
	if _, err := s.storeRepo.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return s.storeRepo.FindLocationsByStoreID(storeID)
}

func (s *storeService) RemoveLocation(ownerID, locationID uint) error {
	location, err := s.storeRepo.FindLocationByID(locationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLocationNotFound
		}
		return err
	}

	store, err := s.storeRepo.FindByID(location.StoreID)
	if err != nil {
		return err
	}
	if store.OwnerID != ownerID {
		return ErrStoreAccessDenied
	}

	return s.storeRepo.DeleteLocation(locationID)
}
