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
	ErrIndustryNotFound  = errors.New("industry not found")
	ErrIndustryNameTaken = errors.New("industry name already exists")
	ErrCategoryNotFound  = errors.New("category not found")
)

// CreateIndustryInput carries the acting user explicitly; there is no
// ambient "current user" at this layer.
type CreateIndustryInput struct {
	Name        string
	Description string
	CreatedBy   *uint
}

type CreateCategoryInput struct {
	IndustryID  uint
	Name        string
	Description string
	CreatedBy   *uint
}

type CatalogService interface {
	CreateIndustry(input CreateIndustryInput) (*model.Industry, error)
	GetIndustry(id uint) (*model.Industry, error)
	ListIndustries() ([]model.Industry, error)
	UpdateIndustry(industry *model.Industry) error
	DeleteIndustry(id uint) error

	CreateCategory(input CreateCategoryInput) (*model.Category, error)
	GetCategory(id uint) (*model.Category, error)
	ListCategoriesByIndustry(industryID uint) ([]model.Category, error)
	DeleteCategory(id uint) error
}

type catalogService struct {
	industryRepo repository.IndustryRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(
	industryRepo repository.IndustryRepository,
	categoryRepo repository.CategoryRepository,
) CatalogService {
	return &catalogService{
		industryRepo: industryRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *catalogService) CreateIndustry(input CreateIndustryInput) (*model.Industry, error) {
	logger.Info("Creating industry", map[string]interface{}{
		"name":       input.Name,
		"created_by": input.CreatedBy,
	})

	industry := &model.Industry{
		Name:        input.Name,
		Description: input.Description,
		CreatedByID: input.CreatedBy,
	}

	if err := s.industryRepo.Create(industry); err != nil {
		if apperrors.IsUniqueViolation(err) {
			logger.Warn("Industry name already taken", map[string]interface{}{
				"name": input.Name,
			})
			return nil, ErrIndustryNameTaken
		}
		logger.Error("Failed to create industry", err, map[string]interface{}{
			"name": input.Name,
		})
		return nil, err
	}

	logger.Info("Industry created successfully", map[string]interface{}{
		"industry_id": industry.ID,
		"name":        industry.Name,
	})
	return industry, nil
}

func (s *catalogService) GetIndustry(id uint) (*model.Industry, error) {
	industry, err := s.industryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIndustryNotFound
		}
		return nil, err
	}
	return industry, nil
}

func (s *catalogService) ListIndustries() ([]model.Industry, error) {
	return s.industryRepo.FindAll()
}

func (s *catalogService) UpdateIndustry(industry *model.Industry) error {
	if err := s.industryRepo.Update(industry); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return ErrIndustryNameTaken
		}
		return err
	}
	return nil
}

// DeleteIndustry removes the industry and, through the schema's cascade
// rules, its categories, their products, variants and order line items.
func (s *catalogService) DeleteIndustry(id uint) error {
	logger.Info("Deleting industry", map[string]interface{}{
		"industry_id": id,
	})

	if _, err := s.industryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIndustryNotFound
		}
		return err
	}
	return s.industryRepo.Delete(id)
}

func (s *catalogService) CreateCategory(input CreateCategoryInput) (*model.Category, error) {
	logger.Info("Creating category", map[string]interface{}{
		"name":        input.Name,
		"industry_id": input.IndustryID,
	})

	if _, err := s.industryRepo.FindByID(input.IndustryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIndustryNotFound
		}
		return nil, err
	}

	category := &model.Category{
		IndustryID:  input.IndustryID,
		Name:        input.Name,
		Description: input.Description,
		CreatedByID: input.CreatedBy,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		logger.Error("Failed to create category", err, map[string]interface{}{
			"name":        input.Name,
			"industry_id": input.IndustryID,
		})
		return nil, err
	}
	return category, nil
}

func (s *catalogService) GetCategory(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) ListCategoriesByIndustry(industryID uint) ([]model.Category, error) {
	if _, err := s.industryRepo.FindByID(industryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIndustryNotFound
		}
		return nil, err
	}
	return s.categoryRepo.FindByIndustryID(industryID)
}

func (s *catalogService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.categoryRepo.Delete(id)
}
