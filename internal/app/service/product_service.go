package service

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/internal/app/repository"
	"github.com/storelink/storelink-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrVariantNotFound   = errors.New("product variant not found")
	ErrInvalidPrice      = errors.New("price must not be negative")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type CreateProductInput struct {
	StoreID     uint
	CategoryID  uint
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       uint
	Image       string // object key; placeholder applied when empty
	Available   *bool  // defaults to true
	Digital     *bool  // defaults to true
	CreatedBy   *uint
}

type AddVariantInput struct {
	Name           string
	Price          decimal.Decimal
	Stock          uint
	AdditionalInfo string
	Available      *bool // defaults to true
}

type ProductService interface {
	CreateProduct(ownerID uint, input CreateProductInput) (*model.Product, error)
	GetProduct(id uint) (*model.Product, error)
	ListProducts(filter repository.ProductFilter) ([]model.Product, error)
	UpdateProduct(ownerID uint, product *model.Product) error
	DeleteProduct(ownerID, productID uint) error
	AdjustStock(productID uint, delta int) error
	ImageURL(product *model.Product) string

	AddVariant(ownerID, productID uint, input AddVariantInput) (*model.ProductVariant, error)
	GetVariant(id uint) (*model.ProductVariant, error)
	ListVariants(productID uint) ([]model.ProductVariant, error)
	AdjustVariantStock(variantID uint, delta int) error
	DeleteVariant(ownerID, variantID uint) error
}

type productService struct {
	productRepo  repository.ProductRepository
	variantRepo  repository.ProductVariantRepository
	storeRepo    repository.StoreRepository
	categoryRepo repository.CategoryRepository
	resolver     model.ImageResolver
}

func NewProductService(
	productRepo repository.ProductRepository,
	variantRepo repository.ProductVariantRepository,
	storeRepo repository.StoreRepository,
	categoryRepo repository.CategoryRepository,
	resolver model.ImageResolver,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		variantRepo:  variantRepo,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
		resolver:     resolver,
	}
}

func (s *productService) CreateProduct(ownerID uint, input CreateProductInput) (*model.Product, error) {
	logger.Info("Creating product", map[string]interface{}{
		"name":        input.Name,
		"store_id":    input.StoreID,
		"category_id": input.CategoryID,
	})

	if input.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	store, err := s.storeRepo.FindByID(input.StoreID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	if store.OwnerID != ownerID {
		return nil, ErrStoreAccessDenied
	}

	if _, err := s.categoryRepo.FindByID(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	product := &model.Product{
		StoreID:     input.StoreID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Image:       input.Image,
		Available:   available,
		Digital:     input.Digital,
		CreatedByID: input.CreatedBy,
	}

	if err := s.productRepo.Create(product); err != nil {
		logger.Error("Failed to create product", err, map[string]interface{}{
			"name":     input.Name,
			"store_id": input.StoreID,
		})
		return nil, err
	}

	logger.Info("Product created successfully", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return product, nil
}

func (s *productService) GetProduct(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(filter repository.ProductFilter) ([]model.Product, error) {
	return s.productRepo.FindWithFilter(filter)
}

func (s *productService) UpdateProduct(ownerID uint, product *model.Product) error {
	existing, err := s.productRepo.FindByID(product.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	store, err := s.storeRepo.FindByID(existing.StoreID)
	if err != nil {
		return err
	}
	if store.OwnerID != ownerID {
		return ErrStoreAccessDenied
	}

	if product.Price.IsNegative() {
		return ErrInvalidPrice
	}
	return s.productRepo.Update(product)
}

func (s *productService) DeleteProduct(ownerID, productID uint) error {
	logger.Info("Deleting product", map[string]interface{}{
		"product_id": productID,
	})

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	store, err := s.storeRepo.FindByID(product.StoreID)
	if err != nil {
		return err
	}
	if store.OwnerID != ownerID {
		return ErrStoreAccessDenied
	}

	return s.productRepo.Delete(productID)
}

// AdjustStock applies a relative change. Decrements are checked against
// the current level first; stock never goes below zero.
func (s *productService) AdjustStock(productID uint, delta int) error {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if delta < 0 && product.Stock < uint(-delta) {
		logger.Warn("Stock adjustment rejected", map[string]interface{}{
			"product_id": productID,
			"stock":      product.Stock,
			"delta":      delta,
		})
		return ErrInsufficientStock
	}
	return s.productRepo.UpdateStock(productID, delta)
}

// ImageURL resolves the product image, empty string when unresolvable.
func (s *productService) ImageURL(product *model.Product) string {
	return product.ImageURL(s.resolver)
}

func (s *productService) AddVariant(ownerID, productID uint, input AddVariantInput) (*model.ProductVariant, error) {
	logger.Info("Adding product variant", map[string]interface{}{
		"product_id": productID,
		"name":       input.Name,
	})

	if input.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	store, err := s.storeRepo.FindByID(product.StoreID)
	if err != nil {
		return nil, err
	}
	if store.OwnerID != ownerID {
		return nil, ErrStoreAccessDenied
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	variant := &model.ProductVariant{
		ProductID:      productID,
		Name:           input.Name,
		Price:          input.Price,
		Stock:          input.Stock,
		AdditionalInfo: input.AdditionalInfo,
		Available:      available,
	}

	if err := s.variantRepo.Create(variant); err != nil {
		logger.Error("Failed to add product variant", err, map[string]interface{}{
			"product_id": productID,
			"name":       input.Name,
		})
		return nil, err
	}
	return variant, nil
}

func (s *productService) GetVariant(id uint) (*model.ProductVariant, error) {
	variant, err := s.variantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVariantNotFound
		}
		return nil, err
	}
	return variant, nil
}

func (s *productService) ListVariants(productID uint) ([]model.ProductVariant, error) {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return s.variantRepo.FindByProductID(productID)
}

func (s *productService) AdjustVariantStock(variantID uint, delta int) error {
	variant, err := s.variantRepo.FindByID(variantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVariantNotFound
		}
		return err
	}

	if delta < 0 && variant.Stock < uint(-delta) {
		logger.Warn("Variant stock adjustment rejected", map[string]interface{}{
			"variant_id": variantID,
			"stock":      variant.Stock,
			"delta":      delta,
		})
		return ErrInsufficientStock
	}
	return s.variantRepo.UpdateStock(variantID, delta)
}

// DeleteVariant removes the variant and cascades to any order line items
// referencing it.
func (s *productService) DeleteVariant(ownerID, variantID uint) error {
	variant, err := s.variantRepo.FindByID(variantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVariantNotFound
		}
		return err
	}

	product, err := s.productRepo.FindByID(variant.ProductID)
	if err != nil {
		return err
	}
	store, err := s.storeRepo.FindByID(product.StoreID)
	if err != nil {
		return err
	}
	if store.OwnerID != ownerID {
		return ErrStoreAccessDenied
	}

	return s.variantRepo.Delete(variantID)
}
