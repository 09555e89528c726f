package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestParseError_RecordNotFound(t *testing.T) {
	tests := []struct {
		context string
		code    string
	}{
		{"industry", CatalogIndustryNotFound},
		{"category", CatalogCategoryNotFound},
		{"product variant", ProductVariantNotFound},
		{"product", ProductNotFound},
		{"store", StoreNotFound},
		{"customer", CustomerNotFound},
		{"payment option", PaymentOptionNotFound},
		{"payment", PaymentNotFound},
		{"order", OrderNotFound},
		{"widget", ResourceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.context, func(t *testing.T) {
			info := ParseError(gorm.ErrRecordNotFound, tt.context)
			assert.Equal(t, tt.code, info.Code)
		})
	}
}

func TestParseError_DuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{
			"payment transaction",
			errors.New(`duplicate key value violates unique constraint "idx_payments_transaction_id"`),
			PaymentTransactionExists,
		},
		{
			"industry name",
			errors.New(`duplicate key value violates unique constraint "idx_industries_name"`),
			CatalogIndustryNameExists,
		},
		{
			"customer per user",
			errors.New(`duplicate key value violates unique constraint "idx_customers_user_id"`),
			CustomerAlreadyExists,
		},
		{
			"sqlite unique failure",
			errors.New("UNIQUE constraint failed: industries.name"),
			CatalogIndustryNameExists,
		},
		{
			"generic",
			errors.New(`duplicate key value violates unique constraint "users_pkey"`),
			ResourceAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, IsUniqueViolation(tt.err))
			info := ParseError(tt.err, "record")
			assert.Equal(t, tt.code, info.Code)
		})
	}
}

func TestParseError_ForeignKey(t *testing.T) {
	err := errors.New(`insert or update on table "products" violates foreign key constraint "fk_categories_products" (category_id)`)
	assert.True(t, IsForeignKeyViolation(err))

	info := ParseError(err, "product")
	assert.Equal(t, CatalogCategoryNotFound, info.Code)
}

func TestParseError_CheckConstraint(t *testing.T) {
	err := errors.New(`new row for relation "products" violates check constraint "chk_products_price"`)
	info := ParseError(err, "product")
	assert.Equal(t, ValidationInvalidRange, info.Code)
}

func TestIsHelpers_NilError(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsForeignKeyViolation(nil))
	assert.False(t, IsNotFound(nil))
}
