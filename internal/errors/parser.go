package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo carries a stable error code plus a human-readable message.
type ErrorInfo struct {
	Code    string // error code (see codes.go)
	Message string
}

// ParseError translates driver and GORM errors into the module's error
// taxonomy. The context string names the entity being operated on and is used
// to pick a specific code when the driver message is generic.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "internal server error",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	// 1. GORM base errors
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    notFoundCode(context),
			Message: context + " not found",
		}
	}

	// 2. Constraint violations (Postgres 23505 / 23503 / 23502 / 23514,
	//    and the matching SQLite messages used by the test database)

	if IsUniqueViolation(err) {
		return parseDuplicateKeyError(errStr, context)
	}

	if IsForeignKeyViolation(err) {
		return parseForeignKeyError(errStr, context)
	}

	if strings.Contains(errStrLower, "not-null constraint") ||
		strings.Contains(errStrLower, "not null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "required field missing",
		}
	}

	if strings.Contains(errStrLower, "check constraint") {
		return ErrorInfo{
			Code:    ValidationInvalidRange,
			Message: "value violates a check constraint",
		}
	}

	// 3. Connectivity
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "database is unreachable",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "operation failed: " + context,
	}
}

// IsUniqueViolation reports whether err is a uniqueness constraint violation.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "unique failed")
}

// IsForeignKeyViolation reports whether err is a referential integrity
// violation (insert/update referencing a missing parent, or a delete blocked
// by dependents).
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "foreign key constraint")
}

// IsNotFound reports whether err is a lookup miss.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func parseDuplicateKeyError(errStr string, context string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "transaction_id") {
		return ErrorInfo{
			Code:    PaymentTransactionExists,
			Message: "a payment with this transaction id already exists",
		}
	}

	if strings.Contains(errLower, "industries") || strings.Contains(errLower, "idx_industries_name") {
		return ErrorInfo{
			Code:    CatalogIndustryNameExists,
			Message: "an industry with this name already exists",
		}
	}

	if strings.Contains(errLower, "customers") && strings.Contains(errLower, "user_id") {
		return ErrorInfo{
			Code:    CustomerAlreadyExists,
			Message: "a customer record already exists for this user",
		}
	}

	if strings.Contains(errLower, "pkey") || strings.Contains(errLower, "primary key") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "record already exists",
		}
	}

	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "record already exists",
	}
}

func parseForeignKeyError(errStr string, context string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	// Delete blocked by dependents
	if strings.Contains(errLower, "still referenced") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "record is referenced by other data and cannot be deleted",
		}
	}

	// Insert/update referencing a missing parent
	switch {
	case strings.Contains(errLower, "industry_id"):
		return ErrorInfo{Code: CatalogIndustryNotFound, Message: "referenced industry does not exist"}
	case strings.Contains(errLower, "category_id"):
		return ErrorInfo{Code: CatalogCategoryNotFound, Message: "referenced category does not exist"}
	case strings.Contains(errLower, "store_id"):
		return ErrorInfo{Code: StoreNotFound, Message: "referenced store does not exist"}
	case strings.Contains(errLower, "owner_id"):
		return ErrorInfo{Code: StoreOwnerNotFound, Message: "referenced owner does not exist"}
	case strings.Contains(errLower, "product_variant_id"):
		return ErrorInfo{Code: ProductVariantNotFound, Message: "referenced product variant does not exist"}
	case strings.Contains(errLower, "product_id"):
		return ErrorInfo{Code: ProductNotFound, Message: "referenced product does not exist"}
	case strings.Contains(errLower, "customer_id"):
		return ErrorInfo{Code: CustomerNotFound, Message: "referenced customer does not exist"}
	case strings.Contains(errLower, "order_id"):
		return ErrorInfo{Code: OrderNotFound, Message: "referenced order does not exist"}
	case strings.Contains(errLower, "payment_option_id"):
		return ErrorInfo{Code: PaymentOptionNotFound, Message: "referenced payment option does not exist"}
	}

	return ErrorInfo{
		Code:    ResourceNotFound,
		Message: "referenced record does not exist",
	}
}

func notFoundCode(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "industry"):
		return CatalogIndustryNotFound
	case strings.Contains(contextLower, "category"):
		return CatalogCategoryNotFound
	case strings.Contains(contextLower, "variant"):
		return ProductVariantNotFound
	case strings.Contains(contextLower, "product"):
		return ProductNotFound
	case strings.Contains(contextLower, "store"):
		return StoreNotFound
	case strings.Contains(contextLower, "customer"):
		return CustomerNotFound
	case strings.Contains(contextLower, "payment option"):
		return PaymentOptionNotFound
	case strings.Contains(contextLower, "payment"):
		return PaymentNotFound
	case strings.Contains(contextLower, "order"):
		return OrderNotFound
	}
	return ResourceNotFound
}
