package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL
// Consumers map these codes to their own messages.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // malformed input
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // bad identifier
	ValidationInvalidRange = "VALIDATION_INVALID_RANGE" // value out of range
	ValidationRequired     = "VALIDATION_REQUIRED"      // missing required field

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // lookup by id failed
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // uniqueness violation
	ResourceConflict      = "RESOURCE_CONFLICT"       // referenced by other rows
	ResourceUnresolvable  = "RESOURCE_UNRESOLVABLE"   // backing file/URL missing

	// ==================== Taxonomy (CATALOG_) ====================
	CatalogIndustryNotFound   = "CATALOG_INDUSTRY_NOT_FOUND"
	CatalogIndustryNameExists = "CATALOG_INDUSTRY_NAME_EXISTS" // Industry.name is unique
	CatalogCategoryNotFound   = "CATALOG_CATEGORY_NOT_FOUND"

	// ==================== Stores (STORE_) ====================
	StoreNotFound         = "STORE_NOT_FOUND"
	StoreLocationNotFound = "STORE_LOCATION_NOT_FOUND"
	StoreOwnerNotFound    = "STORE_OWNER_NOT_FOUND" // owner FK violated on insert

	// ==================== Products (PRODUCT_) ====================
	ProductNotFound        = "PRODUCT_NOT_FOUND"
	ProductVariantNotFound = "PRODUCT_VARIANT_NOT_FOUND"
	ProductOutOfStock      = "PRODUCT_OUT_OF_STOCK"

	// ==================== Customers (CUSTOMER_) ====================
	CustomerNotFound      = "CUSTOMER_NOT_FOUND"
	CustomerAlreadyExists = "CUSTOMER_ALREADY_EXISTS" // one customer per user

	// ==================== Orders (ORDER_) ====================
	OrderNotFound        = "ORDER_NOT_FOUND"
	OrderItemNotFound    = "ORDER_ITEM_NOT_FOUND"
	OrderInvalidQuantity = "ORDER_INVALID_QUANTITY" // quantity must be positive

	// ==================== Payments (PAYMENT_) ====================
	PaymentNotFound          = "PAYMENT_NOT_FOUND"
	PaymentOptionNotFound    = "PAYMENT_OPTION_NOT_FOUND"
	PaymentTransactionExists = "PAYMENT_TRANSACTION_EXISTS" // transaction_id is unique

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalStorageError  = "INTERNAL_STORAGE_ERROR"
)
