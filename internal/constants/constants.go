package constants

// Product category constants. The values are stored verbatim in the
// products table and accepted as the ?type= filter on the catalog page.
const (
	CategoryMiniature  = "MINIATURE"
	CategoryStarterSet = "STARTER_SET"
	CategoryPaint      = "PAINT"
	CategoryAccessory  = "ACCESSORY"
	CategoryBook       = "BOOK"
)

// ProductCategories lists every accepted product category.
var ProductCategories = []string{
	CategoryMiniature,
	CategoryStarterSet,
	CategoryPaint,
	CategoryAccessory,
	CategoryBook,
}

// IsProductCategory reports whether value is a known category.
func IsProductCategory(value string) bool {
	for _, category := range ProductCategories {
		if category == value {
			return true
		}
	}
	return false
}

// Catalog presentation variants. Which one the catalog query selects
// decides what the storefront renders.
const (
	CatalogVariantFactionList     = "faction_list"
	CatalogVariantFactionProducts = "faction_products"
	CatalogVariantProductList     = "product_list"
)

// Order status constants. Orders are write-once in this system; PENDING is
// the only status the backend ever assigns.
const (
	OrderStatusPending = "PENDING"
)

// User account status constants.
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// Queue names.
const (
	QueueDefault = "default"
)

// Asynq task type names.
const (
	TaskCartPurgeProduct = "cart:purge_product"
)
