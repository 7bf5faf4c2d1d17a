package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrForeignKey is returned by repos when the store rejects a write
	// because another row still references the target.
	ErrForeignKey = errors.New("foreign key constraint")

	// ErrDuplicate is returned by repos on unique-constraint violations.
	ErrDuplicate = errors.New("duplicate key")
)

// Error codes surfaced to callers inside Result values. Callers translate
// them to user-facing messages; they are never raw storage errors.
const (
	ErrUnauthorized = "Unauthorized"

	ErrCreateProduct           = "Failed to create product"
	ErrUpdateProduct           = "Failed to update product"
	ErrDeleteProductWithOrders = "deleteProductWithOrders"
	ErrDeleteProduct           = "deleteProductError"
	ErrToggleTrending          = "toggleTrendingError"
	ErrToggleBestSeller        = "toggleBestSellerError"
	ErrBulkToggleTrending      = "bulkToggleTrendingError"
	ErrBulkToggleBestSeller    = "bulkToggleBestSellerError"
	ErrBulkRemoveSale          = "bulkRemoveSaleError"
	ErrBulkDeleteProducts      = "bulkDeleteProductsError"
	ErrBulkImport              = "Failed to import products. Check CSV format."

	ErrCreateCategory            = "Failed to create category"
	ErrUpdateCategory            = "Failed to update category"
	ErrDeleteCategoryWithProduct = "deleteCategoryWithProducts"
	ErrDeleteCategory            = "deleteCategoryError"
	ErrToggleCategoryFeatured    = "Failed to toggle category featured status"
	ErrBulkDeleteCategories      = "bulkDeleteCategoriesError"

	ErrUpdateOrderStatus = "Failed to update order status"
	ErrDeleteOrder       = "Failed to delete order"
	ErrInvalidStatus     = "Invalid order status"

	ErrCreateBanner = "Failed to create banner"
	ErrUpdateBanner = "Failed to update banner"
	ErrDeleteBanner = "Failed to delete banner"
	ErrToggleBanner = "Failed to toggle banner status"

	ErrPromoExists      = "Promo code already exists"
	ErrPromoInvalid     = "Invalid promo code"
	ErrPromoInactive    = "Promo code is inactive"
	ErrCreatePromo      = "Failed to create promo code"
	ErrUpdatePromo      = "Failed to update promo code"
	ErrDeletePromo      = "Failed to delete promo code"
	ErrTogglePromo      = "Failed to toggle promo code status"
	ErrValidatePromo    = "Failed to validate promo code"
	ErrUpdateSettings   = "Failed to update settings"
	ErrCreateReview     = "Failed to create review"
	ErrUpdateReview     = "Failed to update review"
	ErrDeleteReview     = "Failed to delete review"
	ErrCreateOrder      = "Internal server error during order creation"
	ErrUsernameExists   = "Username already exists"
	ErrCreateUser       = "Failed to create user"
	ErrUpdateUser       = "Failed to update user"
	ErrDeleteUser       = "Failed to delete user"
	ErrAdminNotFound    = "Admin user not found"
	ErrWrongPassword    = "Current password is incorrect"
	ErrNoChanges        = "No changes to update"
	ErrUpdateCredential = "Failed to update credentials"
)
