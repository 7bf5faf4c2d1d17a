package usecase

import (
	"github.com/tele1/storefront/internal/domain"
)

// AdminUC is the mutation layer behind the back office. Every method takes
// the caller's session and re-checks the required capability before touching
// storage; an unauthorized call returns a failed Result and nothing else
// happens. Storage errors are logged and mapped to named error codes.
type AdminUC struct {
	Products   domain.ProductRepo
	Categories domain.CategoryRepo
	Orders     domain.OrderRepo
	Reviews    domain.ReviewRepo
	Banners    domain.BannerRepo
	PromoCodes domain.PromoCodeRepo
	Settings   domain.SettingsRepo
	Users      domain.UserRepo
	Cache      domain.CacheInvalidator
}

func isAdmin(s domain.Session) bool {
	return s.Role == domain.RoleAdmin || s.Role == domain.RoleSuperAdmin
}
