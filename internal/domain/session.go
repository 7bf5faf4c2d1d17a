package domain

import "github.com/google/uuid"

// Capability names a per-resource permission flag, distinct from the coarse
// role. SUPER_ADMIN implies all of them.
type Capability string

const (
	CapManageProducts   Capability = "manageProducts"
	CapDeleteProducts   Capability = "deleteProducts"
	CapManageCategories Capability = "manageCategories"
	CapDeleteCategories Capability = "deleteCategories"
	CapManageBanners    Capability = "manageBanners"
	CapDeleteBanners    Capability = "deleteBanners"
	CapManageOrders     Capability = "manageOrders"
	CapDeleteOrders     Capability = "deleteOrders"
	CapManagePromoCodes Capability = "managePromoCodes"
	CapDeletePromoCodes Capability = "deletePromoCodes"
)

type Session struct {
	UserID   uuid.UUID
	Username string
	Role     string

	CanManageProducts   bool
	CanDeleteProducts   bool
	CanManageCategories bool
	CanDeleteCategories bool
	CanManageBanners    bool
	CanDeleteBanners    bool
	CanManageOrders     bool
	CanDeleteOrders     bool
	CanManagePromoCodes bool
	CanDeletePromoCodes bool
}

func (s Session) Can(c Capability) bool {
	if s.Role == RoleSuperAdmin {
		return true
	}
	switch c {
	case CapManageProducts:
		return s.CanManageProducts
	case CapDeleteProducts:
		return s.CanDeleteProducts
	case CapManageCategories:
		return s.CanManageCategories
	case CapDeleteCategories:
		return s.CanDeleteCategories
	case CapManageBanners:
		return s.CanManageBanners
	case CapDeleteBanners:
		return s.CanDeleteBanners
	case CapManageOrders:
		return s.CanManageOrders
	case CapDeleteOrders:
		return s.CanDeleteOrders
	case CapManagePromoCodes:
		return s.CanManagePromoCodes
	case CapDeletePromoCodes:
		return s.CanDeletePromoCodes
	}
	return false
}
