package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password string    `gorm:"size:100;not null" json:"-"`
	Role     string    `gorm:"size:20;default:'ADMIN'" json:"role"`

	CanManageProducts   bool `gorm:"default:false" json:"canManageProducts"`
	CanDeleteProducts   bool `gorm:"default:false" json:"canDeleteProducts"`
	CanManageCategories bool `gorm:"default:false" json:"canManageCategories"`
	CanDeleteCategories bool `gorm:"default:false" json:"canDeleteCategories"`
	CanManageBanners    bool `gorm:"default:false" json:"canManageBanners"`
	CanDeleteBanners    bool `gorm:"default:false" json:"canDeleteBanners"`
	CanManageOrders     bool `gorm:"default:false" json:"canManageOrders"`
	CanDeleteOrders     bool `gorm:"default:false" json:"canDeleteOrders"`
	CanManagePromoCodes bool `gorm:"default:false" json:"canManagePromoCodes"`
	CanDeletePromoCodes bool `gorm:"default:false" json:"canDeletePromoCodes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session returns the capability token handed to mutations. The HTTP boundary
// derives it once per request; usecases re-check it on every call.
func (u *User) Session() Session {
	return Session{
		UserID:              u.ID,
		Username:            u.Username,
		Role:                u.Role,
		CanManageProducts:   u.CanManageProducts,
		CanDeleteProducts:   u.CanDeleteProducts,
		CanManageCategories: u.CanManageCategories,
		CanDeleteCategories: u.CanDeleteCategories,
		CanManageBanners:    u.CanManageBanners,
		CanDeleteBanners:    u.CanDeleteBanners,
		CanManageOrders:     u.CanManageOrders,
		CanDeleteOrders:     u.CanDeleteOrders,
		CanManagePromoCodes: u.CanManagePromoCodes,
		CanDeletePromoCodes: u.CanDeletePromoCodes,
	}
}
