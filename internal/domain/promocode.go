package domain

import (
	"time"

	"github.com/google/uuid"
)

type PromoCode struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code               string    `gorm:"uniqueIndex;size:60;not null" json:"code"`
	DiscountPercentage float64   `gorm:"type:decimal(5,2);not null" json:"discountPercentage"`
	DelegateName       string    `gorm:"size:140" json:"delegateName"`
	IsActive           bool      `gorm:"default:true;index" json:"isActive"`
	TotalSales         float64   `gorm:"type:decimal(12,2);default:0" json:"totalSales"`
	Orders             []Order   `gorm:"foreignKey:PromoCodeID" json:"-"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`

	// Sum of associated order totals since the first of the current month,
	// computed at read time.
	ThisMonthSales float64 `gorm:"-" json:"thisMonthSales"`
}
