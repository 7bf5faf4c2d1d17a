package domain

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:140;not null;index" json:"name"`
	NameAr      string    `gorm:"size:140" json:"nameAr"`
	Slug        string    `gorm:"size:160;index" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"size:500" json:"image"`
	IsFeatured  bool      `gorm:"default:false;index" json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Derived at read time, not a column.
	ProductCount int64 `gorm:"-" json:"productCount"`
}
