package domain

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerName  string     `gorm:"size:140;not null" json:"customerName"`
	CustomerImage string     `gorm:"size:500" json:"customerImage"`
	Rating        int        `gorm:"not null" json:"rating"`
	Description   string     `gorm:"type:text" json:"description"`
	ProductID     *uuid.UUID `gorm:"type:uuid;index" json:"productId"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
