package domain

import (
	"time"

	"github.com/google/uuid"
)

type Banner struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string    `gorm:"size:180" json:"title"`
	Subtitle   string    `gorm:"size:255" json:"subtitle"`
	TitleAr    string    `gorm:"size:180" json:"titleAr"`
	SubtitleAr string    `gorm:"size:255" json:"subtitleAr"`
	Image      string    `gorm:"size:500;not null" json:"image"`
	ButtonText string    `gorm:"size:60;default:'Shop Now'" json:"buttonText"`
	Link       string    `gorm:"size:255;default:'/products'" json:"link"`
	IsActive   bool      `gorm:"default:true;index" json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
