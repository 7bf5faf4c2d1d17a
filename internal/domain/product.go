package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlaceholderImage is substituted when a product carries no usable image URL.
const PlaceholderImage = "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=800"

type Product struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Slug          string     `gorm:"uniqueIndex;size:160" json:"slug"`
	Name          string     `gorm:"size:180;not null" json:"name"`
	Description   string     `gorm:"type:text" json:"description"`
	SKU           string     `gorm:"size:100;index" json:"sku"`
	Price         float64    `gorm:"type:decimal(12,2);not null" json:"price"`
	DiscountPrice *float64   `gorm:"type:decimal(12,2)" json:"discountPrice"`
	DiscountType  *string    `gorm:"size:20" json:"discountType"`
	DiscountValue *float64   `gorm:"type:decimal(12,2)" json:"discountValue"`
	Stock         int        `gorm:"not null;default:0" json:"stock"`
	Status        string     `gorm:"size:20;default:'ACTIVE'" json:"status"`
	IsTrending    bool       `gorm:"default:false;index" json:"isTrending"`
	BestSeller    bool       `gorm:"default:false;index" json:"bestSeller"`
	Images        string     `gorm:"type:text" json:"images"`
	SupImage1     *string    `gorm:"size:500" json:"supImage1"`
	SupImage2     *string    `gorm:"size:500" json:"supImage2"`
	Badge         *string    `gorm:"size:60" json:"badge"`
	CategoryID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"categoryId"`
	Category      *Category  `json:"category,omitempty"`
	SubCategoryID *uuid.UUID `gorm:"type:uuid;index" json:"subCategoryId"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// ImageList is the printable image set: the comma-joined Images column split,
// the two supplemental URLs appended when not already present, de-duplicated
// by exact match preserving order. An empty list falls back to the placeholder.
func (p *Product) ImageList() []string {
	out := []string{}
	seen := map[string]struct{}{}
	add := func(raw string) {
		u := strings.TrimSpace(raw)
		if u == "" {
			return
		}
		if _, ok := seen[u]; ok {
			return
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	for _, part := range strings.Split(p.Images, ",") {
		add(part)
	}
	if p.SupImage1 != nil {
		add(*p.SupImage1)
	}
	if p.SupImage2 != nil {
		add(*p.SupImage2)
	}
	if len(out) == 0 {
		out = append(out, PlaceholderImage)
	}
	return out
}

func (p *Product) OnSale() bool { return p.DiscountPrice != nil }

type SubCategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"categoryId"`
	Name       string    `gorm:"size:140;not null" json:"name"`
	Slug       string    `gorm:"size:160;index" json:"slug"`
	Image      string    `gorm:"size:500" json:"image"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
