package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tele1/storefront/internal/domain"
)

type BannerRepo struct{ db *gorm.DB }

func NewBannerRepo(db *gorm.DB) *BannerRepo { return &BannerRepo{db: db} }

func (r *BannerRepo) List(ctx context.Context) ([]domain.Banner, error) {
	var list []domain.Banner
	if err := r.db.WithContext(ctx).Order("sort_order asc, created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *BannerRepo) Active(ctx context.Context) ([]domain.Banner, error) {
	var list []domain.Banner
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order asc, created_at desc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *BannerRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Banner, error) {
	var b domain.Banner
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BannerRepo) Create(ctx context.Context, b *domain.Banner) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BannerRepo) Update(ctx context.Context, b *domain.Banner) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BannerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Banner{}, "id = ?", id).Error
}

func (r *BannerRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.db.WithContext(ctx).Model(&domain.Banner{}).
		Where("id = ?", id).Update("is_active", active).Error
}
