package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tele1/storefront/internal/domain"
)

type PromoCodeRepo struct{ db *gorm.DB }

func NewPromoCodeRepo(db *gorm.DB) *PromoCodeRepo { return &PromoCodeRepo{db: db} }

func (r *PromoCodeRepo) List(ctx context.Context) ([]domain.PromoCode, error) {
	var list []domain.PromoCode
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	if err := r.fillMonthSales(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *PromoCodeRepo) fillMonthSales(ctx context.Context, list []domain.PromoCode) error {
	if len(list) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var rows []struct {
		PromoCodeID uuid.UUID
		Total       float64
	}
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Select("promo_code_id, COALESCE(SUM(total_amount), 0) AS total").
		Where("promo_code_id IN ? AND created_at >= ?", ids, monthStart).
		Group("promo_code_id").
		Find(&rows).Error
	if err != nil {
		return err
	}
	totals := make(map[uuid.UUID]float64, len(rows))
	for _, row := range rows {
		totals[row.PromoCodeID] = row.Total
	}
	for i := range list {
		list[i].ThisMonthSales = totals[list[i].ID]
	}
	return nil
}

func (r *PromoCodeRepo) FindByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	var p domain.PromoCode
	if err := r.db.WithContext(ctx).First(&p, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PromoCodeRepo) Create(ctx context.Context, p *domain.PromoCode) error {
	err := r.db.WithContext(ctx).Create(p).Error
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *PromoCodeRepo) Update(ctx context.Context, p *domain.PromoCode) error {
	err := r.db.WithContext(ctx).Save(p).Error
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *PromoCodeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.PromoCode{}, "id = ?", id).Error
}

func (r *PromoCodeRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.db.WithContext(ctx).Model(&domain.PromoCode{}).
		Where("id = ?", id).Update("is_active", active).Error
}
