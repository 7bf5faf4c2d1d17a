package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tele1/storefront/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Product{}).
		Joins("LEFT JOIN categories ON categories.id = products.category_id")

	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(products.name) LIKE ? OR LOWER(products.sku) LIKE ? OR LOWER(categories.name) LIKE ?",
			like, like, like)
	}
	switch f.Category {
	case "", domain.CategoryAll:
		// no restriction
	case domain.CategoryUncategorized:
		// Recognized but unbound: every product carries a category, so this
		// branch intentionally adds no predicate.
	default:
		// The picker carries display names, so the match is by name.
		q = q.Where("categories.name = ?", f.Category)
	}
	switch f.StockStatus {
	case domain.StockIn:
		q = q.Where("products.stock > 10")
	case domain.StockLow:
		q = q.Where("products.stock > 0 AND products.stock <= 10")
	case domain.StockOut:
		q = q.Where("products.stock = 0")
	}
	if f.Trending {
		q = q.Where("products.is_trending = ?", true)
	}
	if f.BestSeller {
		q = q.Where("products.best_seller = ?", true)
	}
	if f.OnSale {
		q = q.Where("products.discount_price IS NOT NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 50
	}
	offset := (f.Page - 1) * f.PageSize

	var list []domain.Product
	if err := q.Order("products.created_at desc").
		Offset(offset).Limit(f.PageSize).
		Preload("Category").
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *ProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).Preload("Category").First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).Preload("Category").First(&p, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&domain.Product{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepo) Update(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Product{}, "id = ?", id).Error
	})
	if isForeignKeyViolation(err) {
		return domain.ErrForeignKey
	}
	return err
}

func (r *ProductRepo) WithOrders(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var list []domain.Product
	err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Select("products.id, products.name").
		Joins("JOIN order_items ON order_items.product_id = products.id").
		Where("products.id IN ?", ids).
		Group("products.id, products.name").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ProductRepo) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id IN ?", ids).Delete(&domain.Review{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&domain.Product{}).Error
	})
}

func (r *ProductRepo) SetTrending(ctx context.Context, ids []uuid.UUID, trending bool) error {
	return r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id IN ?", ids).Update("is_trending", trending).Error
}

func (r *ProductRepo) SetBestSeller(ctx context.Context, ids []uuid.UUID, bestSeller bool) error {
	return r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id IN ?", ids).Update("best_seller", bestSeller).Error
}

func (r *ProductRepo) ClearDiscounts(ctx context.Context, ids []uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"discount_price": nil,
			"discount_type":  nil,
			"discount_value": nil,
		}).Error
}

func (r *ProductRepo) Trending(ctx context.Context, limit int) ([]domain.Product, error) {
	return r.flagged(ctx, "is_trending = ?", limit)
}

func (r *ProductRepo) BestSellers(ctx context.Context, limit int) ([]domain.Product, error) {
	return r.flagged(ctx, "best_seller = ?", limit)
}

func (r *ProductRepo) flagged(ctx context.Context, cond string, limit int) ([]domain.Product, error) {
	var list []domain.Product
	q := r.db.WithContext(ctx).Where(cond, true).
		Order("created_at desc").Preload("Category")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ProductRepo) OnSale(ctx context.Context, limit int) ([]domain.Product, error) {
	var list []domain.Product
	q := r.db.WithContext(ctx).Where("discount_price IS NOT NULL").
		Order("updated_at desc").Preload("Category")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ProductRepo) Related(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) ([]domain.Product, error) {
	var list []domain.Product
	q := r.db.WithContext(ctx).
		Where("category_id = ? AND id <> ?", categoryID, excludeID).
		Order("created_at desc").Preload("Category")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Stats issues independent count queries; there is no denormalized counter.
func (r *ProductRepo) Stats(ctx context.Context) (domain.ProductStats, error) {
	var s domain.ProductStats
	m := r.db.WithContext(ctx).Model(&domain.Product{})
	if err := m.Count(&s.Total).Error; err != nil {
		return s, err
	}
	counts := []struct {
		cond string
		dst  *int64
	}{
		{"stock = 0", &s.OutOfStock},
		{"stock > 0 AND stock <= 10", &s.LowStock},
		{"discount_price IS NOT NULL", &s.OnSale},
		{"is_trending = true", &s.Trending},
		{"best_seller = true", &s.BestSellers},
	}
	for _, c := range counts {
		if err := r.db.WithContext(ctx).Model(&domain.Product{}).Where(c.cond).Count(c.dst).Error; err != nil {
			return s, err
		}
	}
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Distinct("category_id").Count(&s.Categories).Error; err != nil {
		return s, err
	}
	return s, nil
}

func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&n).Error
	return n, err
}
