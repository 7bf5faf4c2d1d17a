package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tele1/storefront/internal/domain"
)

type CategoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List(ctx context.Context, page, limit int) ([]domain.Category, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 500
	}
	var list []domain.Category
	if err := r.db.WithContext(ctx).
		Order("name asc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	if err := r.fillProductCounts(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *CategoryRepo) fillProductCounts(ctx context.Context, list []domain.Category) error {
	if len(list) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.ID)
	}
	var rows []struct {
		CategoryID uuid.UUID
		N          int64
	}
	err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Select("category_id, COUNT(*) AS n").
		Where("category_id IN ?", ids).
		Group("category_id").
		Find(&rows).Error
	if err != nil {
		return err
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.N
	}
	for i := range list {
		list[i].ProductCount = counts[list[i].ID]
	}
	return nil
}

func (r *CategoryRepo) All(ctx context.Context) ([]domain.Category, error) {
	var list []domain.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *CategoryRepo) Featured(ctx context.Context, limit int) ([]domain.Category, error) {
	var list []domain.Category
	q := r.db.WithContext(ctx).Where("is_featured = ?", true).Order("name asc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *CategoryRepo) Search(ctx context.Context, query string, limit int) ([]domain.Category, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var list []domain.Category
	q := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(name_ar) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *CategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategoryRepo) Update(ctx context.Context, c *domain.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&domain.Category{}, "id = ?", id).Error
	if isForeignKeyViolation(err) {
		return domain.ErrForeignKey
	}
	return err
}

func (r *CategoryRepo) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	return r.db.WithContext(ctx).Model(&domain.Category{}).
		Where("id = ?", id).Update("is_featured", featured).Error
}

func (r *CategoryRepo) ProductCount(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("category_id = ?", id).Count(&n).Error
	return n, err
}

func (r *CategoryRepo) WithProducts(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var list []domain.Category
	err := r.db.WithContext(ctx).Model(&domain.Category{}).
		Select("categories.id, categories.name").
		Joins("JOIN products ON products.category_id = categories.id").
		Where("categories.id IN ?", ids).
		Group("categories.id, categories.name").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *CategoryRepo) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&domain.Category{}).Error
}

func (r *CategoryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Category{}).Count(&n).Error
	return n, err
}
