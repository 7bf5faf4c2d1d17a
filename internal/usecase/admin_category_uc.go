package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tele1/storefront/internal/domain"
)

func (uc *AdminUC) invalidateCategories() {
	uc.Cache.Invalidate("/admin/categories", "/categories", "/")
}

func (uc *AdminUC) CreateCategory(ctx context.Context, s domain.Session, c *domain.Category) domain.Result {
	if !s.Can(domain.CapManageCategories) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if c == nil || strings.TrimSpace(c.Name) == "" {
		return domain.Fail(domain.ErrCreateCategory)
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Slug == "" {
		c.Slug = slugify(c.Name)
	}
	if err := uc.Categories.Create(ctx, c); err != nil {
		log.Error().Err(err).Msg("create category")
		return domain.Fail(domain.ErrCreateCategory)
	}
	uc.invalidateCategories()
	return domain.OK()
}

func (uc *AdminUC) UpdateCategory(ctx context.Context, s domain.Session, c *domain.Category) domain.Result {
	if !s.Can(domain.CapManageCategories) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if c == nil || c.ID == uuid.Nil || strings.TrimSpace(c.Name) == "" {
		return domain.Fail(domain.ErrUpdateCategory)
	}
	if c.Slug == "" {
		c.Slug = slugify(c.Name)
	}
	if err := uc.Categories.Update(ctx, c); err != nil {
		log.Error().Err(err).Msg("update category")
		return domain.Fail(domain.ErrUpdateCategory)
	}
	uc.invalidateCategories()
	return domain.OK()
}

// DeleteCategory refuses while products still reference the category.
func (uc *AdminUC) DeleteCategory(ctx context.Context, s domain.Session, id uuid.UUID) domain.Result {
	if !s.Can(domain.CapDeleteCategories) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	n, err := uc.Categories.ProductCount(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("delete category count")
		return domain.Fail(domain.ErrDeleteCategory)
	}
	if n > 0 {
		return domain.Fail(domain.ErrDeleteCategoryWithProduct)
	}
	if err := uc.Categories.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrForeignKey) {
			return domain.Fail(domain.ErrDeleteCategoryWithProduct)
		}
		log.Error().Err(err).Msg("delete category")
		return domain.Fail(domain.ErrDeleteCategory)
	}
	uc.invalidateCategories()
	return domain.OK()
}

func (uc *AdminUC) ToggleCategoryFeatured(ctx context.Context, s domain.Session, id uuid.UUID, featured bool) domain.Result {
	if !s.Can(domain.CapManageCategories) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if err := uc.Categories.SetFeatured(ctx, id, featured); err != nil {
		log.Error().Err(err).Msg("toggle category featured")
		return domain.Fail(domain.ErrToggleCategoryFeatured)
	}
	uc.invalidateCategories()
	return domain.OK()
}

// BulkDeleteCategories skips categories still holding products and reports
// them by name, deleting the rest.
func (uc *AdminUC) BulkDeleteCategories(ctx context.Context, s domain.Session, ids []uuid.UUID) domain.BulkResult {
	if !s.Can(domain.CapDeleteCategories) {
		return domain.BulkFail(domain.ErrUnauthorized)
	}
	blocked, err := uc.Categories.WithProducts(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("bulk delete categories lookup")
		return domain.BulkFail(domain.ErrBulkDeleteCategories)
	}
	blockedIDs := make(map[uuid.UUID]struct{}, len(blocked))
	names := make([]string, 0, len(blocked))
	for _, c := range blocked {
		blockedIDs[c.ID] = struct{}{}
		names = append(names, c.Name)
	}
	deletable := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := blockedIDs[id]; !ok {
			deletable = append(deletable, id)
		}
	}
	if len(deletable) > 0 {
		if err := uc.Categories.DeleteMany(ctx, deletable); err != nil {
			log.Error().Err(err).Msg("bulk delete categories")
			return domain.BulkFail(domain.ErrBulkDeleteCategories)
		}
		uc.invalidateCategories()
	}
	return domain.BulkResult{
		Success: true,
		Partial: len(blocked) > 0,
		Count:   len(deletable),
		Names:   strings.Join(names, ", "),
	}
}
