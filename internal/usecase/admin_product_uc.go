package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tele1/storefront/internal/domain"
)

func (uc *AdminUC) invalidateProducts() {
	uc.Cache.Invalidate("/admin/products", "/products", "/")
}

func (uc *AdminUC) CreateProduct(ctx context.Context, s domain.Session, p *domain.Product) domain.Result {
	if !s.Can(domain.CapManageProducts) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if p == nil || strings.TrimSpace(p.Name) == "" || p.CategoryID == uuid.Nil {
		return domain.Fail(domain.ErrCreateProduct)
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	slug, err := uniqueSlug(ctx, uc.Products, p.Name, uuid.Nil)
	if err != nil {
		log.Error().Err(err).Msg("create product slug")
		return domain.Fail(domain.ErrCreateProduct)
	}
	p.Slug = slug
	if p.Status == "" {
		p.Status = "ACTIVE"
	}
	if err := uc.Products.Create(ctx, p); err != nil {
		log.Error().Err(err).Msg("create product")
		return domain.Fail(domain.ErrCreateProduct)
	}
	uc.invalidateProducts()
	return domain.OK()
}

func (uc *AdminUC) UpdateProduct(ctx context.Context, s domain.Session, p *domain.Product) domain.Result {
	if !s.Can(domain.CapManageProducts) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if p == nil || p.ID == uuid.Nil || strings.TrimSpace(p.Name) == "" {
		return domain.Fail(domain.ErrUpdateProduct)
	}
	slug, err := uniqueSlug(ctx, uc.Products, p.Name, p.ID)
	if err != nil {
		log.Error().Err(err).Msg("update product slug")
		return domain.Fail(domain.ErrUpdateProduct)
	}
	p.Slug = slug
	if err := uc.Products.Update(ctx, p); err != nil {
		log.Error().Err(err).Msg("update product")
		return domain.Fail(domain.ErrUpdateProduct)
	}
	uc.invalidateProducts()
	return domain.OK()
}

// DeleteProduct removes the product and its reviews. A product still
// referenced by order items is kept and reported by code, so order history
// stays intact.
func (uc *AdminUC) DeleteProduct(ctx context.Context, s domain.Session, id uuid.UUID) domain.Result {
	if !s.Can(domain.CapDeleteProducts) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if err := uc.Products.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrForeignKey) {
			return domain.Fail(domain.ErrDeleteProductWithOrders)
		}
		log.Error().Err(err).Msg("delete product")
		return domain.Fail(domain.ErrDeleteProduct)
	}
	uc.invalidateProducts()
	return domain.OK()
}

func (uc *AdminUC) ToggleTrending(ctx context.Context, s domain.Session, id uuid.UUID, trending bool) domain.Result {
	if !s.Can(domain.CapManageProducts) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if err := uc.Products.SetTrending(ctx, []uuid.UUID{id}, trending); err != nil {
		log.Error().Err(err).Msg("toggle trending")
		return domain.Fail(domain.ErrToggleTrending)
	}
	uc.invalidateProducts()
	return domain.OK()
}

func (uc *AdminUC) ToggleBestSeller(ctx context.Context, s domain.Session, id uuid.UUID, bestSeller bool) domain.Result {
	if !s.Can(domain.CapManageProducts) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if err := uc.Products.SetBestSeller(ctx, []uuid.UUID{id}, bestSeller); err != nil {
		log.Error().Err(err).Msg("toggle best seller")
		return domain.Fail(domain.ErrToggleBestSeller)
	}
	uc.invalidateProducts()
	return domain.OK()
}

func (uc *AdminUC) BulkToggleTrending(ctx context.Context, s domain.Session, ids []uuid.UUID, trending bool) domain.BulkResult {
	if !s.Can(domain.CapManageProducts) {
		return domain.BulkFail(domain.ErrUnauthorized)
	}
	if err := uc.Products.SetTrending(ctx, ids, trending); err != nil {
		log.Error().Err(err).Msg("bulk toggle trending")
		return domain.BulkFail(domain.ErrBulkToggleTrending)
	}
	uc.invalidateProducts()
	return domain.BulkResult{Success: true, Count: len(ids)}
}

func (uc *AdminUC) BulkToggleBestSeller(ctx context.Context, s domain.Session, ids []uuid.UUID, bestSeller bool) domain.BulkResult {
	if !s.Can(domain.CapManageProducts) {
		return domain.BulkFail(domain.ErrUnauthorized)
	}
	if err := uc.Products.SetBestSeller(ctx, ids, bestSeller); err != nil {
		log.Error().Err(err).Msg("bulk toggle best seller")
		return domain.BulkFail(domain.ErrBulkToggleBestSeller)
	}
	uc.invalidateProducts()
	return domain.BulkResult{Success: true, Count: len(ids)}
}

func (uc *AdminUC) BulkRemoveSale(ctx context.Context, s domain.Session, ids []uuid.UUID) domain.BulkResult {
	if !s.Can(domain.CapManageProducts) {
		return domain.BulkFail(domain.ErrUnauthorized)
	}
	if err := uc.Products.ClearDiscounts(ctx, ids); err != nil {
		log.Error().Err(err).Msg("bulk remove sale")
		return domain.BulkFail(domain.ErrBulkRemoveSale)
	}
	uc.invalidateProducts()
	return domain.BulkResult{Success: true, Count: len(ids)}
}

// BulkDeleteProducts deletes what it can. Products referenced by order items
// are skipped and reported by name; the rest go in one transaction.
func (uc *AdminUC) BulkDeleteProducts(ctx context.Context, s domain.Session, ids []uuid.UUID) domain.BulkResult {
	if !s.Can(domain.CapDeleteProducts) {
		return domain.BulkFail(domain.ErrUnauthorized)
	}
	blocked, err := uc.Products.WithOrders(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("bulk delete products lookup")
		return domain.BulkFail(domain.ErrBulkDeleteProducts)
	}
	blockedIDs := make(map[uuid.UUID]struct{}, len(blocked))
	names := make([]string, 0, len(blocked))
	for _, p := range blocked {
		blockedIDs[p.ID] = struct{}{}
		names = append(names, p.Name)
	}
	deletable := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := blockedIDs[id]; !ok {
			deletable = append(deletable, id)
		}
	}
	if len(deletable) > 0 {
		if err := uc.Products.DeleteMany(ctx, deletable); err != nil {
			log.Error().Err(err).Msg("bulk delete products")
			return domain.BulkFail(domain.ErrBulkDeleteProducts)
		}
		uc.invalidateProducts()
	}
	return domain.BulkResult{
		Success: true,
		Partial: len(blocked) > 0,
		Count:   len(deletable),
		Names:   strings.Join(names, ", "),
	}
}
