package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tele1/storefront/internal/domain"
)

// CatalogUC serves the public read side. Reads never fail outward: a storage
// error is logged and the caller gets an empty result, so a broken database
// renders an empty page rather than an error page.
type CatalogUC struct {
	Products   domain.ProductRepo
	Categories domain.CategoryRepo
	Orders     domain.OrderRepo
	Reviews    domain.ReviewRepo
	Banners    domain.BannerRepo
	Settings   domain.SettingsRepo
}

func (uc *CatalogUC) ListProducts(ctx context.Context, f domain.ProductFilter) ([]domain.Product, domain.Pagination) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 50
	}
	list, total, err := uc.Products.List(ctx, f)
	if err != nil {
		log.Error().Err(err).Msg("list products")
		return []domain.Product{}, domain.NewPagination(0, f.Page, f.PageSize)
	}
	if list == nil {
		list = []domain.Product{}
	}
	return list, domain.NewPagination(total, f.Page, f.PageSize)
}

func (uc *CatalogUC) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if slug == "" {
		return nil, domain.ErrNotFound
	}
	return uc.Products.FindBySlug(ctx, slug)
}

func (uc *CatalogUC) ProductByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return uc.Products.FindByID(ctx, id)
}

func (uc *CatalogUC) RelatedProducts(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) []domain.Product {
	list, err := uc.Products.Related(ctx, categoryID, excludeID, limit)
	if err != nil {
		log.Error().Err(err).Msg("related products")
		return []domain.Product{}
	}
	return list
}

func (uc *CatalogUC) TrendingProducts(ctx context.Context, limit int) []domain.Product {
	list, err := uc.Products.Trending(ctx, limit)
	if err != nil {
		log.Error().Err(err).Msg("trending products")
		return []domain.Product{}
	}
	return list
}

func (uc *CatalogUC) BestSellers(ctx context.Context, limit int) []domain.Product {
	list, err := uc.Products.BestSellers(ctx, limit)
	if err != nil {
		log.Error().Err(err).Msg("best sellers")
		return []domain.Product{}
	}
	return list
}

func (uc *CatalogUC) OnSaleProducts(ctx context.Context, limit int) []domain.Product {
	list, err := uc.Products.OnSale(ctx, limit)
	if err != nil {
		log.Error().Err(err).Msg("on sale products")
		return []domain.Product{}
	}
	return list
}

func (uc *CatalogUC) ListCategories(ctx context.Context, page, limit int) ([]domain.Category, domain.Pagination) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 500
	}
	list, total, err := uc.Categories.List(ctx, page, limit)
	if err != nil {
		log.Error().Err(err).Msg("list categories")
		return []domain.Category{}, domain.NewPagination(0, page, limit)
	}
	if list == nil {
		list = []domain.Category{}
	}
	return list, domain.NewPagination(total, page, limit)
}

func (uc *CatalogUC) FeaturedCategories(ctx context.Context, limit int) []domain.Category {
	list, err := uc.Categories.Featured(ctx, limit)
	if err != nil {
		log.Error().Err(err).Msg("featured categories")
		return []domain.Category{}
	}
	return list
}

func (uc *CatalogUC) SearchCollections(ctx context.Context, query string, limit int) []domain.Category {
	list, err := uc.Categories.Search(ctx, query, limit)
	if err != nil {
		log.Error().Err(err).Msg("search collections")
		return []domain.Category{}
	}
	return list
}

func (uc *CatalogUC) ListOrders(ctx context.Context, page, limit int) ([]domain.Order, domain.Pagination) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	list, total, err := uc.Orders.List(ctx, page, limit)
	if err != nil {
		log.Error().Err(err).Msg("list orders")
		return []domain.Order{}, domain.NewPagination(0, page, limit)
	}
	if list == nil {
		list = []domain.Order{}
	}
	return list, domain.NewPagination(total, page, limit)
}

func (uc *CatalogUC) ListReviews(ctx context.Context, limit int) []domain.Review {
	list, err := uc.Reviews.List(ctx, limit)
	if err != nil {
		log.Error().Err(err).Msg("list reviews")
		return []domain.Review{}
	}
	return list
}

func (uc *CatalogUC) ActiveBanners(ctx context.Context) []domain.Banner {
	list, err := uc.Banners.Active(ctx)
	if err != nil {
		log.Error().Err(err).Msg("active banners")
		return []domain.Banner{}
	}
	return list
}

func (uc *CatalogUC) AllBanners(ctx context.Context) []domain.Banner {
	list, err := uc.Banners.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("all banners")
		return []domain.Banner{}
	}
	return list
}

// SiteSettings never fails: a broken read falls back to the in-memory
// defaults so the storefront keeps its copy.
func (uc *CatalogUC) SiteSettings(ctx context.Context) *domain.Settings {
	s, err := uc.Settings.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("site settings")
		return domain.DefaultSettings()
	}
	return s
}

func (uc *CatalogUC) ProductStats(ctx context.Context) domain.ProductStats {
	s, err := uc.Products.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("product stats")
		return domain.ProductStats{}
	}
	return s
}

func (uc *CatalogUC) DashboardStats(ctx context.Context) domain.DashboardStats {
	var stats domain.DashboardStats

	revenue, err := uc.Orders.DeliveredRevenue(ctx)
	if err != nil {
		log.Error().Err(err).Msg("dashboard revenue")
	} else {
		stats.TotalRevenue = revenue
	}
	if n, err := uc.Orders.Count(ctx); err == nil {
		stats.TotalOrders = n
	} else {
		log.Error().Err(err).Msg("dashboard order count")
	}
	if n, err := uc.Products.Count(ctx); err == nil {
		stats.TotalProducts = n
	} else {
		log.Error().Err(err).Msg("dashboard product count")
	}
	if n, err := uc.Categories.Count(ctx); err == nil {
		stats.TotalCategories = n
	} else {
		log.Error().Err(err).Msg("dashboard category count")
	}

	recent, err := uc.Orders.Recent(ctx, 5)
	if err != nil {
		log.Error().Err(err).Msg("dashboard recent orders")
		recent = []domain.Order{}
	}
	stats.RecentOrders = recent
	return stats
}
