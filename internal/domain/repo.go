package domain

import (
	"context"

	"github.com/google/uuid"
)

type ProductRepo interface {
	List(ctx context.Context, f ProductFilter) ([]Product, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error

	// Delete removes the product's reviews then the product inside one
	// transaction. A remaining order-item reference maps to ErrForeignKey.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithOrders returns id+name of the given products that are referenced
	// by at least one order item.
	WithOrders(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	DeleteMany(ctx context.Context, ids []uuid.UUID) error

	SetTrending(ctx context.Context, ids []uuid.UUID, trending bool) error
	SetBestSeller(ctx context.Context, ids []uuid.UUID, bestSeller bool) error
	ClearDiscounts(ctx context.Context, ids []uuid.UUID) error

	Trending(ctx context.Context, limit int) ([]Product, error)
	BestSellers(ctx context.Context, limit int) ([]Product, error)
	OnSale(ctx context.Context, limit int) ([]Product, error)
	Related(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) ([]Product, error)
	Stats(ctx context.Context) (ProductStats, error)
	Count(ctx context.Context) (int64, error)
}

type CategoryRepo interface {
	List(ctx context.Context, page, limit int) ([]Category, int64, error)
	All(ctx context.Context) ([]Category, error)
	Featured(ctx context.Context, limit int) ([]Category, error)
	Search(ctx context.Context, query string, limit int) ([]Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error
	ProductCount(ctx context.Context, id uuid.UUID) (int64, error)

	// WithProducts returns id+name of the given categories still referenced
	// by at least one product.
	WithProducts(ctx context.Context, ids []uuid.UUID) ([]Category, error)
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type OrderRepo interface {
	List(ctx context.Context, page, limit int) ([]Order, int64, error)
	Recent(ctx context.Context, limit int) ([]Order, error)
	Create(ctx context.Context, o *Order) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	// DeliveredRevenue sums totalAmount over DELIVERED orders only.
	DeliveredRevenue(ctx context.Context) (float64, error)
}

type ReviewRepo interface {
	List(ctx context.Context, limit int) ([]Review, error)
	Create(ctx context.Context, r *Review) error
	Update(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BannerRepo interface {
	List(ctx context.Context) ([]Banner, error)
	Active(ctx context.Context) ([]Banner, error)
	Create(ctx context.Context, b *Banner) error
	Update(ctx context.Context, b *Banner) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type PromoCodeRepo interface {
	// List returns promo codes newest first with ThisMonthSales filled in.
	List(ctx context.Context) ([]PromoCode, error)
	FindByCode(ctx context.Context, code string) (*PromoCode, error)
	Create(ctx context.Context, p *PromoCode) error
	Update(ctx context.Context, p *PromoCode) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*Settings, error)
	Upsert(ctx context.Context, s *Settings) error
}

type UserRepo interface {
	List(ctx context.Context) ([]User, error)
	First(ctx context.Context) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CacheInvalidator receives the logical page paths a successful mutation
// made stale. It is a hint, not a consistency protocol.
type CacheInvalidator interface {
	Invalidate(paths ...string)
}
