package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tele1/storefront/internal/domain"
)

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// --- Orders ---

func (uc *AdminUC) UpdateOrderStatus(ctx context.Context, s domain.Session, id uuid.UUID, status domain.OrderStatus) domain.Result {
	if !s.Can(domain.CapManageOrders) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if !domain.ValidOrderStatus(status) {
		return domain.Fail(domain.ErrInvalidStatus)
	}
	if err := uc.Orders.UpdateStatus(ctx, id, status); err != nil {
		log.Error().Err(err).Msg("update order status")
		return domain.Fail(domain.ErrUpdateOrderStatus)
	}
	uc.Cache.Invalidate("/admin/orders", "/admin")
	return domain.OK()
}

func (uc *AdminUC) DeleteOrder(ctx context.Context, s domain.Session, id uuid.UUID) domain.Result {
	if !s.Can(domain.CapDeleteOrders) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if err := uc.Orders.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("delete order")
		return domain.Fail(domain.ErrDeleteOrder)
	}
	uc.Cache.Invalidate("/admin/orders", "/admin")
	return domain.OK()
}

// --- Banners ---

func (uc *AdminUC) invalidateBanners() {
	uc.Cache.Invalidate("/admin/banners", "/")
}

func (uc *AdminUC) CreateBanner(ctx context.Context, s domain.Session, b *domain.Banner) domain.Result {
	if !s.Can(domain.CapManageBanners) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if b == nil || strings.TrimSpace(b.Image) == "" {
		return domain.Fail(domain.ErrCreateBanner)
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.ButtonText == "" {
		b.ButtonText = "Shop Now"
	}
	if b.Link == "" {
		b.Link = "/products"
	}
	if err := uc.Banners.Create(ctx, b); err != nil {
		log.Error().Err(err).Msg("create banner")
		return domain.Fail(domain.ErrCreateBanner)
	}
	uc.invalidateBanners()
	return domain.OK()
}

func (uc *AdminUC) UpdateBanner(ctx context.Context, s domain.Session, b *domain.Banner) domain.Result {
	if !s.Can(domain.CapManageBanners) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if b == nil || b.ID == uuid.Nil {
		return domain.Fail(domain.ErrUpdateBanner)
	}
	if err := uc.Banners.Update(ctx, b); err != nil {
		log.Error().Err(err).Msg("update banner")
		return domain.Fail(domain.ErrUpdateBanner)
	}
	uc.invalidateBanners()
	return domain.OK()
}

func (uc *AdminUC) DeleteBanner(ctx context.Context, s domain.Session, id uuid.UUID) domain.Result {
	if !s.Can(domain.CapDeleteBanners) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if err := uc.Banners.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("delete banner")
		return domain.Fail(domain.ErrDeleteBanner)
	}
	uc.invalidateBanners()
	return domain.OK()
}

func (uc *AdminUC) ToggleBanner(ctx context.Context, s domain.Session, id uuid.UUID, active bool) domain.Result {
	if !s.Can(domain.CapManageBanners) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if err := uc.Banners.SetActive(ctx, id, active); err != nil {
		log.Error().Err(err).Msg("toggle banner")
		return domain.Fail(domain.ErrToggleBanner)
	}
	uc.invalidateBanners()
	return domain.OK()
}

// --- Promo codes ---

func (uc *AdminUC) ListPromoCodes(ctx context.Context, s domain.Session) []domain.PromoCode {
	if !s.Can(domain.CapManagePromoCodes) {
		return []domain.PromoCode{}
	}
	list, err := uc.PromoCodes.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("list promo codes")
		return []domain.PromoCode{}
	}
	return list
}

func (uc *AdminUC) CreatePromoCode(ctx context.Context, s domain.Session, p *domain.PromoCode) domain.Result {
	if !s.Can(domain.CapManagePromoCodes) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if p == nil || strings.TrimSpace(p.Code) == "" {
		return domain.Fail(domain.ErrCreatePromo)
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.Code = normalizeCode(p.Code)
	if existing, err := uc.PromoCodes.FindByCode(ctx, p.Code); err == nil && existing != nil {
		return domain.Fail(domain.ErrPromoExists)
	}
	if err := uc.PromoCodes.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.Fail(domain.ErrPromoExists)
		}
		log.Error().Err(err).Msg("create promo code")
		return domain.Fail(domain.ErrCreatePromo)
	}
	uc.Cache.Invalidate("/admin/promo-codes")
	return domain.OK()
}

func (uc *AdminUC) UpdatePromoCode(ctx context.Context, s domain.Session, p *domain.PromoCode) domain.Result {
	if !s.Can(domain.CapManagePromoCodes) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if p == nil || p.ID == uuid.Nil || strings.TrimSpace(p.Code) == "" {
		return domain.Fail(domain.ErrUpdatePromo)
	}
	p.Code = normalizeCode(p.Code)
	if existing, err := uc.PromoCodes.FindByCode(ctx, p.Code); err == nil && existing != nil && existing.ID != p.ID {
		return domain.Fail(domain.ErrPromoExists)
	}
	if err := uc.PromoCodes.Update(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.Fail(domain.ErrPromoExists)
		}
		log.Error().Err(err).Msg("update promo code")
		return domain.Fail(domain.ErrUpdatePromo)
	}
	uc.Cache.Invalidate("/admin/promo-codes")
	return domain.OK()
}

func (uc *AdminUC) DeletePromoCode(ctx context.Context, s domain.Session, id uuid.UUID) domain.Result {
	if !s.Can(domain.CapDeletePromoCodes) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if err := uc.PromoCodes.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("delete promo code")
		return domain.Fail(domain.ErrDeletePromo)
	}
	uc.Cache.Invalidate("/admin/promo-codes")
	return domain.OK()
}

func (uc *AdminUC) TogglePromoCode(ctx context.Context, s domain.Session, id uuid.UUID, active bool) domain.Result {
	if !s.Can(domain.CapManagePromoCodes) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if err := uc.PromoCodes.SetActive(ctx, id, active); err != nil {
		log.Error().Err(err).Msg("toggle promo code")
		return domain.Fail(domain.ErrTogglePromo)
	}
	uc.Cache.Invalidate("/admin/promo-codes")
	return domain.OK()
}

// --- Settings ---

func (uc *AdminUC) UpdateSettings(ctx context.Context, s domain.Session, settings *domain.Settings) domain.Result {
	if !isAdmin(s) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if settings == nil {
		return domain.Fail(domain.ErrUpdateSettings)
	}
	if err := uc.Settings.Upsert(ctx, settings); err != nil {
		log.Error().Err(err).Msg("update settings")
		return domain.Fail(domain.ErrUpdateSettings)
	}
	uc.Cache.Invalidate("/admin/settings", "/shipping-returns", "/categories")
	return domain.OK()
}

// --- Reviews ---

func (uc *AdminUC) CreateReview(ctx context.Context, s domain.Session, rev *domain.Review) domain.Result {
	if !isAdmin(s) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if rev == nil || strings.TrimSpace(rev.CustomerName) == "" {
		return domain.Fail(domain.ErrCreateReview)
	}
	if rev.ID == uuid.Nil {
		rev.ID = uuid.New()
	}
	if err := uc.Reviews.Create(ctx, rev); err != nil {
		log.Error().Err(err).Msg("create review")
		return domain.Fail(domain.ErrCreateReview)
	}
	uc.Cache.Invalidate("/admin/reviews", "/")
	return domain.OK()
}

func (uc *AdminUC) UpdateReview(ctx context.Context, s domain.Session, rev *domain.Review) domain.Result {
	if !isAdmin(s) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if rev == nil || rev.ID == uuid.Nil {
		return domain.Fail(domain.ErrUpdateReview)
	}
	if err := uc.Reviews.Update(ctx, rev); err != nil {
		log.Error().Err(err).Msg("update review")
		return domain.Fail(domain.ErrUpdateReview)
	}
	uc.Cache.Invalidate("/admin/reviews", "/")
	return domain.OK()
}

func (uc *AdminUC) DeleteReview(ctx context.Context, s domain.Session, id uuid.UUID) domain.Result {
	if !isAdmin(s) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if err := uc.Reviews.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("delete review")
		return domain.Fail(domain.ErrDeleteReview)
	}
	uc.Cache.Invalidate("/admin/reviews", "/")
	return domain.OK()
}
