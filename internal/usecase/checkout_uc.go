package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tele1/storefront/internal/domain"
)

// CheckoutUC is the public write side: order placement and promo validation.
// No session is involved; these are customer-facing calls.
type CheckoutUC struct {
	Orders     domain.OrderRepo
	PromoCodes domain.PromoCodeRepo
	Cache      domain.CacheInvalidator
}

type PromoValidation struct {
	Valid              bool    `json:"valid"`
	Error              string  `json:"error,omitempty"`
	Code               string  `json:"code,omitempty"`
	DiscountPercentage float64 `json:"discountPercentage,omitempty"`
	PromoCodeID        string  `json:"promoCodeId,omitempty"`
}

func (uc *CheckoutUC) CreateOrder(ctx context.Context, o *domain.Order) domain.Result {
	if o == nil || o.Name == "" || len(o.Items) == 0 {
		return domain.Fail(domain.ErrCreateOrder)
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Status == "" {
		o.Status = domain.OrderStatusPending
	}
	for i := range o.Items {
		if o.Items[i].ID == uuid.Nil {
			o.Items[i].ID = uuid.New()
		}
		o.Items[i].OrderID = o.ID
	}
	if err := uc.Orders.Create(ctx, o); err != nil {
		log.Error().Err(err).Msg("create order")
		return domain.Fail(domain.ErrCreateOrder)
	}
	uc.Cache.Invalidate("/admin/orders", "/admin")
	return domain.OK()
}

func (uc *CheckoutUC) ValidatePromoCode(ctx context.Context, code string) PromoValidation {
	promo, err := uc.PromoCodes.FindByCode(ctx, normalizeCode(code))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return PromoValidation{Valid: false, Error: domain.ErrPromoInvalid}
		}
		log.Error().Err(err).Msg("validate promo code")
		return PromoValidation{Valid: false, Error: domain.ErrValidatePromo}
	}
	if !promo.IsActive {
		return PromoValidation{Valid: false, Error: domain.ErrPromoInactive}
	}
	return PromoValidation{
		Valid:              true,
		Code:               promo.Code,
		DiscountPercentage: promo.DiscountPercentage,
		PromoCodeID:        promo.ID.String(),
	}
}
