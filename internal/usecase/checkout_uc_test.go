package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tele1/storefront/internal/domain"
)

func TestCreateOrder_AssignsIDsAndDefaults(t *testing.T) {
	orders := new(MockOrderRepo)
	uc := &CheckoutUC{Orders: orders, Cache: &recordingCache{}}

	orders.On("Create", mock.Anything, mock.Anything).Return(nil)

	o := &domain.Order{
		Name:  "Lina",
		Items: []domain.OrderItem{{Quantity: 2, Price: 10}},
	}
	res := uc.CreateOrder(context.Background(), o)

	require.True(t, res.Success)
	assert.NotEqual(t, uuid.Nil, o.ID)
	assert.Equal(t, domain.OrderStatusPending, o.Status)
	assert.Equal(t, o.ID, o.Items[0].OrderID)
	assert.NotEqual(t, uuid.Nil, o.Items[0].ID)
}

func TestCreateOrder_StructuredFailure(t *testing.T) {
	orders := new(MockOrderRepo)
	uc := &CheckoutUC{Orders: orders, Cache: &recordingCache{}}

	orders.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	res := uc.CreateOrder(context.Background(), &domain.Order{
		Name:  "Lina",
		Items: []domain.OrderItem{{Quantity: 1, Price: 5}},
	})

	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrCreateOrder, res.Error)
}

func TestCreateOrder_RejectsEmptyCart(t *testing.T) {
	orders := new(MockOrderRepo)
	uc := &CheckoutUC{Orders: orders, Cache: &recordingCache{}}

	res := uc.CreateOrder(context.Background(), &domain.Order{Name: "Lina"})

	assert.False(t, res.Success)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestValidatePromoCode(t *testing.T) {
	promos := new(MockPromoCodeRepo)
	uc := &CheckoutUC{PromoCodes: promos}

	active := &domain.PromoCode{ID: uuid.New(), Code: "SAVE10", DiscountPercentage: 10, IsActive: true}
	promos.On("FindByCode", mock.Anything, "SAVE10").Return(active, nil)
	promos.On("FindByCode", mock.Anything, "OLD").Return(&domain.PromoCode{Code: "OLD"}, nil)
	promos.On("FindByCode", mock.Anything, "NOPE").Return(nil, domain.ErrNotFound)

	v := uc.ValidatePromoCode(context.Background(), "save10")
	assert.True(t, v.Valid)
	assert.Equal(t, 10.0, v.DiscountPercentage)
	assert.Equal(t, active.ID.String(), v.PromoCodeID)

	v = uc.ValidatePromoCode(context.Background(), "old")
	assert.False(t, v.Valid)
	assert.Equal(t, domain.ErrPromoInactive, v.Error)

	v = uc.ValidatePromoCode(context.Background(), "nope")
	assert.False(t, v.Valid)
	assert.Equal(t, domain.ErrPromoInvalid, v.Error)
}
