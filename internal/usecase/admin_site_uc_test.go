package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tele1/storefront/internal/domain"
)

func TestCreatePromoCode_UppercasesAndRejectsDuplicates(t *testing.T) {
	promos := new(MockPromoCodeRepo)
	cache := &recordingCache{}
	uc := &AdminUC{PromoCodes: promos, Cache: cache}

	promos.On("FindByCode", mock.Anything, "SUMMER20").Return(nil, domain.ErrNotFound).Once()
	promos.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.PromoCode) bool {
		return p.Code == "SUMMER20"
	})).Return(nil)

	res := uc.CreatePromoCode(context.Background(), superAdminSession(), &domain.PromoCode{
		Code: "  summer20 ", DiscountPercentage: 20,
	})
	require.True(t, res.Success)

	promos.On("FindByCode", mock.Anything, "SUMMER20").Return(&domain.PromoCode{
		ID: uuid.New(), Code: "SUMMER20",
	}, nil)

	res = uc.CreatePromoCode(context.Background(), superAdminSession(), &domain.PromoCode{
		Code: "summer20", DiscountPercentage: 10,
	})
	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrPromoExists, res.Error)
}

func TestUpdatePromoCode_OwnCodeNotADuplicate(t *testing.T) {
	promos := new(MockPromoCodeRepo)
	uc := &AdminUC{PromoCodes: promos, Cache: &recordingCache{}}

	id := uuid.New()
	promos.On("FindByCode", mock.Anything, "VIP").Return(&domain.PromoCode{ID: id, Code: "VIP"}, nil)
	promos.On("Update", mock.Anything, mock.Anything).Return(nil)

	res := uc.UpdatePromoCode(context.Background(), superAdminSession(), &domain.PromoCode{
		ID: id, Code: "vip", DiscountPercentage: 15,
	})
	assert.True(t, res.Success)
}

func TestUpdateOrderStatus_RejectsUnknownStatus(t *testing.T) {
	orders := new(MockOrderRepo)
	uc := &AdminUC{Orders: orders, Cache: &recordingCache{}}

	res := uc.UpdateOrderStatus(context.Background(), superAdminSession(), uuid.New(), "ARCHIVED")

	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrInvalidStatus, res.Error)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderStatus_AnyToAny(t *testing.T) {
	orders := new(MockOrderRepo)
	uc := &AdminUC{Orders: orders, Cache: &recordingCache{}}

	id := uuid.New()
	orders.On("UpdateStatus", mock.Anything, id, domain.OrderStatusPending).Return(nil)

	// DELIVERED back to PENDING is allowed; there is no transition graph.
	res := uc.UpdateOrderStatus(context.Background(), superAdminSession(), id, domain.OrderStatusPending)
	assert.True(t, res.Success)
}

func TestDeleteCategory_BlockedWhileReferenced(t *testing.T) {
	categories := new(MockCategoryRepo)
	uc := &AdminUC{Categories: categories, Cache: &recordingCache{}}

	id := uuid.New()
	categories.On("ProductCount", mock.Anything, id).Return(int64(3), nil)

	res := uc.DeleteCategory(context.Background(), superAdminSession(), id)

	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrDeleteCategoryWithProduct, res.Error)
	categories.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestBulkDeleteCategories_PartialReportsNames(t *testing.T) {
	categories := new(MockCategoryRepo)
	uc := &AdminUC{Categories: categories, Cache: &recordingCache{}}

	busy := uuid.New()
	empty := uuid.New()
	ids := []uuid.UUID{busy, empty}

	categories.On("WithProducts", mock.Anything, ids).Return([]domain.Category{
		{ID: busy, Name: "Skincare"},
	}, nil)
	categories.On("DeleteMany", mock.Anything, []uuid.UUID{empty}).Return(nil)

	res := uc.BulkDeleteCategories(context.Background(), superAdminSession(), ids)

	assert.True(t, res.Success)
	assert.True(t, res.Partial)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, "Skincare", res.Names)
}

func TestUpdateSettings_RequiresAdmin(t *testing.T) {
	settings := new(MockSettingsRepo)
	uc := &AdminUC{Settings: settings, Cache: &recordingCache{}}

	res := uc.UpdateSettings(context.Background(), domain.Session{}, domain.DefaultSettings())
	assert.Equal(t, domain.ErrUnauthorized, res.Error)

	settings.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	res = uc.UpdateSettings(context.Background(), limitedSession(), domain.DefaultSettings())
	assert.True(t, res.Success)
}
