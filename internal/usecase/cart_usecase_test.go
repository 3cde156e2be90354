package usecase_test

import (
	"context"
	"testing"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"
	repo "github.com/mduy26100/ZTino-Shop-sub000/internal/repository"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type cartEnv struct {
	carts    *CartRepoMock
	items    *CartItemRepoMock
	variants *VariantRepoMock
	uc       *usecase.CartUsecase
}

func newCartEnv() *cartEnv {
	e := &cartEnv{
		carts:    new(CartRepoMock),
		items:    new(CartItemRepoMock),
		variants: new(VariantRepoMock),
	}
	e.uc = usecase.NewCartUsecase(e.carts, e.items, e.variants)
	return e
}

func activeVariant(id int64, price float64, stock int64) model.ProductVariant {
	return model.ProductVariant{
		ID:          id,
		ProductName: "Basic Tee",
		ProductSlug: "basic-tee",
		ColorName:   "Black",
		SizeName:    "M",
		Price:       decimal.NewFromFloat(price),
		Stock:       stock,
		IsActive:    true,
	}
}

// =====================
// GetCart / cart resolution
// =====================

func TestCart_GetCart_CreatesGuestCartWhenNoID(t *testing.T) {
	e := newCartEnv()

	var created model.Cart
	e.carts.On("Create", mock.Anything, mock.AnythingOfType("model.Cart")).
		Run(func(args mock.Arguments) { created = args.Get(1).(model.Cart) }).
		Return(nil)
	e.items.On("ListByCartID", mock.Anything, mock.AnythingOfType("string")).
		Return([]model.CartItem{}, nil)

	resp, err := e.uc.GetCart(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Nil(t, resp.UserID)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Total.IsZero())

	// ゲストカートは所有者なしで作られる
	assert.Nil(t, created.UserID)
	assert.True(t, created.IsActive)
}

func TestCart_GetCart_ReusesActiveCartForUser(t *testing.T) {
	e := newCartEnv()

	userID := int64(7)
	existing := model.Cart{ID: "cart-1", UserID: &userID, IsActive: true}
	e.carts.On("FindActiveByUserID", mock.Anything, userID).Return(existing, nil)
	e.items.On("ListByCartID", mock.Anything, "cart-1").Return([]model.CartItem{}, nil)

	resp, err := e.uc.GetCart(context.Background(), &userID, nil)
	assert.NoError(t, err)
	assert.Equal(t, "cart-1", resp.ID)

	e.carts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCart_GetCart_CreatesCartWhenUserHasNone(t *testing.T) {
	e := newCartEnv()

	userID := int64(7)
	e.carts.On("FindActiveByUserID", mock.Anything, userID).
		Return(model.Cart{}, repo.ErrNotFound)

	var created model.Cart
	e.carts.On("Create", mock.Anything, mock.AnythingOfType("model.Cart")).
		Run(func(args mock.Arguments) { created = args.Get(1).(model.Cart) }).
		Return(nil)
	e.items.On("ListByCartID", mock.Anything, mock.AnythingOfType("string")).
		Return([]model.CartItem{}, nil)

	_, err := e.uc.GetCart(context.Background(), &userID, nil)
	assert.NoError(t, err)
	if assert.NotNil(t, created.UserID) {
		assert.Equal(t, userID, *created.UserID)
	}
}

func TestCart_GetCart_ForeignCartHidden(t *testing.T) {
	e := newCartEnv()

	owner := int64(8)
	e.carts.On("FindByID", mock.Anything, "cart-1").
		Return(model.Cart{ID: "cart-1", UserID: &owner, IsActive: true}, nil)

	caller := int64(7)
	cartID := "cart-1"
	_, err := e.uc.GetCart(context.Background(), &caller, &cartID)
	assertErrKind(t, err, usecase.KindNotFound)
}

func TestCart_GetCart_GuestCannotOpenOwnedCart(t *testing.T) {
	e := newCartEnv()

	owner := int64(8)
	e.carts.On("FindByID", mock.Anything, "cart-1").
		Return(model.Cart{ID: "cart-1", UserID: &owner, IsActive: true}, nil)

	cartID := "cart-1"
	_, err := e.uc.GetCart(context.Background(), nil, &cartID)
	assertErrKind(t, err, usecase.KindNotFound)
}

func TestCart_GetCart_UserClaimsGuestCart(t *testing.T) {
	e := newCartEnv()

	userID := int64(7)
	e.carts.On("FindByID", mock.Anything, "cart-1").
		Return(model.Cart{ID: "cart-1", UserID: nil, IsActive: true}, nil)
	e.carts.On("ClaimOwnership", mock.Anything, "cart-1", userID).Return(nil)
	e.items.On("ListByCartID", mock.Anything, "cart-1").Return([]model.CartItem{}, nil)

	cartID := "cart-1"
	resp, err := e.uc.GetCart(context.Background(), &userID, &cartID)
	assert.NoError(t, err)
	if assert.NotNil(t, resp.UserID) {
		assert.Equal(t, userID, *resp.UserID)
	}
	e.carts.AssertCalled(t, "ClaimOwnership", mock.Anything, "cart-1", userID)
}

func TestCart_GetCart_InactiveCartNotFound(t *testing.T) {
	e := newCartEnv()

	e.carts.On("FindByID", mock.Anything, "cart-1").
		Return(model.Cart{ID: "cart-1", IsActive: false}, nil)

	cartID := "cart-1"
	_, err := e.uc.GetCart(context.Background(), nil, &cartID)
	assertErrKind(t, err, usecase.KindNotFound)
}

// =====================
// AddToCart
// =====================

func TestCart_AddToCart_Success(t *testing.T) {
	e := newCartEnv()

	cartID := "cart-1"
	e.carts.On("FindByID", mock.Anything, cartID).
		Return(model.Cart{ID: cartID, IsActive: true}, nil)
	e.variants.On("FindByID", mock.Anything, int64(11)).Return(activeVariant(11, 150.50, 10), nil)
	e.items.On("ListByCartID", mock.Anything, cartID).Return([]model.CartItem{}, nil).Once()
	e.items.On("UpsertByCartAndVariant", mock.Anything, cartID, int64(11), int64(2)).Return(nil)
	e.carts.On("Touch", mock.Anything, cartID).Return(nil)
	e.items.On("ListByCartID", mock.Anything, cartID).
		Return([]model.CartItem{{ID: 1, CartID: cartID, VariantID: 11, Quantity: 2}}, nil)

	resp, err := e.uc.AddToCart(context.Background(), nil, usecase.AddCartItemInput{
		CartID: &cartID, VariantID: 11, Quantity: 2,
	})
	assert.NoError(t, err)
	if assert.Len(t, resp.Items, 1) {
		assert.Equal(t, "basic-tee-black-m", resp.Items[0].SKU)
		assert.True(t, resp.Items[0].LineTotal.Equal(decimal.NewFromFloat(301.00)))
	}
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(301.00)))
}

func TestCart_AddToCart_CumulativeQuantityGuard(t *testing.T) {
	e := newCartEnv()

	cartID := "cart-1"
	e.carts.On("FindByID", mock.Anything, cartID).
		Return(model.Cart{ID: cartID, IsActive: true}, nil)
	e.variants.On("FindByID", mock.Anything, int64(11)).Return(activeVariant(11, 100, 5), nil)
	// 既に4個入っているので +2 は在庫5を超える
	e.items.On("ListByCartID", mock.Anything, cartID).
		Return([]model.CartItem{{ID: 1, CartID: cartID, VariantID: 11, Quantity: 4}}, nil)

	_, err := e.uc.AddToCart(context.Background(), nil, usecase.AddCartItemInput{
		CartID: &cartID, VariantID: 11, Quantity: 2,
	})
	assertErrKind(t, err, usecase.KindBusinessRule)
	assertErrContains(t, err, "insufficient stock")

	e.items.AssertNotCalled(t, "UpsertByCartAndVariant",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCart_AddToCart_InactiveVariant(t *testing.T) {
	e := newCartEnv()

	cartID := "cart-1"
	v := activeVariant(11, 100, 5)
	v.IsActive = false
	e.carts.On("FindByID", mock.Anything, cartID).
		Return(model.Cart{ID: cartID, IsActive: true}, nil)
	e.variants.On("FindByID", mock.Anything, int64(11)).Return(v, nil)
	e.items.On("ListByCartID", mock.Anything, cartID).Return([]model.CartItem{}, nil)

	_, err := e.uc.AddToCart(context.Background(), nil, usecase.AddCartItemInput{
		CartID: &cartID, VariantID: 11, Quantity: 1,
	})
	assertErrKind(t, err, usecase.KindBusinessRule)
	assertErrContains(t, err, "not available for sale")
}

func TestCart_AddToCart_VariantNotFound(t *testing.T) {
	e := newCartEnv()

	cartID := "cart-1"
	e.carts.On("FindByID", mock.Anything, cartID).
		Return(model.Cart{ID: cartID, IsActive: true}, nil)
	e.variants.On("FindByID", mock.Anything, int64(99)).
		Return(model.ProductVariant{}, repo.ErrNotFound)

	_, err := e.uc.AddToCart(context.Background(), nil, usecase.AddCartItemInput{
		CartID: &cartID, VariantID: 99, Quantity: 1,
	})
	assertErrKind(t, err, usecase.KindNotFound)
}

func TestCart_AddToCart_InvalidQuantity(t *testing.T) {
	e := newCartEnv()

	cartID := "cart-1"
	_, err := e.uc.AddToCart(context.Background(), nil, usecase.AddCartItemInput{
		CartID: &cartID, VariantID: 11, Quantity: 0,
	})
	assertErrKind(t, err, usecase.KindBusinessRule)
}

// =====================
// UpdateCartItem / RemoveCartItem
// =====================

func TestCart_UpdateCartItem_Success(t *testing.T) {
	e := newCartEnv()

	cartID := "cart-1"
	e.carts.On("FindByID", mock.Anything, cartID).
		Return(model.Cart{ID: cartID, IsActive: true}, nil)
	e.items.On("FindByID", mock.Anything, int64(1)).
		Return(model.CartItem{ID: 1, CartID: cartID, VariantID: 11, Quantity: 2}, nil)
	e.variants.On("FindByID", mock.Anything, int64(11)).Return(activeVariant(11, 100, 10), nil)
	e.items.On("UpdateQuantity", mock.Anything, int64(1), int64(5)).Return(nil)
	e.carts.On("Touch", mock.Anything, cartID).Return(nil)
	e.items.On("ListByCartID", mock.Anything, cartID).
		Return([]model.CartItem{{ID: 1, CartID: cartID, VariantID: 11, Quantity: 5}}, nil)

	resp, err := e.uc.UpdateCartItem(context.Background(), nil, cartID, 1, 5)
	assert.NoError(t, err)
	if assert.Len(t, resp.Items, 1) {
		assert.Equal(t, int64(5), resp.Items[0].Quantity)
	}
}

func TestCart_UpdateCartItem_ExceedsStock(t *testing.T) {
	e := newCartEnv()

	cartID := "cart-1"
	e.carts.On("FindByID", mock.Anything, cartID).
		Return(model.Cart{ID: cartID, IsActive: true}, nil)
	e.items.On("FindByID", mock.Anything, int64(1)).
		Return(model.CartItem{ID: 1, CartID: cartID, VariantID: 11, Quantity: 2}, nil)
	e.variants.On("FindByID", mock.Anything, int64(11)).Return(activeVariant(11, 100, 3), nil)

	_, err := e.uc.UpdateCartItem(context.Background(), nil, cartID, 1, 5)
	assertErrKind(t, err, usecase.KindBusinessRule)

	e.items.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestCart_UpdateCartItem_ItemFromAnotherCart(t *testing.T) {
	e := newCartEnv()

	cartID := "cart-1"
	e.carts.On("FindByID", mock.Anything, cartID).
		Return(model.Cart{ID: cartID, IsActive: true}, nil)
	// 明細は別カートに属している
	e.items.On("FindByID", mock.Anything, int64(1)).
		Return(model.CartItem{ID: 1, CartID: "cart-other", VariantID: 11, Quantity: 2}, nil)

	_, err := e.uc.UpdateCartItem(context.Background(), nil, cartID, 1, 3)
	assertErrKind(t, err, usecase.KindNotFound)
}

func TestCart_RemoveCartItem_Success(t *testing.T) {
	e := newCartEnv()

	cartID := "cart-1"
	e.carts.On("FindByID", mock.Anything, cartID).
		Return(model.Cart{ID: cartID, IsActive: true}, nil)
	e.items.On("FindByID", mock.Anything, int64(1)).
		Return(model.CartItem{ID: 1, CartID: cartID, VariantID: 11, Quantity: 2}, nil)
	e.items.On("DeleteByID", mock.Anything, int64(1)).Return(nil)
	e.carts.On("Touch", mock.Anything, cartID).Return(nil)
	e.items.On("ListByCartID", mock.Anything, cartID).Return([]model.CartItem{}, nil)

	resp, err := e.uc.RemoveCartItem(context.Background(), nil, cartID, 1)
	assert.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Total.IsZero())
}

func TestCart_Response_SkipsInactiveVariants(t *testing.T) {
	e := newCartEnv()

	userID := int64(7)
	cart := model.Cart{ID: "cart-1", UserID: &userID, IsActive: true}
	e.carts.On("FindActiveByUserID", mock.Anything, userID).Return(cart, nil)
	e.items.On("ListByCartID", mock.Anything, "cart-1").Return([]model.CartItem{
		{ID: 1, CartID: "cart-1", VariantID: 11, Quantity: 1},
		{ID: 2, CartID: "cart-1", VariantID: 12, Quantity: 1},
	}, nil)

	live := activeVariant(11, 100, 10)
	dead := activeVariant(12, 50, 10)
	dead.IsActive = false
	e.variants.On("FindByID", mock.Anything, int64(11)).Return(live, nil)
	e.variants.On("FindByID", mock.Anything, int64(12)).Return(dead, nil)

	resp, err := e.uc.GetCart(context.Background(), &userID, nil)
	assert.NoError(t, err)
	// 販売停止の明細は表示も合計も対象外
	if assert.Len(t, resp.Items, 1) {
		assert.Equal(t, int64(11), resp.Items[0].VariantID)
	}
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(100)))
}
