package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"
	repo "github.com/mduy26100/ZTino-Shop-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartUsecase はカートの業務ロジック。
// userID が nil の呼び出しはゲスト扱い。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	variantRepo  repo.VariantRepository
	guard        StockGuard
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	variantRepo repo.VariantRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		variantRepo:  variantRepo,
	}
}

type CartItemResponse struct {
	ID          int64           `json:"id"`
	VariantID   int64           `json:"variant_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Thumbnail   string          `json:"thumbnail"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int64           `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type CartResponse struct {
	ID     string             `json:"id"`
	UserID *int64             `json:"user_id,omitempty"`
	Items  []CartItemResponse `json:"items"`
	Total  decimal.Decimal    `json:"total"`
}

type AddCartItemInput struct {
	CartID    *string
	VariantID int64
	Quantity  int64
}

// カートの解決。3ケースに分かれる:
//  1. cartIDの指定あり → そのカート。未所有で認証済みなら所有者を付ける
//  2. 指定なし＋認証済み → 既存のアクティブカート、無ければ新規作成
//  3. 指定なし＋ゲスト → 新規ゲストカート
func (u *CartUsecase) resolveCart(ctx context.Context, userID *int64, cartID *string) (model.Cart, error) {
	if cartID != nil && *cartID != "" {
		cart, err := u.cartRepo.FindByID(ctx, *cartID)
		if errors.Is(err, repo.ErrNotFound) {
			return model.Cart{}, NewNotFound("cart not found")
		}
		if err != nil {
			return model.Cart{}, err
		}
		if !cart.IsActive {
			return model.Cart{}, NewNotFound("cart not found")
		}
		// 他人のカートは存在しない扱い
		if !cart.AccessibleBy(userID) {
			return model.Cart{}, NewNotFound("cart not found")
		}
		// ゲストカートを認証ユーザーが触ったら、そのユーザーのものにする
		if cart.UserID == nil && userID != nil {
			if err := u.cartRepo.ClaimOwnership(ctx, cart.ID, *userID); err != nil {
				return model.Cart{}, err
			}
			cart.UserID = userID
		}
		return cart, nil
	}

	if userID != nil {
		cart, err := u.cartRepo.FindActiveByUserID(ctx, *userID)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return model.Cart{}, err
		}

		newCart := model.Cart{
			ID:        uuid.NewString(),
			UserID:    userID,
			IsActive:  true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := u.cartRepo.Create(ctx, newCart); err != nil {
			return model.Cart{}, err
		}
		return newCart, nil
	}

	// ゲストカート
	newCart := model.Cart{
		ID:        uuid.NewString(),
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := u.cartRepo.Create(ctx, newCart); err != nil {
		return model.Cart{}, err
	}
	return newCart, nil
}

// GetCart はカート取得（無ければ作って空を返す）。
func (u *CartUsecase) GetCart(ctx context.Context, userID *int64, cartID *string) (CartResponse, error) {
	cart, err := u.resolveCart(ctx, userID, cartID)
	if err != nil {
		return CartResponse{}, err
	}
	return u.buildCartResponse(ctx, cart)
}

// AddToCart はカートに追加（同一バリアントは数量加算）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID *int64, in AddCartItemInput) (CartResponse, error) {
	if in.VariantID <= 0 {
		return CartResponse{}, NewBusinessRule("invalid variant id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewBusinessRule("quantity must be at least 1")
	}

	cart, err := u.resolveCart(ctx, userID, in.CartID)
	if err != nil {
		return CartResponse{}, err
	}

	v, err := u.variantRepo.FindByID(ctx, in.VariantID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewNotFound("product variant not found")
	}
	if err != nil {
		return CartResponse{}, err
	}

	// 既にカートに入っている数量と合算してガードを通す
	items, err := u.cartItemRepo.ListByCartID(ctx, cart.ID)
	if err != nil {
		return CartResponse{}, err
	}

	var existingQty int64 = 0
	for _, it := range items {
		if it.VariantID == in.VariantID {
			existingQty = it.Quantity
			break
		}
	}

	if err := u.guard.Check(v, existingQty, in.Quantity); err != nil {
		return CartResponse{}, err
	}

	if err := u.cartItemRepo.UpsertByCartAndVariant(ctx, cart.ID, in.VariantID, in.Quantity); err != nil {
		return CartResponse{}, err
	}
	if err := u.cartRepo.Touch(ctx, cart.ID); err != nil {
		return CartResponse{}, err
	}

	return u.buildCartResponse(ctx, cart)
}

// 数量変更（所有チェック＋在庫ガード）。
func (u *CartUsecase) UpdateCartItem(ctx context.Context, userID *int64, cartID string, cartItemID int64, qty int64) (CartResponse, error) {
	if qty < 1 {
		return CartResponse{}, NewBusinessRule("quantity must be at least 1")
	}

	cart, item, err := u.findOwnedItem(ctx, userID, cartID, cartItemID)
	if err != nil {
		return CartResponse{}, err
	}

	v, err := u.variantRepo.FindByID(ctx, item.VariantID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewNotFound("product variant not found")
	}
	if err != nil {
		return CartResponse{}, err
	}

	// 変更後の数量そのものでガードを通す
	if err := u.guard.Check(v, 0, qty); err != nil {
		return CartResponse{}, err
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, cartItemID, qty); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, NewNotFound("cart item not found")
		}
		return CartResponse{}, err
	}
	if err := u.cartRepo.Touch(ctx, cart.ID); err != nil {
		return CartResponse{}, err
	}

	return u.buildCartResponse(ctx, cart)
}

// 明細削除。
func (u *CartUsecase) RemoveCartItem(ctx context.Context, userID *int64, cartID string, cartItemID int64) (CartResponse, error) {
	cart, _, err := u.findOwnedItem(ctx, userID, cartID, cartItemID)
	if err != nil {
		return CartResponse{}, err
	}

	if err := u.cartItemRepo.DeleteByID(ctx, cartItemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, NewNotFound("cart item not found")
		}
		return CartResponse{}, err
	}
	if err := u.cartRepo.Touch(ctx, cart.ID); err != nil {
		return CartResponse{}, err
	}

	return u.buildCartResponse(ctx, cart)
}

// カートと明細を引いて、明細がそのカートのものであることを確認する。
func (u *CartUsecase) findOwnedItem(ctx context.Context, userID *int64, cartID string, cartItemID int64) (model.Cart, model.CartItem, error) {
	cart, err := u.resolveCart(ctx, userID, &cartID)
	if err != nil {
		return model.Cart{}, model.CartItem{}, err
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Cart{}, model.CartItem{}, NewNotFound("cart item not found")
	}
	if err != nil {
		return model.Cart{}, model.CartItem{}, err
	}
	if item.CartID != cart.ID {
		return model.Cart{}, model.CartItem{}, NewNotFound("cart item not found")
	}

	return cart, item, nil
}

// 明細をまとめてCartResponseを作る。販売停止になったバリアントは表示から外す。
func (u *CartUsecase) buildCartResponse(ctx context.Context, cart model.Cart) (CartResponse, error) {
	items, err := u.cartItemRepo.ListByCartID(ctx, cart.ID)
	if err != nil {
		return CartResponse{}, err
	}

	respItems := make([]CartItemResponse, 0, len(items))
	total := decimal.Zero

	for _, it := range items {
		v, err := u.variantRepo.FindByID(ctx, it.VariantID)
		if err != nil {
			continue
		}
		if !v.IsActive {
			continue
		}

		lineTotal := v.Price.Mul(decimal.NewFromInt(it.Quantity))
		respItems = append(respItems, CartItemResponse{
			ID:          it.ID,
			VariantID:   it.VariantID,
			ProductName: v.ProductName,
			SKU:         v.SKU(),
			Thumbnail:   v.Thumbnail,
			UnitPrice:   v.Price,
			Quantity:    it.Quantity,
			LineTotal:   lineTotal,
		})

		total = total.Add(lineTotal)
	}

	return CartResponse{
		ID:     cart.ID,
		UserID: cart.UserID,
		Items:  respItems,
		Total:  total,
	}, nil
}
