package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"
	repo "github.com/mduy26100/ZTino-Shop-sub000/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postgresの一意制約違反か
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type CartItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

// カート明細を一覧取得
func (r *CartItemGormRepository) ListByCartID(ctx context.Context, cartID string) ([]model.CartItem, error) {
	var items []model.CartItem

	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.CartItem{}, err
	}

	return items, nil
}

func (r *CartItemGormRepository) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	var item model.CartItem

	err := r.db.WithContext(ctx).
		Where("id = ?", cartItemID).
		First(&item).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

// 同一バリアントは数量加算
func (r *CartItemGormRepository) UpsertByCartAndVariant(ctx context.Context, cartID string, variantID int64, addQty int64) error {
	if addQty <= 0 {
		return errors.New("invalid quantity")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item model.CartItem

		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("cart_id = ? AND variant_id = ?", cartID, variantID).
			First(&item).Error

		if err == nil {
			// 既存ありなら数量を増やす
			res := tx.Model(&model.CartItem{}).
				Where("id = ?", item.ID).
				Update("quantity", item.Quantity+addQty)

			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return repo.ErrNotFound
			}
			return nil
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 無い場合は新規作成。行が無いとFOR UPDATEでは競合を塞げないので、
		// 同時INSERTに負けたら既存行への加算にフォールバックする
		newItem := model.CartItem{
			CartID:    cartID,
			VariantID: variantID,
			Quantity:  addQty,
			AddedAt:   time.Now(),
		}
		if err := tx.Create(&newItem).Error; err != nil {
			if isUniqueViolation(err) {
				res := tx.Model(&model.CartItem{}).
					Where("cart_id = ? AND variant_id = ?", cartID, variantID).
					Update("quantity", gorm.Expr("quantity + ?", addQty))
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return repo.ErrNotFound
				}
				return nil
			}
			return err
		}
		return nil
	})
}

// 明細の数量を更新
func (r *CartItemGormRepository) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("id = ?", cartItemID).
		Update("quantity", qty)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 明細を削除
func (r *CartItemGormRepository) DeleteByID(ctx context.Context, cartItemID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.CartItem{}, cartItemID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// チェックアウトで消費した明細をまとめて削除
func (r *CartItemGormRepository) DeleteByIDs(ctx context.Context, cartID string, cartItemIDs []int64) (int64, error) {
	if len(cartItemIDs) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Where("cart_id = ? AND id IN ?", cartID, cartItemIDs).
		Delete(&model.CartItem{})

	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
