package repository

import (
	"context"
	"errors"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/domain/model"
	repo "github.com/strobelightprojects/Nursery-inventory-management/internal/repository"

	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 在庫が足りるときだけ減らす
func (r *InventoryGormRepository) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ? AND quantity >= ?", productID, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 無条件の減算（マイナス在庫許容時）
func (r *InventoryGormRepository) DecreaseStock(ctx context.Context, productID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", productID).
		Update("quantity", gorm.Expr("quantity - ?", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 在庫戻し（注文取り消し）
func (r *InventoryGormRepository) IncreaseStock(ctx context.Context, productID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", productID).
		Update("quantity", gorm.Expr("quantity + ?", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 在庫にdeltaを加算して調整履歴も残す。調整後の在庫数を返す。
func (r *InventoryGormRepository) AdjustStockWithHistory(ctx context.Context, productID int64, delta int64, reason string, allowNegative bool) (int64, error) {
	var newQty int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//存在確認（無ければNotFound）
		var p model.Product
		if err := tx.First(&p, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		//products.quantityを更新
		q := tx.Model(&model.Product{}).Where("id = ?", productID)
		if !allowNegative {
			// マイナス在庫になる調整は弾く
			q = q.Where("quantity + ? >= 0", delta)
		}
		res := q.Update("quantity", gorm.Expr("quantity + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrInsufficientStock
		}

		//adjustmentsを作成
		adj := model.StockAdjustment{
			ProductID: productID,
			Delta:     delta,
			Reason:    reason,
		}
		if err := tx.Create(&adj).Error; err != nil {
			return err
		}

		//返す在庫数は更新後の行から読み直す。更新前の値との足し算にしない
		var updated model.Product
		if err := tx.First(&updated, productID).Error; err != nil {
			return err
		}
		newQty = updated.Quantity
		return nil
	})
	if err != nil {
		return 0, err
	}

	return newQty, nil
}

// 調整履歴（新しい順）
func (r *InventoryGormRepository) ListAdjustments(ctx context.Context, productID int64, limit int) ([]model.StockAdjustment, error) {
	var adjustments []model.StockAdjustment

	tx := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id desc")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&adjustments).Error; err != nil {
		return []model.StockAdjustment{}, err
	}

	return adjustments, nil
}
