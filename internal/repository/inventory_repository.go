package repository

import (
	"context"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/domain/model"
)

type InventoryRepository interface {
	// 在庫が足りるときだけ減算
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)

	// マイナス在庫許容時の無条件減算
	DecreaseStock(ctx context.Context, productID int64, qty int64) error

	// 在庫戻し（注文取り消し）
	IncreaseStock(ctx context.Context, productID int64, qty int64) error

	// 差分調整と履歴作成を同一トランザクションで行い、調整後の在庫数を返す
	AdjustStockWithHistory(ctx context.Context, productID int64, delta int64, reason string, allowNegative bool) (int64, error)

	// 調整履歴（新しい順）
	ListAdjustments(ctx context.Context, productID int64, limit int) ([]model.StockAdjustment, error)
}
