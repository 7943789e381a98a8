package repository

import (
	"context"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/domain/model"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	DeleteByOrderID(ctx context.Context, orderID int64) error

	// 商品削除ガード用
	CountByProductID(ctx context.Context, productID int64) (int64, error)
}
