package repository

import (
	"context"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	List(ctx context.Context, page int, limit int) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	Delete(ctx context.Context, orderID int64) error
}
