package repository

import (
	"context"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/domain/model"
)

// 部分更新の許可フィールド。
type SupplierPatch struct {
	Name          *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
}

type SupplierRepository interface {
	// name昇順で全件
	List(ctx context.Context) ([]model.Supplier, error)
	FindByID(ctx context.Context, id int64) (model.Supplier, error)

	Create(ctx context.Context, s model.Supplier) (model.Supplier, error)
	Update(ctx context.Context, id int64, patch SupplierPatch) error
	Delete(ctx context.Context, id int64) error
}
