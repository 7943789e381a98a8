package repository

import (
	"context"
	"errors"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/domain/model"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// 一覧検索
type ProductListQuery struct {
	Page   int
	Limit  int
	Search string
	Sort   string
}

// supplier名を連結した一覧用の行
type ProductRow struct {
	model.Product
	SupplierName string `json:"supplier_name"`
}

// 部分更新の許可フィールド。ここに無い列は更新できない。
type ProductPatch struct {
	Name          *string
	Category      *string
	Description   *string
	SKU           *string
	Price         *float64
	CostPrice     *float64
	Quantity      *int64
	ReorderAt     *int64
	SupplierID    *int64
	ClearSupplier bool //supplier_idをNULLへ戻す
	ImagePath     *string
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]ProductRow, int64, error)
	ListLowStock(ctx context.Context) ([]ProductRow, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, id int64, patch ProductPatch) error
	Delete(ctx context.Context, id int64) error

	// supplier削除ガード用
	CountBySupplier(ctx context.Context, supplierID int64) (int64, error)
}
