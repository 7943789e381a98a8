package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/domain/model"
	repo "github.com/strobelightprojects/Nursery-inventory-management/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 一覧はsupplier名も連結して返す
const productRowSelect = "products.*, suppliers.name AS supplier_name"

const supplierJoin = "LEFT JOIN suppliers ON suppliers.id = products.supplier_id"

// 商品を検索/ソート/ページング付きで返す。
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]repo.ProductRow, int64, error) {
	var rows []repo.ProductRow
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Product{}).Joins(supplierJoin)

	// name/category/supplier名を対象。大文字小文字は区別しない
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where(
			"LOWER(products.name) LIKE ? OR LOWER(products.category) LIKE ? OR LOWER(suppliers.name) LIKE ?",
			like, like, like,
		)
	}

	//total（件数）
	if err := tx.Count(&total).Error; err != nil {
		return []repo.ProductRow{}, 0, err
	}

	//sort
	switch q.Sort {
	case "newest":
		tx = tx.Order("products.created_at desc").Order("products.id desc")
	default:
		tx = tx.Order("products.name asc").Order("products.id asc")
	}

	offset := (q.Page - 1) * q.Limit
	if err := tx.Select(productRowSelect).Offset(offset).Limit(q.Limit).Find(&rows).Error; err != nil {
		return []repo.ProductRow{}, 0, err
	}

	return rows, total, nil
}

// 発注点（reorder_at）を割った商品。reorder_at=0は対象外
func (r *ProductGormRepository) ListLowStock(ctx context.Context) ([]repo.ProductRow, error) {
	var rows []repo.ProductRow

	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select(productRowSelect).
		Joins(supplierJoin).
		Where("products.reorder_at > 0 AND products.quantity <= products.reorder_at").
		Order("products.quantity asc").Order("products.id asc").
		Find(&rows).Error
	if err != nil {
		return []repo.ProductRow{}, err
	}

	return rows, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		// nameのUNIQUE違反
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.Product{}, repo.ErrConflict
		}
		return model.Product{}, err
	}
	return p, nil
}

// 商品の部分更新。patchにある列だけを書く
func (r *ProductGormRepository) Update(ctx context.Context, id int64, patch repo.ProductPatch) error {
	values := map[string]interface{}{}
	if patch.Name != nil {
		values["name"] = *patch.Name
	}
	if patch.Category != nil {
		values["category"] = *patch.Category
	}
	if patch.Description != nil {
		values["description"] = *patch.Description
	}
	if patch.SKU != nil {
		values["sku"] = *patch.SKU
	}
	if patch.Price != nil {
		values["price"] = *patch.Price
	}
	if patch.CostPrice != nil {
		values["cost_price"] = *patch.CostPrice
	}
	if patch.Quantity != nil {
		values["quantity"] = *patch.Quantity
	}
	if patch.ReorderAt != nil {
		values["reorder_at"] = *patch.ReorderAt
	}
	if patch.ClearSupplier {
		values["supplier_id"] = nil
	} else if patch.SupplierID != nil {
		values["supplier_id"] = *patch.SupplierID
	}
	if patch.ImagePath != nil {
		values["image_path"] = *patch.ImagePath
	}
	if len(values) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return repo.ErrConflict
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除
func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		// order_itemsから参照されている
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return repo.ErrConflict
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// supplier削除ガード用の参照件数
func (r *ProductGormRepository) CountBySupplier(ctx context.Context, supplierID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("supplier_id = ?", supplierID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
