package usecase

import (
	"context"
	"strings"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/domain/model"
	repo "github.com/strobelightprojects/Nursery-inventory-management/internal/repository"
)

type ProductUsecase struct {
	productRepo   repo.ProductRepository
	supplierRepo  repo.SupplierRepository
	inventoryRepo repo.InventoryRepository
	tx            repo.TransactionManager

	allowNegativeStock bool
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	supplierRepo repo.SupplierRepository,
	inventoryRepo repo.InventoryRepository,
	tx repo.TransactionManager,
	allowNegativeStock bool,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:        productRepo,
		supplierRepo:       supplierRepo,
		inventoryRepo:      inventoryRepo,
		tx:                 tx,
		allowNegativeStock: allowNegativeStock,
	}
}

// GET /plantsの入力DTO
type ListProductsInput struct {
	Page   int
	Limit  int
	Search string
	Sort   string
}

type ProductListOutput struct {
	Items []repo.ProductRow `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewAppError(KindValidation, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewAppError(KindValidation, "invalid limit")
	}
	if len(in.Search) > 100 {
		return ProductListOutput{}, NewAppError(KindValidation, "search too long")
	}
	switch in.Sort {
	case "", "name", "newest":
	default:
		return ProductListOutput{}, NewAppError(KindValidation, "invalid sort")
	}

	items, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Page:   in.Page,
		Limit:  in.Limit,
		Search: strings.TrimSpace(in.Search),
		Sort:   in.Sort,
	})
	if err != nil {
		return ProductListOutput{}, NewAppError(KindStorage, "db error")
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

// 発注点を割った商品の一覧
func (u *ProductUsecase) ListLowStock(ctx context.Context) ([]repo.ProductRow, error) {
	rows, err := u.productRepo.ListLowStock(ctx)
	if err != nil {
		return []repo.ProductRow{}, NewAppError(KindStorage, "db error")
	}
	return rows, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewAppError(KindValidation, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewAppError(KindNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewAppError(KindStorage, "db error")
	}
	return p, nil
}

type CreateProductInput struct {
	Name        string
	Category    string
	Description string
	SKU         string
	Price       float64
	CostPrice   float64
	Quantity    int64
	ReorderAt   int64
	SupplierID  *int64
	ImagePath   string
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewAppError(KindValidation, "name required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return model.Product{}, NewAppError(KindValidation, "category required")
	}
	if in.Price < 0 {
		return model.Product{}, NewAppError(KindValidation, "price must be >= 0")
	}
	if in.CostPrice < 0 {
		return model.Product{}, NewAppError(KindValidation, "cost_price must be >= 0")
	}
	if in.Quantity < 0 && !u.allowNegativeStock {
		return model.Product{}, NewAppError(KindValidation, "quantity must be >= 0")
	}
	if in.ReorderAt < 0 {
		return model.Product{}, NewAppError(KindValidation, "reorder_at must be >= 0")
	}
	if err := u.checkSupplierExists(ctx, in.SupplierID); err != nil {
		return model.Product{}, err
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Description: in.Description,
		SKU:         strings.TrimSpace(in.SKU),
		Price:       in.Price,
		CostPrice:   in.CostPrice,
		Quantity:    in.Quantity,
		ReorderAt:   in.ReorderAt,
		SupplierID:  in.SupplierID,
		ImagePath:   in.ImagePath,
	})
	if err == repo.ErrConflict {
		return model.Product{}, NewAppError(KindConflict, "name already exists")
	}
	if err != nil {
		return model.Product{}, NewAppError(KindStorage, "db error")
	}
	return p, nil
}

// 部分更新の入力。nilのフィールドは触らない
type UpdateProductInput struct {
	Name        *string
	Category    *string
	Description *string
	SKU         *string
	Price       *float64
	CostPrice   *float64
	Quantity    *int64
	ReorderAt   *int64
	SupplierID  *int64
	ImagePath   *string
}

func (in UpdateProductInput) empty() bool {
	return in.Name == nil && in.Category == nil && in.Description == nil &&
		in.SKU == nil && in.Price == nil && in.CostPrice == nil &&
		in.Quantity == nil && in.ReorderAt == nil && in.SupplierID == nil &&
		in.ImagePath == nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID int64, in UpdateProductInput) error {
	if productID <= 0 {
		return NewAppError(KindValidation, "invalid product id")
	}
	if in.empty() {
		return NewAppError(KindValidation, "no fields to update")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return NewAppError(KindValidation, "name required")
	}
	if in.Category != nil && strings.TrimSpace(*in.Category) == "" {
		return NewAppError(KindValidation, "category required")
	}
	if in.Price != nil && *in.Price < 0 {
		return NewAppError(KindValidation, "price must be >= 0")
	}
	if in.CostPrice != nil && *in.CostPrice < 0 {
		return NewAppError(KindValidation, "cost_price must be >= 0")
	}
	if in.Quantity != nil && *in.Quantity < 0 && !u.allowNegativeStock {
		return NewAppError(KindValidation, "quantity must be >= 0")
	}
	if in.ReorderAt != nil && *in.ReorderAt < 0 {
		return NewAppError(KindValidation, "reorder_at must be >= 0")
	}

	// supplier_id=0はリンク解除の指定。存在確認は不要
	supplierID := in.SupplierID
	clearSupplier := false
	if in.SupplierID != nil && *in.SupplierID == 0 {
		supplierID = nil
		clearSupplier = true
	}
	if err := u.checkSupplierExists(ctx, supplierID); err != nil {
		return err
	}

	patch := repo.ProductPatch{
		Name:          trimmed(in.Name),
		Category:      trimmed(in.Category),
		Description:   in.Description,
		SKU:           trimmed(in.SKU),
		Price:         in.Price,
		CostPrice:     in.CostPrice,
		Quantity:      in.Quantity,
		ReorderAt:     in.ReorderAt,
		SupplierID:    supplierID,
		ClearSupplier: clearSupplier,
		ImagePath:     in.ImagePath,
	}

	err := u.productRepo.Update(ctx, productID, patch)
	if err == repo.ErrNotFound {
		return NewAppError(KindNotFound, "not found")
	}
	if err == repo.ErrConflict {
		return NewAppError(KindConflict, "name already exists")
	}
	if err != nil {
		return NewAppError(KindStorage, "db error")
	}
	return nil
}

// 注文から参照されている商品は消さない。判定と削除は同一トランザクション
func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewAppError(KindValidation, "invalid product id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		refs, err := r.OrderItems().CountByProductID(ctx, productID)
		if err != nil {
			return NewAppError(KindStorage, "db error")
		}
		if refs > 0 {
			return NewAppError(KindConflict, "product is referenced by orders")
		}

		err = r.Products().Delete(ctx, productID)
		if err == repo.ErrNotFound {
			return NewAppError(KindNotFound, "not found")
		}
		if err == repo.ErrConflict {
			return NewAppError(KindConflict, "product is referenced by orders")
		}
		if err != nil {
			return NewAppError(KindStorage, "db error")
		}
		return nil
	})
}

type AdjustStockOutput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// 入荷・棚卸し・廃棄などの在庫調整。調整後の在庫数を返す
func (u *ProductUsecase) AdjustStock(ctx context.Context, productID int64, delta int64, reason string) (AdjustStockOutput, error) {
	if productID <= 0 {
		return AdjustStockOutput{}, NewAppError(KindValidation, "invalid product id")
	}
	if delta == 0 {
		return AdjustStockOutput{}, NewAppError(KindValidation, "delta must not be zero")
	}

	newQty, err := u.inventoryRepo.AdjustStockWithHistory(ctx, productID, delta, strings.TrimSpace(reason), u.allowNegativeStock)
	if err == repo.ErrNotFound {
		return AdjustStockOutput{}, NewAppError(KindNotFound, "not found")
	}
	if err == repo.ErrInsufficientStock {
		return AdjustStockOutput{}, NewAppError(KindInsufficientStock, "insufficient stock")
	}
	if err != nil {
		return AdjustStockOutput{}, NewAppError(KindStorage, "db error")
	}

	return AdjustStockOutput{ProductID: productID, Quantity: newQty}, nil
}

func (u *ProductUsecase) ListAdjustments(ctx context.Context, productID int64) ([]model.StockAdjustment, error) {
	if productID <= 0 {
		return []model.StockAdjustment{}, NewAppError(KindValidation, "invalid product id")
	}

	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return []model.StockAdjustment{}, NewAppError(KindNotFound, "not found")
		}
		return []model.StockAdjustment{}, NewAppError(KindStorage, "db error")
	}

	//まずは直近100件固定で取る
	adjustments, err := u.inventoryRepo.ListAdjustments(ctx, productID, 100)
	if err != nil {
		return []model.StockAdjustment{}, NewAppError(KindStorage, "db error")
	}
	return adjustments, nil
}

// supplier_idが指定されたときだけ存在確認
func (u *ProductUsecase) checkSupplierExists(ctx context.Context, supplierID *int64) error {
	if supplierID == nil {
		return nil
	}
	if *supplierID <= 0 {
		return NewAppError(KindValidation, "invalid supplier_id")
	}

	_, err := u.supplierRepo.FindByID(ctx, *supplierID)
	if err == repo.ErrNotFound {
		return NewAppError(KindNotFound, "supplier not found")
	}
	if err != nil {
		return NewAppError(KindStorage, "db error")
	}
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
