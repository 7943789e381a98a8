package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/domain/model"
	repo "github.com/strobelightprojects/Nursery-inventory-management/internal/repository"
	"github.com/strobelightprojects/Nursery-inventory-management/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（Product向け：衝突回避の命名）
// =====================

type ProdProductRepoMock struct{ mock.Mock }

func (m *ProdProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]repo.ProductRow, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]repo.ProductRow)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProdProductRepoMock) ListLowStock(ctx context.Context) ([]repo.ProductRow, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]repo.ProductRow)
	return items, args.Error(1)
}

func (m *ProdProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProdProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProdProductRepoMock) Update(ctx context.Context, id int64, patch repo.ProductPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *ProdProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProdProductRepoMock) CountBySupplier(ctx context.Context, supplierID int64) (int64, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).(int64), args.Error(1)
}

type ProdSupplierRepoMock struct{ mock.Mock }

func (m *ProdSupplierRepoMock) List(ctx context.Context) ([]model.Supplier, error) {
	panic("not used in ProductUsecase tests")
}

func (m *ProdSupplierRepoMock) FindByID(ctx context.Context, id int64) (model.Supplier, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Supplier)
	return s, args.Error(1)
}

func (m *ProdSupplierRepoMock) Create(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	panic("not used in ProductUsecase tests")
}

func (m *ProdSupplierRepoMock) Update(ctx context.Context, id int64, patch repo.SupplierPatch) error {
	panic("not used in ProductUsecase tests")
}

func (m *ProdSupplierRepoMock) Delete(ctx context.Context, id int64) error {
	panic("not used in ProductUsecase tests")
}

type ProdInventoryRepoMock struct{ mock.Mock }

func (m *ProdInventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	panic("not used in ProductUsecase tests")
}

func (m *ProdInventoryRepoMock) DecreaseStock(ctx context.Context, productID int64, qty int64) error {
	panic("not used in ProductUsecase tests")
}

func (m *ProdInventoryRepoMock) IncreaseStock(ctx context.Context, productID int64, qty int64) error {
	panic("not used in ProductUsecase tests")
}

func (m *ProdInventoryRepoMock) AdjustStockWithHistory(ctx context.Context, productID int64, delta int64, reason string, allowNegative bool) (int64, error) {
	args := m.Called(ctx, productID, delta, reason, allowNegative)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProdInventoryRepoMock) ListAdjustments(ctx context.Context, productID int64, limit int) ([]model.StockAdjustment, error) {
	args := m.Called(ctx, productID, limit)
	items, _ := args.Get(0).([]model.StockAdjustment)
	return items, args.Error(1)
}

// DeleteProduct用のTxモック
type ProdTxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *ProdTxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type ProdTxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	products   repo.ProductRepository
	suppliers  repo.SupplierRepository
	inventory  repo.InventoryRepository
}

func (r *ProdTxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *ProdTxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *ProdTxReposMock) Products() repo.ProductRepository     { return r.products }
func (r *ProdTxReposMock) Suppliers() repo.SupplierRepository   { return r.suppliers }
func (r *ProdTxReposMock) Inventory() repo.InventoryRepository  { return r.inventory }

// OrderItemのCountだけ使う
type ProdOrderItemRepoMock struct{ mock.Mock }

func (m *ProdOrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	panic("not used in ProductUsecase tests")
}

func (m *ProdOrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	panic("not used in ProductUsecase tests")
}

func (m *ProdOrderItemRepoMock) DeleteByOrderID(ctx context.Context, orderID int64) error {
	panic("not used in ProductUsecase tests")
}

func (m *ProdOrderItemRepoMock) CountByProductID(ctx context.Context, productID int64) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func newProductUsecaseForTest(p *ProdProductRepoMock, s *ProdSupplierRepoMock, i *ProdInventoryRepoMock, tx *ProdTxManagerMock, allowNegative bool) *usecase.ProductUsecase {
	return usecase.NewProductUsecase(p, s, i, tx, allowNegative)
}

// =====================
// List / LowStock / Get
// =====================

func TestProductUsecase_ListProducts_InvalidPage(t *testing.T) {
	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 0, Limit: 20})
	assertErrContains(t, err, "invalid page")
}

func TestProductUsecase_ListProducts_InvalidLimit(t *testing.T) {
	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 101})
	assertErrContains(t, err, "invalid limit")
}

func TestProductUsecase_ListProducts_InvalidSort(t *testing.T) {
	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 20, Sort: "price"})
	assertErrContains(t, err, "invalid sort")
}

// 検索語はトリムしてrepoへ渡す
func TestProductUsecase_ListProducts_Success_TrimsSearch(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	uc := newProductUsecaseForTest(pRepo, new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	q := repo.ProductListQuery{Page: 1, Limit: 20, Search: "rose", Sort: "name"}
	rows := []repo.ProductRow{
		{Product: model.Product{ID: 1, Name: "Moss Rose"}, SupplierName: "Test Supplier Co."},
	}
	pRepo.On("List", mock.Anything, q).Return(rows, int64(1), nil)

	out, err := uc.ListProducts(ctx, usecase.ListProductsInput{Page: 1, Limit: 20, Search: "  rose  ", Sort: "name"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Equal(t, "Test Supplier Co.", out.Items[0].SupplierName)

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_ListLowStock_Success(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	uc := newProductUsecaseForTest(pRepo, new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	pRepo.On("ListLowStock", mock.Anything).Return([]repo.ProductRow{
		{Product: model.Product{ID: 2, Name: "Fern", Quantity: 3, ReorderAt: 10}},
	}, nil)

	rows, err := uc.ListLowStock(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(rows))
}

func TestProductUsecase_GetProduct_NotFound(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	uc := newProductUsecaseForTest(pRepo, new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProduct(ctx, 99)
	assertErrContains(t, err, "not found")
	assertErrKind(t, err, usecase.KindNotFound)
}

// =====================
// CreateProduct
// =====================

func TestProductUsecase_CreateProduct_NameRequired(t *testing.T) {
	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	_, err := uc.CreateProduct(context.Background(), usecase.CreateProductInput{Name: "  ", Category: "Annual", Price: 4.00, Quantity: 10})
	assertErrContains(t, err, "name required")
}

func TestProductUsecase_CreateProduct_CategoryRequired(t *testing.T) {
	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	_, err := uc.CreateProduct(context.Background(), usecase.CreateProductInput{Name: "Sun Flower", Price: 4.00, Quantity: 10})
	assertErrContains(t, err, "category required")
}

func TestProductUsecase_CreateProduct_NegativePrice(t *testing.T) {
	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	_, err := uc.CreateProduct(context.Background(), usecase.CreateProductInput{Name: "Sun Flower", Category: "Annual", Price: -1, Quantity: 10})
	assertErrContains(t, err, "price must be >= 0")
}

// マイナス初期在庫はポリシー次第
func TestProductUsecase_CreateProduct_NegativeQuantity_Policy(t *testing.T) {
	ctx := context.Background()

	// ポリシーOFF: 弾く
	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)
	_, err := uc.CreateProduct(ctx, usecase.CreateProductInput{Name: "Sun Flower", Category: "Annual", Price: 4.00, Quantity: -5})
	assertErrContains(t, err, "quantity must be >= 0")

	// ポリシーON: 通す
	pRepo := new(ProdProductRepoMock)
	ucNeg := newProductUsecaseForTest(pRepo, new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), true)

	pRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Quantity == -5
	})).Return(model.Product{ID: 1, Quantity: -5}, nil)

	_, err = ucNeg.CreateProduct(ctx, usecase.CreateProductInput{Name: "Sun Flower", Category: "Annual", Price: 4.00, Quantity: -5})
	assert.NoError(t, err)

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_CreateProduct_SupplierNotFound(t *testing.T) {
	ctx := context.Background()

	sRepo := new(ProdSupplierRepoMock)
	uc := newProductUsecaseForTest(new(ProdProductRepoMock), sRepo, new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	supplierID := int64(77)
	sRepo.On("FindByID", mock.Anything, supplierID).Return(model.Supplier{}, repo.ErrNotFound)

	_, err := uc.CreateProduct(ctx, usecase.CreateProductInput{
		Name: "Sun Flower", Category: "Annual", Price: 4.00, Quantity: 10, SupplierID: &supplierID,
	})
	assertErrContains(t, err, "supplier not found")
	assertErrKind(t, err, usecase.KindNotFound)
}

func TestProductUsecase_CreateProduct_DuplicateName(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	uc := newProductUsecaseForTest(pRepo, new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	pRepo.On("Create", mock.Anything, mock.AnythingOfType("model.Product")).Return(model.Product{}, repo.ErrConflict)

	_, err := uc.CreateProduct(ctx, usecase.CreateProductInput{Name: "Sun Flower", Category: "Annual", Price: 4.00, Quantity: 10})
	assertErrContains(t, err, "name already exists")
	assertErrKind(t, err, usecase.KindConflict)
}

func TestProductUsecase_CreateProduct_Success_TrimsFields(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	uc := newProductUsecaseForTest(pRepo, new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	pRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "Moss Rose" && p.Category == "Perennial" && p.SKU == "MR200" &&
			p.Price == 6.50 && p.CostPrice == 3.50 && p.Quantity == 50 && p.ReorderAt == 10
	})).Return(model.Product{ID: 2, Name: "Moss Rose"}, nil)

	out, err := uc.CreateProduct(ctx, usecase.CreateProductInput{
		Name:      " Moss Rose ",
		Category:  " Perennial ",
		SKU:       " MR200 ",
		Price:     6.50,
		CostPrice: 3.50,
		Quantity:  50,
		ReorderAt: 10,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), out.ID)

	pRepo.AssertExpectations(t)
}

// =====================
// UpdateProduct
// =====================

func TestProductUsecase_UpdateProduct_NoFields(t *testing.T) {
	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	err := uc.UpdateProduct(context.Background(), 1, usecase.UpdateProductInput{})
	assertErrContains(t, err, "no fields to update")
}

func TestProductUsecase_UpdateProduct_BlankName(t *testing.T) {
	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	blank := "   "
	err := uc.UpdateProduct(context.Background(), 1, usecase.UpdateProductInput{Name: &blank})
	assertErrContains(t, err, "name required")
}

func TestProductUsecase_UpdateProduct_NotFound(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	uc := newProductUsecaseForTest(pRepo, new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	price := 9.99
	pRepo.On("Update", mock.Anything, int64(999), mock.AnythingOfType("repository.ProductPatch")).Return(repo.ErrNotFound)

	err := uc.UpdateProduct(ctx, 999, usecase.UpdateProductInput{Price: &price})
	assertErrContains(t, err, "not found")
}

// patchには指定したフィールドだけが入る
func TestProductUsecase_UpdateProduct_Success_PartialPatch(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	uc := newProductUsecaseForTest(pRepo, new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	price := 9.99
	pRepo.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(p repo.ProductPatch) bool {
		return p.Price != nil && *p.Price == 9.99 &&
			p.Name == nil && p.Category == nil && p.Quantity == nil
	})).Return(nil)

	err := uc.UpdateProduct(ctx, 1, usecase.UpdateProductInput{Price: &price})
	assert.NoError(t, err)

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_UpdateProduct_NegativeQuantity_PolicyOff(t *testing.T) {
	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	qty := int64(-10)
	err := uc.UpdateProduct(context.Background(), 1, usecase.UpdateProductInput{Quantity: &qty})
	assertErrContains(t, err, "quantity must be >= 0")
}

// supplier_id=0はリンク解除として渡り、supplierの存在確認は走らない
func TestProductUsecase_UpdateProduct_UnsetSupplier(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	sRepo := new(ProdSupplierRepoMock)
	uc := newProductUsecaseForTest(pRepo, sRepo, new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	zero := int64(0)
	pRepo.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(p repo.ProductPatch) bool {
		return p.ClearSupplier && p.SupplierID == nil
	})).Return(nil)

	err := uc.UpdateProduct(ctx, 1, usecase.UpdateProductInput{SupplierID: &zero})
	assert.NoError(t, err)

	pRepo.AssertExpectations(t)
	sRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

// =====================
// DeleteProduct
// =====================

func TestProductUsecase_DeleteProduct_ReferencedByOrders(t *testing.T) {
	ctx := context.Background()

	tx := new(ProdTxManagerMock)
	pRepo := new(ProdProductRepoMock)
	oiRepo := new(ProdOrderItemRepoMock)

	tx.Repos = &ProdTxReposMock{products: pRepo, orderItems: oiRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	oiRepo.On("CountByProductID", mock.Anything, int64(7)).Return(int64(3), nil)

	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), tx, false)

	err := uc.DeleteProduct(ctx, 7)
	assertErrContains(t, err, "referenced by orders")
	assertErrKind(t, err, usecase.KindConflict)

	pRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProductUsecase_DeleteProduct_NotFound(t *testing.T) {
	ctx := context.Background()

	tx := new(ProdTxManagerMock)
	pRepo := new(ProdProductRepoMock)
	oiRepo := new(ProdOrderItemRepoMock)

	tx.Repos = &ProdTxReposMock{products: pRepo, orderItems: oiRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	oiRepo.On("CountByProductID", mock.Anything, int64(99)).Return(int64(0), nil)
	pRepo.On("Delete", mock.Anything, int64(99)).Return(repo.ErrNotFound)

	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), tx, false)

	err := uc.DeleteProduct(ctx, 99)
	assertErrContains(t, err, "not found")
}

func TestProductUsecase_DeleteProduct_Success(t *testing.T) {
	ctx := context.Background()

	tx := new(ProdTxManagerMock)
	pRepo := new(ProdProductRepoMock)
	oiRepo := new(ProdOrderItemRepoMock)

	tx.Repos = &ProdTxReposMock{products: pRepo, orderItems: oiRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	oiRepo.On("CountByProductID", mock.Anything, int64(7)).Return(int64(0), nil)
	pRepo.On("Delete", mock.Anything, int64(7)).Return(nil)

	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), tx, false)

	err := uc.DeleteProduct(ctx, 7)
	assert.NoError(t, err)

	pRepo.AssertExpectations(t)
	oiRepo.AssertExpectations(t)
}

// =====================
// AdjustStock / ListAdjustments
// =====================

func TestProductUsecase_AdjustStock_ZeroDelta(t *testing.T) {
	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	_, err := uc.AdjustStock(context.Background(), 1, 0, "noop")
	assertErrContains(t, err, "delta must not be zero")
}

// 入荷 +25 => 新在庫125。reasonはトリムして渡る
func TestProductUsecase_AdjustStock_Success_Restock(t *testing.T) {
	ctx := context.Background()

	iRepo := new(ProdInventoryRepoMock)
	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), iRepo, new(ProdTxManagerMock), false)

	iRepo.On("AdjustStockWithHistory", mock.Anything, int64(7), int64(25), "restock", false).Return(int64(125), nil)

	out, err := uc.AdjustStock(ctx, 7, 25, " restock ")
	assert.NoError(t, err)
	assert.Equal(t, int64(125), out.Quantity)

	iRepo.AssertExpectations(t)
}

// ポリシーフラグがそのままrepoへ伝わる
func TestProductUsecase_AdjustStock_PassesNegativePolicy(t *testing.T) {
	ctx := context.Background()

	iRepo := new(ProdInventoryRepoMock)
	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), iRepo, new(ProdTxManagerMock), true)

	iRepo.On("AdjustStockWithHistory", mock.Anything, int64(7), int64(-150), "write-off", true).Return(int64(-50), nil)

	out, err := uc.AdjustStock(ctx, 7, -150, "write-off")
	assert.NoError(t, err)
	assert.Equal(t, int64(-50), out.Quantity)

	iRepo.AssertExpectations(t)
}

func TestProductUsecase_AdjustStock_InsufficientStock(t *testing.T) {
	ctx := context.Background()

	iRepo := new(ProdInventoryRepoMock)
	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), iRepo, new(ProdTxManagerMock), false)

	iRepo.On("AdjustStockWithHistory", mock.Anything, int64(7), int64(-150), "write-off", false).Return(int64(0), repo.ErrInsufficientStock)

	_, err := uc.AdjustStock(ctx, 7, -150, "write-off")
	assertErrContains(t, err, "insufficient stock")
	assertErrKind(t, err, usecase.KindInsufficientStock)
}

func TestProductUsecase_AdjustStock_NotFound(t *testing.T) {
	ctx := context.Background()

	iRepo := new(ProdInventoryRepoMock)
	uc := newProductUsecaseForTest(new(ProdProductRepoMock), new(ProdSupplierRepoMock), iRepo, new(ProdTxManagerMock), false)

	iRepo.On("AdjustStockWithHistory", mock.Anything, int64(99), int64(5), "restock", false).Return(int64(0), repo.ErrNotFound)

	_, err := uc.AdjustStock(ctx, 99, 5, "restock")
	assertErrContains(t, err, "not found")
}

func TestProductUsecase_ListAdjustments_ProductNotFound(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	uc := newProductUsecaseForTest(pRepo, new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.ListAdjustments(ctx, 99)
	assertErrContains(t, err, "not found")
}

func TestProductUsecase_ListAdjustments_Success(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	iRepo := new(ProdInventoryRepoMock)
	uc := newProductUsecaseForTest(pRepo, new(ProdSupplierRepoMock), iRepo, new(ProdTxManagerMock), false)

	pRepo.On("FindByID", mock.Anything, int64(7)).Return(model.Product{ID: 7}, nil)
	iRepo.On("ListAdjustments", mock.Anything, int64(7), 100).Return([]model.StockAdjustment{
		{ID: 2, ProductID: 7, Delta: -10, Reason: "damaged"},
		{ID: 1, ProductID: 7, Delta: 25, Reason: "restock"},
	}, nil)

	rows, err := uc.ListAdjustments(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(rows))
	assert.Equal(t, int64(-10), rows[0].Delta)
}

func TestProductUsecase_ListProducts_DBError(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	uc := newProductUsecaseForTest(pRepo, new(ProdSupplierRepoMock), new(ProdInventoryRepoMock), new(ProdTxManagerMock), false)

	pRepo.On("List", mock.Anything, mock.AnythingOfType("repository.ProductListQuery")).Return([]repo.ProductRow{}, int64(0), errors.New("db down"))

	_, err := uc.ListProducts(ctx, usecase.ListProductsInput{Page: 1, Limit: 20})
	assertErrContains(t, err, "db error")
	assertErrKind(t, err, usecase.KindStorage)
}
