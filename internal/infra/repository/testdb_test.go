package repository_test

import (
	"testing"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/domain/model"
	"github.com/strobelightprojects/Nursery-inventory-management/internal/infra/db"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// テスト毎に独立したin-memory SQLiteを用意する。
// :memory:はコネクション毎に別DBになるので1本に固定する。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Connect("", ":memory:")
	if err != nil {
		t.Fatalf("db connect failed: %v", err)
	}
	gdb.Logger = gormlogger.Default.LogMode(gormlogger.Silent)

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("db handle failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := gdb.AutoMigrate(
		&model.Supplier{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.StockAdjustment{},
		&model.Staff{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	return gdb
}

func seedSupplier(t *testing.T, gdb *gorm.DB, name string) model.Supplier {
	t.Helper()

	s := model.Supplier{Name: name}
	if err := gdb.Create(&s).Error; err != nil {
		t.Fatalf("seed supplier failed: %v", err)
	}
	return s
}

func seedProduct(t *testing.T, gdb *gorm.DB, name string, price float64, qty int64, supplierID *int64) model.Product {
	t.Helper()

	p := model.Product{
		Name:       name,
		Category:   "Annual",
		Price:      price,
		Quantity:   qty,
		SupplierID: supplierID,
	}
	if err := gdb.Create(&p).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return p
}

func productQuantity(t *testing.T, gdb *gorm.DB, id int64) int64 {
	t.Helper()

	var p model.Product
	if err := gdb.First(&p, id).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	return p.Quantity
}

func countRows(t *testing.T, gdb *gorm.DB, m interface{}) int64 {
	t.Helper()

	var n int64
	if err := gdb.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}
