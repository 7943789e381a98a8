package main

import (
	"context"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/config"
	"github.com/strobelightprojects/Nursery-inventory-management/internal/domain/model"
	"github.com/strobelightprojects/Nursery-inventory-management/internal/handler"
	"github.com/strobelightprojects/Nursery-inventory-management/internal/infra/db"
	infraRepo "github.com/strobelightprojects/Nursery-inventory-management/internal/infra/repository"
	"github.com/strobelightprojects/Nursery-inventory-management/internal/server"
	"github.com/strobelightprojects/Nursery-inventory-management/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .envは無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//logger
	var logger *zap.Logger
	if cfg.GoEnv == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	//DB接続
	gormDB, err := db.Connect(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Supplier{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.StockAdjustment{},
		&model.Staff{},
	); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	supplierRepo := infraRepo.NewSupplierGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	staffRepo := infraRepo.NewStaffGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo, supplierRepo, inventoryRepo, txManager, cfg.AllowNegativeStock)
	supplierUC := usecase.NewSupplierUsecase(supplierRepo, txManager)
	orderUC := usecase.NewOrderUsecase(txManager, cfg.AllowNegativeStock)
	authUC := usecase.NewAuthUsecase(cfg, staffRepo)

	//管理者アカウントをseed
	if err := authUC.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Fatal("admin seed failed", zap.Error(err))
	}

	//Handler生成
	plantH := handler.NewPlantHandler(productUC)
	supplierH := handler.NewSupplierHandler(supplierUC)
	orderH := handler.NewOrderHandler(orderUC)
	authH := handler.NewAuthHandler(authUC)

	//Server起動
	addr := ":" + cfg.Port
	if cfg.Port != "" && cfg.Port[0] == ':' {
		addr = cfg.Port
	}

	logger.Info("starting server",
		zap.String("addr", addr),
		zap.Bool("allow_negative_stock", cfg.AllowNegativeStock))

	deps := server.Deps{
		Cfg:       cfg,
		Logger:    logger,
		DB:        gormDB,
		PlantH:    plantH,
		SupplierH: supplierH,
		OrderH:    orderH,
		AuthH:     authH,
	}
	if err := server.Start(addr, deps); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
